package note

import (
	"errors"
	"fmt"
)

// Messages shown to the user for each failure.
const (
	MsgMissingFields = "Please fill out the title and content fields."
	MsgInvalidColor  = "Please select one of the available note colors."
	MsgDuplicate     = "This note already exists."
	MsgSaveFailed    = "Error saving note. Please try again."
	MsgLoadFailed    = "Failed to load notes."
)

// Storage operations reported by StorageError.
const (
	OpCreate = "create"
	OpList   = "list"
)

// ValidationError means a required field is blank or the color is not in the Palette.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid note: %s", e.Field)
}

func (e *ValidationError) Message() string {
	if e.Field == "color" {
		return MsgInvalidColor
	}
	return MsgMissingFields
}

// DuplicateError means a note with the same title and content is already stored.
type DuplicateError struct {
	Title string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("note already exists: %q", e.Title)
}

func (e *DuplicateError) Message() string {
	return MsgDuplicate
}

// StorageError wraps a failure reading or writing the collection.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s notes: %s", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Message() string {
	if e.Op == OpList {
		return MsgLoadFailed
	}
	return MsgSaveFailed
}

// UserMessage returns the text to show the user for err.
func UserMessage(err error) string {
	var m interface{ Message() string }
	if errors.As(err, &m) {
		return m.Message()
	}
	return MsgSaveFailed
}
