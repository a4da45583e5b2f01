package notes

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ribgsilva/notes/app/cmd/shell"
	"github.com/ribgsilva/notes/business/v1/note"
	"github.com/ribgsilva/notes/business/v1/screen"
	"github.com/ribgsilva/notes/sys"
	"github.com/spf13/cobra"
)

// Commands returns the note commands, each one opening the configured storage.
func Commands() []*cobra.Command {
	cmds := []*cobra.Command{listCmd(), addCmd(), shellCmd()}
	for _, c := range cmds {
		c.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log to stderr")
	}
	return cmds
}

// withNotes opens the resources around fn.
func withNotes(fn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer func() {
			_ = log.Sync()
		}()

		cleanup, err := initVars(log)
		defer cleanup()
		if err != nil {
			return err
		}
		return fn(cmd, args)
	}
}

func listCmd() *cobra.Command {
	var (
		query  string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, optionally searching by title",
		Args:  cobra.NoArgs,
		RunE: withNotes(func(cmd *cobra.Command, _ []string) error {
			found, err := sys.R.Notes.List(cmd.Context(), query)
			if err != nil {
				return errors.New(note.UserMessage(err))
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(found)
			}

			if len(found) == 0 {
				fmt.Fprintln(out, screen.Placeholder)
				return nil
			}
			for _, n := range found {
				fmt.Fprintf(out, "%d\t%s\t%s\n", n.Id, n.Color, n.Title)
			}
			return nil
		}),
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Case insensitive title search")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func addCmd() *cobra.Command {
	var newN note.NewNote
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note",
		Args:  cobra.NoArgs,
		RunE: withNotes(func(cmd *cobra.Command, _ []string) error {
			created, err := sys.R.Notes.Create(cmd.Context(), newN)
			if err != nil {
				sys.R.Log.Errorw("add", "ERROR", err)
				return errors.New(note.UserMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved note %d\n", created.Id)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&newN.Title, "title", "t", "", "Title (required)")
	cmd.Flags().StringVarP(&newN.Subtitle, "subtitle", "s", "", "Subtitle")
	cmd.Flags().StringVarP(&newN.Content, "content", "c", "", "Content (required)")
	cmd.Flags().StringVar(&newN.Color, "color", note.DefaultColor, "One of "+strings.Join(note.Palette, ", "))
	return cmd
}

func shellCmd() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Browse and add notes interactively",
		Args:  cobra.NoArgs,
		RunE: withNotes(func(cmd *cobra.Command, _ []string) error {
			return shell.New(cmd.Context(), sys.R.Log, sys.R.Notes, shell.Config{
				In:    cmd.InOrStdin(),
				Out:   cmd.OutOrStdout(),
				Plain: plain,
			}).Run()
		}),
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable colors")
	return cmd
}
