package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes/business/v1/note"
	"github.com/ribgsilva/notes/platform/web/handler"
	"github.com/ribgsilva/notes/sys"
	"net/http"
)

// Create godoc
// @Summary Create a note
// @Description Validates and appends a note. Title and content are required, color defaults to #ffffff.
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "New note"
// @Success 201 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 409 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes [post]
func Create(ctx *gin.Context) handler.Result {
	var newN note.NewNote
	if err := ctx.ShouldBindJSON(&newN); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid body"},
		}
	}

	created, err := sys.R.Notes.Create(ctx, newN)

	var (
		verr *note.ValidationError
		derr *note.DuplicateError
	)
	switch {
	case errors.As(err, &verr):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: verr.Message()},
		}
	case errors.As(err, &derr):
		return handler.Result{
			Status: http.StatusConflict,
			Body:   handler.Error{Message: derr.Message()},
		}
	case err != nil:
		sys.R.Log.Errorw("create note", "ERROR", err)
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: note.UserMessage(err)},
		}
	default:
		return handler.Result{
			Status:  http.StatusCreated,
			Body:    created,
			Headers: map[string]string{"Location": "/v1/notes"},
		}
	}
}
