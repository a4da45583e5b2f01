package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes/business/v1/note"
	"github.com/ribgsilva/notes/business/v1/screen"
	"github.com/ribgsilva/notes/platform/web/handler"
	"github.com/ribgsilva/notes/sys"
	"net/http"
)

type ListResponse struct {
	Notes   []note.Note `json:"notes"`
	Message string      `json:"message,omitempty" example:"No notes found."`
}

// List godoc
// @Summary List notes
// @Description List the stored notes, optionally filtered by a case insensitive title search
// @Tags Note
// @Produce json
// @Param q query string false "Title search"
// @Success 200 {object} notes.ListResponse
// @Failure 500 {object} handler.Error
// @Router /v1/notes [get]
func List(ctx *gin.Context) handler.Result {
	found, err := sys.R.Notes.List(ctx, ctx.Query("q"))
	if err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: note.UserMessage(err)},
		}
	}

	resp := ListResponse{Notes: found}
	if len(found) == 0 {
		resp.Message = screen.Placeholder
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   resp,
	}
}
