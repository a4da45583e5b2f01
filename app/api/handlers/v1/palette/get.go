package palette

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes/business/v1/note"
	"github.com/ribgsilva/notes/platform/web/handler"
	"net/http"
)

type Palette struct {
	Default string   `json:"default" example:"#ffffff"`
	Colors  []string `json:"colors"`
}

// Get godoc
// @Summary Note colors
// @Description The colors a note can be created with
// @Tags Note
// @Produce json
// @Success 200 {object} palette.Palette
// @Router /v1/palette [get]
func Get(_ *gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   Palette{Default: note.DefaultColor, Colors: note.Palette},
	}
}
