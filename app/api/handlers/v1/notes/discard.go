package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes/platform/web/handler"
	"net/http"
)

// Discard godoc
// @Summary Discard a draft
// @Description Drops whatever was sent and sends the client back to the list, storage is not touched
// @Tags Note
// @Success 303
// @Router /v1/notes/discard [post]
func Discard(_ *gin.Context) handler.Result {
	return handler.Result{
		Status:  http.StatusSeeOther,
		Headers: map[string]string{"Location": "/v1/notes"},
	}
}
