package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/notes/app/api/handlers/v1/notes"
	"github.com/ribgsilva/notes/app/api/handlers/v1/palette"
	"github.com/ribgsilva/notes/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine) {
	r.GET("/v1/notes", handler.Wrapper(notes.List))
	r.POST("/v1/notes", handler.Wrapper(notes.Create))
	r.POST("/v1/notes/discard", handler.Wrapper(notes.Discard))
	r.GET("/v1/palette", handler.Wrapper(palette.Get))
}
