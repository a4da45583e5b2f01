package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what every handler returns, the wrapper takes care of writing it
type Result struct {
	Status  int
	Body    any
	Headers map[string]string
}

// Error is the body sent back on any failure
type Error struct {
	Message string `json:"message" example:"This note already exists."`
}

// Wrapper adapts a Result returning handler into a gin.HandlerFunc
func Wrapper(h func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := h(ctx)
		for k, v := range r.Headers {
			ctx.Header(k, v)
		}
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}
