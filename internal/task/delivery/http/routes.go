package http

import (
	"github.com/gin-gonic/gin"

	"github.com/sdokania30/SayDone/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Parsing is
// the expensive endpoint, so it alone is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/parse", mw.RateLimit(), h.Parse)
		tasks.GET("", h.List)
		tasks.PUT("/:id", h.Update)
		tasks.POST("/:id/toggle", h.Toggle)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/undo", h.Undo)
		tasks.POST("/redo", h.Redo)
	}
}
