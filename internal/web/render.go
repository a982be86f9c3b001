package web

import (
	"net/http"

	"github.com/subhankar18r/story-books/internal/logger"
	"github.com/subhankar18r/story-books/internal/middleware"

	"github.com/gin-gonic/gin"
)

// HTML renders a template with the resolved principal injected under "User",
// so every view can show login state without handlers threading it through.
func HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if p, ok := middleware.CurrentPrincipal(c); ok {
		data["User"] = p
	}
	c.HTML(status, name, data)
}

// NotFound renders the not-found view. It is used both for genuinely
// missing ids and for private stories read by non-owners; the two cases
// are indistinguishable on purpose.
func NotFound(c *gin.Context) {
	HTML(c, http.StatusNotFound, "404.html", nil)
	c.Abort()
}

// ServerError logs the cause for operators and renders the error view.
// The cause is never surfaced to the client.
func ServerError(c *gin.Context, err error) {
	logger.Error("request failed", map[string]any{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
		"error":  err.Error(),
	})
	HTML(c, http.StatusInternalServerError, "500.html", nil)
	c.Abort()
}
