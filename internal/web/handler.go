package web

import (
	"net/http"

	"github.com/subhankar18r/story-books/internal/middleware"
	"github.com/subhankar18r/story-books/internal/story"

	"github.com/gin-gonic/gin"
)

// Handler serves the entry pages: the login screen and the dashboard.
type Handler struct {
	stories story.Repository
}

func NewHandler(stories story.Repository) *Handler {
	return &Handler{stories: stories}
}

// Login renders the login entry page. Guarded guest-only by the router.
func (h *Handler) Login(c *gin.Context) {
	HTML(c, http.StatusOK, "login.html", nil)
}

// Dashboard lists the current principal's stories, private ones included.
func (h *Handler) Dashboard(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	stories, err := h.stories.ListByOwner(c.Request.Context(), principal.ID)
	if err != nil {
		ServerError(c, err)
		return
	}

	HTML(c, http.StatusOK, "dashboard.html", gin.H{
		"Name":    principal.Name,
		"Stories": stories,
	})
}
