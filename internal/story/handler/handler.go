package handler

import (
	"errors"
	"net/http"

	"github.com/subhankar18r/story-books/internal/middleware"
	"github.com/subhankar18r/story-books/internal/story"
	"github.com/subhankar18r/story-books/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler serves the story resource. Every mutation goes through the
// ownership policy before storage is touched; reads of private stories by
// non-owners render the not-found view, indistinguishable from missing ids.
type Handler struct {
	stories story.Repository
}

func NewHandler(stories story.Repository) *Handler {
	return &Handler{stories: stories}
}

// RegisterRoutes mounts the story endpoints. requireAuth guards the
// mutating and form routes; listings and detail stay public.
func (h *Handler) RegisterRoutes(r *gin.Engine, requireAuth gin.HandlerFunc) {
	r.GET("/stories", h.Index)
	r.GET("/stories/add", requireAuth, h.AddForm)
	r.POST("/stories", requireAuth, h.Create)
	r.GET("/stories/:id", h.Show)
	r.GET("/stories/edit/:id", requireAuth, h.EditForm)
	r.PUT("/stories/:id", requireAuth, h.Update)
	r.DELETE("/stories/:id", requireAuth, h.Delete)
	r.GET("/stories/user/:userId", h.UserStories)
}

// Index shows all public stories, newest first.
func (h *Handler) Index(c *gin.Context) {
	stories, err := h.stories.ListPublic(c.Request.Context())
	if err != nil {
		web.ServerError(c, err)
		return
	}
	web.HTML(c, http.StatusOK, "stories_index.html", gin.H{
		"Stories": stories,
	})
}

// AddForm shows the create form.
func (h *Handler) AddForm(c *gin.Context) {
	web.HTML(c, http.StatusOK, "stories_add.html", nil)
}

// Create stores a new story owned by the current principal.
func (h *Handler) Create(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	in, errs := bindStoryInput(c)
	if len(errs) > 0 {
		web.HTML(c, http.StatusBadRequest, "stories_add.html", gin.H{
			"Errors": errs,
			"Form":   in,
		})
		return
	}

	s := story.Story{
		OwnerID: principal.ID, // never taken from the payload
		Title:   in.Title,
		Body:    in.Body,
		Status:  story.Visibility(in.Status),
	}
	if err := h.stories.Create(c.Request.Context(), &s); err != nil {
		web.ServerError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// Show renders one story if the requester may view it. A private story
// read by anyone but its owner is reported as not found.
func (h *Handler) Show(c *gin.Context) {
	s, ok := h.load(c)
	if !ok {
		return
	}

	if !story.CanView(s, principalID(c)) {
		web.NotFound(c)
		return
	}

	web.HTML(c, http.StatusOK, "stories_show.html", gin.H{
		"Story":   s,
		"IsOwner": story.IsOwner(s, principalID(c)),
	})
}

// EditForm shows the edit form to the story's owner. Non-owners are sent
// back to the public listing; missing ids render not-found.
func (h *Handler) EditForm(c *gin.Context) {
	s, ok := h.load(c)
	if !ok {
		return
	}

	if !story.IsOwner(s, principalID(c)) {
		c.Redirect(http.StatusFound, "/stories")
		return
	}

	web.HTML(c, http.StatusOK, "stories_edit.html", gin.H{
		"Story": s,
	})
}

// Update replaces title, body and status of an owned story. The owner
// column is never part of the update. Replays of the same payload are
// idempotent.
func (h *Handler) Update(c *gin.Context) {
	s, ok := h.load(c)
	if !ok {
		return
	}

	if !story.IsOwner(s, principalID(c)) {
		c.Redirect(http.StatusFound, "/stories")
		return
	}

	in, errs := bindStoryInput(c)
	if len(errs) > 0 {
		web.HTML(c, http.StatusBadRequest, "stories_edit.html", gin.H{
			"Errors": errs,
			"Story":  s,
		})
		return
	}

	s.Title = in.Title
	s.Body = in.Body
	s.Status = story.Visibility(in.Status)

	err := h.stories.Update(c.Request.Context(), s)
	if errors.Is(err, story.ErrNotFound) {
		// deleted between load and write
		web.NotFound(c)
		return
	}
	if err != nil {
		web.ServerError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// Delete permanently removes an owned story. Non-owners are redirected to
// the dashboard with storage untouched.
func (h *Handler) Delete(c *gin.Context) {
	s, ok := h.load(c)
	if !ok {
		return
	}

	pid := principalID(c)
	if !story.IsOwner(s, pid) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	err := h.stories.Delete(c.Request.Context(), s.ID, pid)
	if err != nil && !errors.Is(err, story.ErrNotFound) {
		web.ServerError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// UserStories lists a target principal's public stories for any requester.
func (h *Handler) UserStories(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		web.NotFound(c)
		return
	}

	stories, err := h.stories.ListPublicByOwner(c.Request.Context(), targetID)
	if err != nil {
		web.ServerError(c, err)
		return
	}

	web.HTML(c, http.StatusOK, "stories_index.html", gin.H{
		"Stories": stories,
	})
}

// load parses the id param and fetches the story, rendering not-found or
// the error view itself when it cannot. A malformed id is a not-found, the
// same as an unknown one.
func (h *Handler) load(c *gin.Context) (*story.Story, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		web.NotFound(c)
		return nil, false
	}

	s, err := h.stories.ByID(c.Request.Context(), id)
	if errors.Is(err, story.ErrNotFound) {
		web.NotFound(c)
		return nil, false
	}
	if err != nil {
		web.ServerError(c, err)
		return nil, false
	}
	return s, true
}

// principalID returns the resolved principal id, or uuid.Nil for
// anonymous requests.
func principalID(c *gin.Context) uuid.UUID {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return uuid.Nil
	}
	return p.ID
}
