package handler

import (
	"strings"

	"github.com/subhankar18r/story-books/internal/story"

	"github.com/gin-gonic/gin"
)

const maxTitleLen = 100

// storyInput is the only shape a story form can take. There is no owner
// field: ownership always comes from the resolved principal, so a spoofed
// owner value in the payload is never even read.
type storyInput struct {
	Title  string `form:"title"`
	Body   string `form:"body"`
	Status string `form:"status"`
}

// bindStoryInput parses and validates the request form. It returns the
// validated input and a per-field error map; an empty map means valid.
func bindStoryInput(c *gin.Context) (storyInput, map[string]string) {
	var in storyInput
	_ = c.ShouldBind(&in)

	in.Title = strings.TrimSpace(in.Title)
	in.Body = strings.TrimSpace(in.Body)
	in.Status = strings.TrimSpace(strings.ToLower(in.Status))
	if in.Status == "" {
		in.Status = string(story.Public)
	}

	errs := map[string]string{}
	if in.Title == "" {
		errs["title"] = "title is required"
	} else if len([]rune(in.Title)) > maxTitleLen {
		errs["title"] = "title is too long"
	}
	if in.Body == "" {
		errs["body"] = "body is required"
	}
	if !story.Visibility(in.Status).Valid() {
		errs["status"] = "status must be public or private"
	}

	return in, errs
}
