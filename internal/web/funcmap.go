package web

import (
	"html/template"
	"regexp"
	"strings"
	"time"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// FuncMap returns the view helper functions shared by all templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"formatDate": FormatDate,
		"truncate":   Truncate,
		"stripTags":  StripTags,
	}
}

// FormatDate renders a timestamp the way listings display it.
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006 3:04 PM")
}

// Truncate shortens s to at most n runes, appending an ellipsis when
// anything was cut.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimRight(string(runes[:n]), " ") + "..."
}

// StripTags removes HTML tags from user-entered text for preview snippets.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}
