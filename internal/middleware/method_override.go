package middleware

import (
	"net/http"
	"strings"
)

const overrideFormField = "_method"

var overrideAllowed = map[string]struct{}{
	http.MethodPut:    {},
	http.MethodPatch:  {},
	http.MethodDelete: {},
}

// MethodOverride rewrites POST requests carrying a _method form field to
// the method the field names, so HTML forms can express PUT and DELETE.
// It must wrap the router: the method has to change before route matching.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && isFormRequest(r) {
			_ = r.ParseForm()
			override := strings.ToUpper(strings.TrimSpace(r.PostForm.Get(overrideFormField)))
			if override != "" {
				if _, ok := overrideAllowed[override]; !ok {
					http.Error(w, "method override not allowed", http.StatusBadRequest)
					return
				}
				r.Method = override
			}
		}
		next.ServeHTTP(w, r)
	})
}

func isFormRequest(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(ct, "multipart/form-data")
}
