package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/subhankar18r/story-books/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// asPrincipal attaches a principal the way ResolvePrincipal would.
func asPrincipal(p *user.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), principalKey, p)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func TestRequireAuth(t *testing.T) {
	handled := false
	r := gin.New()
	r.GET("/dashboard", RequireAuth(), func(c *gin.Context) {
		handled = true
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.False(t, handled, "handler must not run for anonymous requests")
}

func TestRequireAuthPassesAuthenticated(t *testing.T) {
	r := gin.New()
	r.Use(asPrincipal(&user.Principal{ID: uuid.New(), Name: "Alice"}))
	r.GET("/dashboard", RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireGuest(t *testing.T) {
	handled := false
	r := gin.New()
	r.Use(asPrincipal(&user.Principal{ID: uuid.New(), Name: "Alice"}))
	r.GET("/", RequireGuest(), func(c *gin.Context) {
		handled = true
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	assert.False(t, handled, "handler must not run for authenticated requests")
}

func TestRequireGuestPassesAnonymous(t *testing.T) {
	r := gin.New()
	r.GET("/", RequireGuest(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
