package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/subhankar18r/story-books/internal/logger"
	"github.com/subhankar18r/story-books/internal/session"
	"github.com/subhankar18r/story-books/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// unexported, collision-proof context key
type principalContextKeyType struct{}

var principalKey = principalContextKeyType{}

// PrincipalFrom extracts the resolved principal from a context.
// The second return is false for anonymous requests.
func PrincipalFrom(ctx context.Context) (*user.Principal, bool) {
	p, ok := ctx.Value(principalKey).(*user.Principal)
	return p, ok
}

// CurrentPrincipal is the gin-flavored PrincipalFrom.
func CurrentPrincipal(c *gin.Context) (*user.Principal, bool) {
	return PrincipalFrom(c.Request.Context())
}

// ResolvePrincipal resolves the session cookie to a principal and attaches
// it to the request context. Anonymity is a normal outcome: a missing,
// expired, or unreadable session degrades to anonymous, never to an error.
func ResolvePrincipal(store session.Store, users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {

		cookie, err := c.Request.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), cookie.Value)
		if err != nil {
			logger.Warn("session lookup failed", map[string]any{
				"error": err.Error(),
			})
			c.Next()
			return
		}
		if sess == nil {
			c.Next()
			return
		}

		if time.Now().After(sess.ExpiresAt) {
			_ = store.Delete(c.Request.Context(), sess.SessionID)
			c.Next()
			return
		}

		userID, err := uuid.Parse(sess.UserID)
		if err != nil {
			// corrupt session payload, discard it
			_ = store.Delete(c.Request.Context(), sess.SessionID)
			c.Next()
			return
		}

		principal, err := users.ByID(c.Request.Context(), userID)
		if err != nil {
			if !errors.Is(err, user.ErrNotFound) {
				logger.Warn("principal load failed", map[string]any{
					"error": err.Error(),
				})
			}
			c.Next()
			return
		}

		ctx := context.WithValue(c.Request.Context(), principalKey, principal)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
