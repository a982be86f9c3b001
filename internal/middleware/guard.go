package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	loginPath     = "/"
	dashboardPath = "/dashboard"
)

// RequireAuth redirects anonymous requests to the login entry before the
// handler runs. The short-circuit performs no storage access.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentPrincipal(c); !ok {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireGuest redirects authenticated requests to the dashboard. Used for
// pages that only make sense to anonymous visitors, like the login entry.
func RequireGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentPrincipal(c); ok {
			c.Redirect(http.StatusFound, dashboardPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
