package handler

import (
	"net/http"
	"time"

	"github.com/subhankar18r/story-books/internal/auth/provider"
	"github.com/subhankar18r/story-books/internal/auth/resolver"
	"github.com/subhankar18r/story-books/internal/logger"
	"github.com/subhankar18r/story-books/internal/session"

	"github.com/gin-gonic/gin"
)

// Options carries the session policy threaded in at startup. There is no
// ambient configuration: the cookie policy and TTL arrive here explicitly.
type Options struct {
	SessionTTL time.Duration
	Cookies    session.CookieOptions
}

// Handler serves the federated login endpoints. It owns the
// session-to-principal binding: the provider yields identity facts, the
// resolver maps them to a principal, and only then is a session issued.
type Handler struct {
	providers    *provider.Registry
	sessionStore session.Store
	resolver     resolver.Resolver
	sessionTTL   time.Duration
	cookies      session.CookieOptions
}

func NewHandler(
	registry *provider.Registry,
	sessionStore session.Store,
	resolver resolver.Resolver,
	opts Options,
) *Handler {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Handler{
		providers:    registry,
		sessionStore: sessionStore,
		resolver:     resolver,
		sessionTTL:   ttl,
		cookies:      opts.Cookies,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/auth/login/:provider", h.Login)
	r.GET("/auth/callback/:provider", h.Callback)
	r.GET("/auth/logout", h.Logout)
}

// Login starts the federated handshake: state and PKCE cookies are issued
// and the visitor is sent to the identity provider.
func (h *Handler) Login(c *gin.Context) {
	p, err := h.providers.Get(c.Param("provider"))
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	state := h.generateState(c)
	_, codeChallenge := h.generatePKCE(c)

	c.Redirect(http.StatusFound, p.AuthCodeURL(state, codeChallenge))
}

// Callback completes the handshake. Any failure sends the visitor back to
// the login entry; success binds a fresh session to the resolved principal
// and lands on the dashboard.
func (h *Handler) Callback(c *gin.Context) {
	providerName := c.Param("provider")

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	if !validateState(c) {
		logger.Warn("oauth callback with invalid state", map[string]any{
			"provider": providerName,
		})
		c.Redirect(http.StatusFound, "/")
		return
	}

	if errParam := c.Query("error"); errParam != "" {
		logger.Warn("oauth callback returned error", map[string]any{
			"provider": providerName,
			"error":    errParam,
			"desc":     c.Query("error_description"),
		})
		c.Redirect(http.StatusFound, "/")
		return
	}

	code := c.Query("code")
	if code == "" {
		logger.Error("oauth callback missing code and error", nil)
		c.Redirect(http.StatusFound, "/")
		return
	}

	codeVerifier := getPKCEVerifier(c)
	if codeVerifier == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	identity, err := p.ExchangeCode(c.Request.Context(), code, codeVerifier)
	if err != nil {
		logger.Warn("oauth code exchange failed", map[string]any{
			"provider": providerName,
			"error":    err.Error(),
		})
		c.Redirect(http.StatusFound, "/")
		return
	}

	userID, err := h.resolver.Resolve(c.Request.Context(), identity)
	if err != nil {
		logger.Error("identity resolution failed", map[string]any{
			"provider": providerName,
			"error":    err.Error(),
		})
		c.Redirect(http.StatusFound, "/")
		return
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		logger.Error("session id generation failed", map[string]any{
			"error": err.Error(),
		})
		c.Redirect(http.StatusFound, "/")
		return
	}

	now := time.Now()
	expiresAt := now.Add(h.sessionTTL)

	sess := session.Session{
		SessionID: sessionID,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}

	if err := h.sessionStore.Create(c.Request.Context(), sess); err != nil {
		logger.Error("session persist failed", map[string]any{
			"error": err.Error(),
		})
		c.Redirect(http.StatusFound, "/")
		return
	}

	session.SetCookie(c.Writer, sessionID, expiresAt, h.cookies)

	logger.Info("login succeeded", map[string]any{
		"provider": providerName,
		"user_id":  userID,
	})

	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout destroys the session binding and clears the cookie. It is
// idempotent: logging out without a session still lands on the login entry.
func (h *Handler) Logout(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		// best-effort: an already-gone session is still a logout
		_ = h.sessionStore.Delete(c.Request.Context(), cookie.Value)
	}

	session.ClearCookie(c.Writer, h.cookies)

	c.Redirect(http.StatusFound, "/")
}
