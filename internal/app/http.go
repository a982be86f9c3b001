package app

import (
	"context"
	"net/http"
	"path/filepath"

	authhandler "github.com/subhankar18r/story-books/internal/auth/handler"
	"github.com/subhankar18r/story-books/internal/auth/provider"
	"github.com/subhankar18r/story-books/internal/auth/provider/google"
	"github.com/subhankar18r/story-books/internal/auth/resolver"
	"github.com/subhankar18r/story-books/internal/config"
	"github.com/subhankar18r/story-books/internal/middleware"
	"github.com/subhankar18r/story-books/internal/session"
	"github.com/subhankar18r/story-books/internal/story"
	storyhandler "github.com/subhankar18r/story-books/internal/story/handler"
	"github.com/subhankar18r/story-books/internal/user"
	"github.com/subhankar18r/story-books/internal/web"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (http.Handler, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	identityResolver := resolver.NewDBResolver(infra.DB)
	users := user.NewSQLRepository(infra.DB)
	stories := story.NewSQLRepository(infra.DB)

	googleProvider, err := google.New(
		ctx,
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
	)
	if err != nil {
		return nil, nil, err
	}

	registry := provider.NewRegistry(googleProvider)

	cookieOpts := session.CookieOptions{
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}

	authHandler := authhandler.NewHandler(
		registry,
		sessionStore,
		identityResolver,
		authhandler.Options{
			SessionTTL: cfg.SessionTTL,
			Cookies:    cookieOpts,
		},
	)

	webHandler := web.NewHandler(stories)
	storyHandler := storyhandler.NewHandler(stories)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ResolvePrincipal(sessionStore, users))

	router.SetFuncMap(web.FuncMap())
	router.LoadHTMLGlob(filepath.Join(cfg.TemplatesDir, "*.html"))

	// ----------------------------
	// Routes
	// ----------------------------

	router.GET("/", middleware.RequireGuest(), webHandler.Login)
	router.GET("/dashboard", middleware.RequireAuth(), webHandler.Dashboard)

	authHandler.RegisterRoutes(router)
	storyHandler.RegisterRoutes(router, middleware.RequireAuth())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.Static("/static", "./web/static")

	router.NoRoute(func(c *gin.Context) {
		web.NotFound(c)
	})

	// HTML forms can only POST; _method rewrites to PUT/DELETE before
	// route matching.
	handler := middleware.MethodOverride(router)

	return handler, func() error {
		return infra.DB.Close()
	}, nil
}
