// Package studiosite is the engine behind the Flium studio website: the
// public marketing pages, a flat-file blog with a JSON CRUD API, an admin
// dashboard, RSS, sitemap, and optional page-view analytics.
//
// Pages are rendered through user-provided templ components via the
// ViewFuncs struct; the engine owns all handler logic, middleware, and
// storage.
package studiosite

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/flium/studiosite/analytics"
)

// ViewFuncs holds user-provided templ components that the engine calls when
// rendering pages. This is the inversion-of-control mechanism that lets the
// site own and customize all templates.
type ViewFuncs struct {
	Home           func(posts []BlogPost, categories []BlogCategory, activeTag string) templ.Component
	Post           func(post BlogPost, related []BlogPost, categories []BlogCategory) templ.Component
	AdminLogin     func(showError bool, csrfToken string) templ.Component
	AdminDashboard func(posts []BlogPost, categories []BlogCategory, message string, csrfToken string) templ.Component
	AdminPostForm  func(post BlogPost, categories []BlogCategory, csrfToken string) templ.Component
	AdminImages    func(images []Image, csrfToken string) templ.Component
	NotFound       func() templ.Component
	ServerError    func() templ.Component
}

// App is the central application. It wires together the stores, cache,
// handlers, middleware, and user-provided templates.
type App struct {
	Config     SiteConfig
	Echo       *echo.Echo
	Posts      *PostStore
	Categories *CategoryStore
	Cache      *PostCache
	Views      ViewFuncs
	Log        *zap.Logger

	validate       *validator.Validate
	loginLimiter   *LoginLimiter
	analyticsStore *analytics.Store
	customRoutes   []func(*App)
	staticDir      string
}

// New creates a new App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		validate:  validator.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// WithLogger replaces the default zap logger.
func WithLogger(log *zap.Logger) Option {
	return func(a *App) {
		a.Log = log
	}
}

// Start initializes storage, cache, middleware, and routes, then starts the
// server. It blocks until the server stops.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("studiosite: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("studiosite: SessionSecret is required")
	}

	if a.Log == nil {
		log, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("studiosite: init logger: %w", err)
		}
		a.Log = log
	}

	a.Posts = NewPostStore(a.Config.DataDir, a.Log)
	a.Categories = NewCategoryStore(a.Config.DataDir, a.Log)
	if err := a.Posts.Initialize(); err != nil {
		return fmt.Errorf("studiosite: init post store: %w", err)
	}
	if err := a.Categories.Initialize(); err != nil {
		return fmt.Errorf("studiosite: init category store: %w", err)
	}

	a.Cache = NewPostCache(a.Posts, a.Categories, a.Config.PostCacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	if a.Config.AnalyticsEnabled {
		store, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("studiosite: init analytics: %w", err)
		}
		a.analyticsStore = store
		if err := analytics.InitSalt(store); err != nil {
			return fmt.Errorf("studiosite: init analytics salt: %w", err)
		}
		stopCleanup := store.StartCleanupScheduler(365, 24*time.Hour)
		defer stopCleanup()
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded engine assets, falling through to the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/analytics.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Public pages
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/blog", handleBlogRedirect)
	e.GET("/", a.handleHome)
	e.GET("/blog/:slug/", a.handlePost)

	// Blog JSON API
	api := e.Group("/api/blog")
	api.GET("/posts", a.handleAPIListPosts)
	api.POST("/posts", a.handleAPICreatePost)
	api.GET("/posts/:id", a.handleAPIGetPost)
	api.PUT("/posts/:id", a.handleAPIUpdatePost)
	api.DELETE("/posts/:id", a.handleAPIDeletePost)
	api.GET("/posts/slug/:slug", a.handleAPIGetPostBySlug)
	api.GET("/categories", a.handleAPIListCategories)
	api.POST("/categories", a.handleAPICreateCategory)
	api.POST("/init", a.handleAPIInit)

	// Admin dashboard
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.GET("/admin/post/:id/", a.handleAdminPost)
	e.POST("/admin/save/", a.handleAdminSave)
	e.DELETE("/admin/post/:id/", a.handleAdminDelete)
	e.POST("/admin/category/", a.handleAdminCreateCategory)
	e.GET("/admin/images/", a.handleImageList)
	e.POST("/admin/images/upload/", a.handleImageUpload)
	e.DELETE("/admin/images/:filename/", a.handleImageDelete)

	if a.Config.AnalyticsEnabled && a.analyticsStore != nil {
		handler := analytics.NewHandler(a.analyticsStore)
		adminOnly := func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				if !IsAdmin(c) {
					return c.Redirect(http.StatusSeeOther, "/admin/")
				}
				return next(c)
			}
		}
		handler.RegisterRoutes(e, adminOnly)
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.analyticsStore != nil {
		a.analyticsStore.Close()
	}
	if a.Log != nil {
		_ = a.Log.Sync()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("studiosite: required environment variable %s is not set", key)
	}
	return v
}
