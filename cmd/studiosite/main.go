// Command studiosite runs the Flium studio website.
// All site branding and secrets come from environment variables.
package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/flium/studiosite"
	"github.com/flium/studiosite/views"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	cfg := studiosite.SiteConfig{
		Name:        studiosite.EnvOr("SITE_NAME", "Flium"),
		URL:         strings.TrimSuffix(studiosite.EnvOr("SITE_URL", "http://localhost:3000"), "/"),
		Description: studiosite.EnvOr("SITE_DESCRIPTION", "デザインの力でビジネスを変革する"),
		Author:      studiosite.EnvOr("SITE_AUTHOR", "Flium"),

		Addr:    studiosite.EnvOr("ADDR", ":3000"),
		DataDir: studiosite.EnvOr("DATA_DIR", "data/blog"),

		AnalyticsEnabled:      strings.EqualFold(os.Getenv("ANALYTICS_ENABLED"), "true"),
		AnalyticsDatabasePath: studiosite.EnvOr("ANALYTICS_DATABASE_PATH", "data/analytics.db"),

		AdminPassword: studiosite.MustEnv("ADMIN_PASSWORD"),
		SessionSecret: studiosite.MustEnv("ADMIN_SESSION_SECRET"),
		CookieSecure:  strings.EqualFold(os.Getenv("COOKIE_SECURE"), "true"),
	}

	app := studiosite.New(cfg, views.New(cfg).Funcs(), studiosite.WithLogger(logger))
	defer app.Close()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down")
		app.Echo.Close()
	}()

	if err := app.Start(); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
