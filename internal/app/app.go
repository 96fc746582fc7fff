package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/forstval/studio-backend/config"
	"github.com/forstval/studio-backend/internal/db"
	"github.com/forstval/studio-backend/internal/mail"
	"github.com/forstval/studio-backend/internal/rest"
	"github.com/forstval/studio-backend/internal/studio"
	"github.com/forstval/studio-backend/internal/wordpress"
)

// App is the composition root: it owns the pooled database handle and the
// HTTP server, and wires repository, managers and handlers together.
type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	database := db.New(dbConnect)

	wpClient := wordpress.NewClient(cfg.WordPress.BaseURL, cfg.WordPress.AuthToken)

	sender := mail.New(mail.Config{
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		User:       cfg.SMTP.User,
		Password:   cfg.SMTP.Password,
		From:       cfg.SMTP.From,
		AdminEmail: cfg.SMTP.AdminEmail,
		SiteURL:    cfg.Site.URL,
	})

	manager := studio.NewManager(database, wpClient, sender, logger)
	handler := rest.NewHandler(manager, logger, cfg.Admin.InitKey, &cfg.Database)

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   handler.RegisterRoutes(),
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
