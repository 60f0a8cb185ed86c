package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/blog-portal/config"
	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/daniilsolovey/blog-portal/internal/db"
	"github.com/daniilsolovey/blog-portal/internal/rpc"
	"github.com/daniilsolovey/blog-portal/internal/web"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
)

const rpcPath = "/rpc/"

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config config.Config
}

func New(cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	database := db.New(dbConnect)
	manager := blog.NewBlogManager(database)

	renderer, err := web.NewTemplateRenderer(cfg.Templates.Dir)
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	handler := web.NewBlogHandler(manager, logger, cfg.Media.BaseURL, cfg.Media.Dir)
	e := handler.RegisterRoutes(renderer)

	rpcServer := rpc.New(logger, manager)
	e.Any(rpcPath, echo.WrapHandler(rpcServer))

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}, nil
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
