package web

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	indexPath      = "/"
	postDetailPath = "/posts/:slug/"
	tagFilterPath  = "/tags/:title/"
	contactsPath   = "/contacts/"

	healthPath       = "/health"
	staticPathPrefix = "/static"
	mediaPathPrefix  = "/media"

	staticDir = "./static"
)

// RegisterRoutes registers all routes for the handler
func (h *BlogHandler) RegisterRoutes(renderer echo.Renderer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	e.Use(h.loggingMiddleware)

	e.GET(indexPath, h.Index)
	e.GET(postDetailPath, h.PostDetail)
	e.GET(tagFilterPath, h.TagFilter)
	e.GET(contactsPath, h.Contacts)

	e.GET(healthPath, h.handleHealth)

	e.Static(staticPathPrefix, staticDir)
	if h.mediaDir != "" {
		e.Static(mediaPathPrefix, h.mediaDir)
	}

	return e
}

func (h *BlogHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *BlogHandler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		status := c.Response().Status
		if err != nil {
			if httpErr, ok := err.(*echo.HTTPError); ok {
				status = httpErr.Code
			} else {
				status = http.StatusInternalServerError
			}
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)

		return err
	}
}
