package rest

import (
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	apiV1Prefix = "/api/v1"

	contactPath    = "/contact"
	newsletterPath = "/newsletter"
	commentsPath   = "/comments"
	blogPath       = "/blog"
	blogSlugPath   = "/blog/:slug"
	initDBPath     = "/admin/init-db"
	healthPath     = "/health"
)

// RegisterRoutes builds the echo instance with middleware and all routes.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()

	e.Use(middleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	e.Use(h.requestLogger())

	e.GET(healthPath, h.HealthCheck)

	api := e.Group(apiV1Prefix)
	api.POST(contactPath, h.SubmitContact)
	api.GET(contactPath, h.Contacts)
	api.POST(newsletterPath, h.Subscribe)
	api.DELETE(newsletterPath, h.Unsubscribe)
	api.POST(commentsPath, h.SubmitComment)
	api.GET(commentsPath, h.Comments)
	api.GET(blogPath, h.Blog)
	api.GET(blogSlugPath, h.BlogPost)
	api.POST(initDBPath, h.InitDB)

	return e
}

func (h *Handler) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			h.log.Info("HTTP request",
				"method", v.Method,
				"path", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"remote_addr", v.RemoteIP,
			)
			return nil
		},
	})
}
