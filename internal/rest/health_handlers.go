package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/forstval/studio-backend/internal/studio"
)

// Version is stamped at build time via -ldflags "-X ...rest.Version=".
var Version = "dev"

var startedAt = time.Now()

type healthResponse struct {
	Status    string                          `json:"status"`
	Timestamp time.Time                       `json:"timestamp"`
	Version   string                          `json:"version"`
	Uptime    float64                         `json:"uptime"`
	Services  map[string]studio.ServiceStatus `json:"services"`
}

// HealthCheck handles GET /health: 200 when the datastore is reachable and
// WordPress is reachable or not configured, 503 otherwise.
func (h *Handler) HealthCheck(c echo.Context) error {
	health := h.uc.Health(c.Request().Context())

	status := "healthy"
	code := http.StatusOK
	if !health.Healthy {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	return c.JSON(code, healthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Version:   Version,
		Uptime:    time.Since(startedAt).Seconds(),
		Services: map[string]studio.ServiceStatus{
			"database":  health.Database,
			"wordpress": health.WordPress,
			"email":     health.Mail,
		},
	})
}
