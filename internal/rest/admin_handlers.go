package rest

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forstval/studio-backend/internal/db"
)

type initDBResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Tables  []string `json:"tables"`
}

// InitDB handles POST /api/v1/admin/init-db?key=. Provisions the schema via
// the embedded migrations; guarded by the configured shared secret.
func (h *Handler) InitDB(c echo.Context) error {
	key := c.QueryParam("key")
	if h.adminKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(h.adminKey)) != 1 {
		return c.JSON(http.StatusUnauthorized, messageResponse{Success: false, Message: "Unauthorized"})
	}

	if err := db.Migrate(c.Request().Context(), h.dbOpts); err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Database initialization failed")
	}

	return c.JSON(http.StatusOK, initDBResponse{
		Success: true,
		Message: "Database initialized successfully",
		Tables:  db.MigratedTables,
	})
}
