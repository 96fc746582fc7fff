package studio

import (
	"log/slog"

	"github.com/forstval/studio-backend/internal/db"
	"github.com/forstval/studio-backend/internal/mail"
	"github.com/forstval/studio-backend/internal/wordpress"
)

// Manager orchestrates the site's operations: validate-and-store flows
// backed by the repository, blog reads proxied to WordPress, and mail side
// effects that never fail the primary operation.
type Manager struct {
	db   *db.Repository
	wp   *wordpress.Client
	mail mail.Sender
	log  *slog.Logger
}

func NewManager(repo *db.Repository, wp *wordpress.Client, sender mail.Sender, log *slog.Logger) *Manager {
	return &Manager{
		db:   repo,
		wp:   wp,
		mail: sender,
		log:  log,
	}
}
