package studio

import (
	"context"
)

const (
	StatusConnected     = "connected"
	StatusDisconnected  = "disconnected"
	StatusError         = "error"
	StatusConfigured    = "configured"
	StatusNotConfigured = "not_configured"
)

type ServiceStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type Health struct {
	Healthy   bool
	Database  ServiceStatus
	WordPress ServiceStatus
	Mail      ServiceStatus
}

// Health probes the datastore with a trivial query and, when configured, the
// WordPress API with a minimal read. The verdict is healthy when the
// datastore is reachable and WordPress is reachable or not configured at all.
func (m *Manager) Health(ctx context.Context) Health {
	h := Health{
		Database:  ServiceStatus{Status: StatusConnected},
		WordPress: ServiceStatus{Status: StatusNotConfigured},
		Mail:      ServiceStatus{Status: StatusNotConfigured},
	}

	if err := m.db.Ping(ctx); err != nil {
		h.Database = ServiceStatus{Status: StatusDisconnected, Error: err.Error()}
	}

	if m.wp.Configured() {
		if err := m.wp.Probe(ctx); err != nil {
			h.WordPress = ServiceStatus{Status: StatusError, Error: err.Error()}
		} else {
			h.WordPress = ServiceStatus{Status: StatusConnected}
		}
	}

	if m.mail.Enabled() {
		h.Mail = ServiceStatus{Status: StatusConfigured}
	}

	h.Healthy = h.Database.Status == StatusConnected &&
		(h.WordPress.Status == StatusConnected || h.WordPress.Status == StatusNotConfigured)

	return h
}
