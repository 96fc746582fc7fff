package config

import (
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	WordPress struct {
		BaseURL   string
		AuthToken string
	}
	SMTP struct {
		Host       string
		Port       int
		User       string
		Password   string
		From       string
		AdminEmail string
	}
	Admin struct {
		InitKey string
	}
	Site struct {
		URL string
	}
	Sentry struct {
		DSN string
	}
}

// MailConfigured reports whether outbound mail can be sent at all.
func (c *Config) MailConfigured() bool {
	return c.SMTP.Host != ""
}
