package db

import (
	"context"
	"embed"
	"fmt"
	"net/url"

	"github.com/go-pg/pg/v10"
	"github.com/jackc/pgx"
	"github.com/jackc/pgx/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigratedTables lists what the migrations provision, in creation order.
var MigratedTables = []string{"contacts", "blog_posts", "comments", "newsletter_subscribers"}

// Migrate provisions the persistent schema using the embedded goose
// migrations. goose needs a database/sql handle, so a second short-lived
// connection is opened through the pgx stdlib driver.
func Migrate(ctx context.Context, opt *pg.Options) error {
	config, err := pgx.ParseConnectionString(ConnectionURL(opt))
	if err != nil {
		return fmt.Errorf("parse connection string: %w", err)
	}

	sqldb := stdlib.OpenDB(config)
	defer sqldb.Close()

	if err := sqldb.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	goose.SetBaseFS(migrationsFS)

	if err := goose.UpContext(ctx, sqldb, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

// ConnectionURL renders pg connection options back into a postgres:// URL.
func ConnectionURL(opt *pg.Options) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(opt.User, opt.Password),
		Host:   opt.Addr,
		Path:   "/" + opt.Database,
	}

	q := u.Query()
	q.Set("sslmode", "disable")
	u.RawQuery = q.Encode()

	return u.String()
}
