package studio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forstval/studio-backend/internal/db"
	"github.com/forstval/studio-backend/internal/mail"
	"github.com/forstval/studio-backend/internal/wordpress"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	opt, err := pg.ParseURL(db.TestDBURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse database URL: %v\n", err)
		os.Exit(1)
	}

	testDB = pg.Connect(opt)

	if err := testDB.Ping(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "test database not reachable, integration tests will be skipped")
		_ = testDB.Close()
		testDB = nil
		os.Exit(m.Run())
	}

	if err := db.ResetPublicSchema(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to reset schema: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.Migrate(ctx, opt); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

// withManager builds a Manager over a rolled-back transaction, with no
// WordPress backend and no SMTP host, so every mail send fails.
func withManager(t *testing.T) (context.Context, *Manager, *db.Repository) {
	t.Helper()
	if testDB == nil {
		t.Skip("test database is not available, start it with: docker-compose -f docker-compose.test.yml up -d")
	}

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}
	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	repo := db.New(tx)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := NewManager(repo, wordpress.NewClient("", ""), mail.New(mail.Config{}), logger)

	return context.Background(), manager, repo
}

// A failed email side effect must not fail the submission: the inquiry is
// already stored, the result carries the id and EmailSent=false.
func TestManager_SubmitInquiryWhenMailFails(t *testing.T) {
	ctx, manager, repo := withManager(t)

	inquiry := &Inquiry{Contact: db.Contact{
		Name:        "Jamie Doe",
		Email:       "jamie@example.com",
		ServiceType: "web-development",
		ProjectType: "new-project",
		BudgetRange: "5k-15k",
		Timeline:    "3-months",
		Message:     "We need a marketing site built from scratch.",
	}}

	result, err := manager.SubmitInquiry(ctx, inquiry)
	require.NoError(t, err)
	assert.NotZero(t, result.ID)
	assert.False(t, result.EmailSent)

	stored, err := repo.Contacts(ctx, db.ContactFilter{})
	require.NoError(t, err)
	require.Len(t, stored, 1, "exactly one row must be persisted")
	assert.Equal(t, result.ID, stored[0].ID)
	assert.Equal(t, db.ContactStatusNew, stored[0].Status)
}

func TestManager_SubscribeWhenMailFails(t *testing.T) {
	ctx, manager, repo := withManager(t)

	name := "Reader"
	result, err := manager.Subscribe(ctx, "reader@example.com", &name)
	require.NoError(t, err)
	assert.NotZero(t, result.Subscriber.ID)
	assert.Equal(t, db.SubscriberStatusActive, result.Subscriber.Status)
	assert.False(t, result.EmailSent)

	sub, err := repo.SubscriberByEmail(ctx, "reader@example.com")
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, result.Subscriber.ID, sub.ID)
}
