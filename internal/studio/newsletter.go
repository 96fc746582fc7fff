package studio

import (
	"context"
	"fmt"

	"github.com/forstval/studio-backend/internal/db"
)

// ErrAlreadySubscribed signals an active subscription for the same email.
var ErrAlreadySubscribed = db.ErrAlreadySubscribed

// Subscribe inserts a new active subscriber or reactivates a previously
// unsubscribed one; the email is the identity key, so re-subscription never
// creates a duplicate row. Returns ErrAlreadySubscribed when the email is
// already active. The welcome email is best-effort.
func (m *Manager) Subscribe(ctx context.Context, email string, name *string) (*SubscribeResult, error) {
	sub, err := m.db.UpsertSubscriber(ctx, email, name)
	if err != nil {
		return nil, err
	}

	emailSent := true
	welcomeName := ""
	if name != nil {
		welcomeName = *name
	}
	if err := m.mail.SendWelcome(ctx, email, welcomeName); err != nil {
		emailSent = false
		m.log.Error("welcome email failed", "email", email, "error", err)
	}

	return &SubscribeResult{
		Subscriber: Subscriber{NewsletterSubscriber: *sub},
		EmailSent:  emailSent,
	}, nil
}

// Unsubscribe marks the email unsubscribed. Unknown or already unsubscribed
// emails succeed as well; the operation is idempotent.
func (m *Manager) Unsubscribe(ctx context.Context, email string) error {
	if err := m.db.Unsubscribe(ctx, email); err != nil {
		return fmt.Errorf("unsubscribe: %w", err)
	}

	return nil
}
