package studio

import (
	"context"
	"fmt"

	"github.com/forstval/studio-backend/internal/db"
	"github.com/forstval/studio-backend/internal/mail"
)

// SubmitInquiry stores a validated contact inquiry and then attempts the
// notification and confirmation emails. Mail failure is logged and reported
// in the result, never returned as an error: the inquiry is already durable.
func (m *Manager) SubmitInquiry(ctx context.Context, inquiry *Inquiry) (*SubmitResult, error) {
	if err := m.db.CreateContact(ctx, &inquiry.Contact); err != nil {
		return nil, fmt.Errorf("store inquiry: %w", err)
	}

	emailSent := true

	msg := newMailInquiry(&inquiry.Contact)
	if err := m.mail.SendContactNotification(ctx, msg); err != nil {
		emailSent = false
		m.log.Error("contact notification email failed", "contactId", inquiry.ID, "error", err)
	}
	if err := m.mail.SendContactConfirmation(ctx, msg); err != nil {
		emailSent = false
		m.log.Error("contact confirmation email failed", "contactId", inquiry.ID, "error", err)
	}

	return &SubmitResult{
		ID:        inquiry.ID,
		EmailSent: emailSent,
	}, nil
}

// Inquiries lists stored inquiries for the admin surface, newest first.
func (m *Manager) Inquiries(ctx context.Context, filter db.ContactFilter) ([]Inquiry, error) {
	contacts, err := m.db.Contacts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("db get contacts: %w", err)
	}

	inquiries := make([]Inquiry, len(contacts))
	for i := range contacts {
		inquiries[i] = Inquiry{Contact: contacts[i]}
	}

	return inquiries, nil
}

func newMailInquiry(c *db.Contact) mail.Inquiry {
	inquiry := mail.Inquiry{
		Name:        c.Name,
		Email:       c.Email,
		ServiceType: c.ServiceType,
		ProjectType: c.ProjectType,
		BudgetRange: c.BudgetRange,
		Timeline:    c.Timeline,
		Message:     c.Message,
	}

	if c.Company != nil {
		inquiry.Company = *c.Company
	}
	if c.Phone != nil {
		inquiry.Phone = *c.Phone
	}

	return inquiry
}
