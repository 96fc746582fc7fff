package mail

import (
	"context"
	"errors"

	gomail "github.com/wneessen/go-mail"
)

// ErrNotConfigured is returned by the disabled sender when no SMTP host is
// set. Callers treat mail failures as non-fatal and log them.
var ErrNotConfigured = errors.New("smtp is not configured")

type Config struct {
	Host       string
	Port       int
	User       string
	Password   string
	From       string
	AdminEmail string
	SiteURL    string
}

// Inquiry carries a validated contact submission into the notification and
// confirmation messages.
type Inquiry struct {
	Name        string
	Email       string
	Company     string
	Phone       string
	ServiceType string
	ProjectType string
	BudgetRange string
	Timeline    string
	Message     string
}

// Sender delivers the site's transactional messages. All sends are
// best-effort side effects of an already persisted primary operation.
type Sender interface {
	Enabled() bool
	SendContactNotification(ctx context.Context, inquiry Inquiry) error
	SendContactConfirmation(ctx context.Context, inquiry Inquiry) error
	SendWelcome(ctx context.Context, email, name string) error
}

// New returns an SMTP-backed sender, or a disabled one when no host is
// configured.
func New(cfg Config) Sender {
	if cfg.Host == "" {
		return disabled{}
	}
	return &SMTP{cfg: cfg}
}

type SMTP struct {
	cfg Config
}

func (s *SMTP) Enabled() bool { return true }

func (s *SMTP) send(ctx context.Context, to, subject, html string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, html)

	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if s.cfg.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.User),
			gomail.WithPassword(s.cfg.Password),
		)
	}

	client, err := gomail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return err
	}

	return client.DialAndSendWithContext(ctx, msg)
}

func (s *SMTP) SendContactNotification(ctx context.Context, inquiry Inquiry) error {
	to := s.cfg.AdminEmail
	if to == "" {
		to = s.cfg.User
	}
	return s.send(ctx, to, "New Project Inquiry from "+inquiry.Name, contactNotificationBody(inquiry))
}

func (s *SMTP) SendContactConfirmation(ctx context.Context, inquiry Inquiry) error {
	subject := "Thank you for your inquiry - ForstvalStudio"
	return s.send(ctx, inquiry.Email, subject, contactConfirmationBody(inquiry, s.cfg.SiteURL))
}

func (s *SMTP) SendWelcome(ctx context.Context, email, name string) error {
	return s.send(ctx, email, "Welcome to ForstvalStudio Newsletter", welcomeBody(name))
}

type disabled struct{}

func (disabled) Enabled() bool                                          { return false }
func (disabled) SendContactNotification(context.Context, Inquiry) error { return ErrNotConfigured }
func (disabled) SendContactConfirmation(context.Context, Inquiry) error { return ErrNotConfigured }
func (disabled) SendWelcome(context.Context, string, string) error      { return ErrNotConfigured }
