package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// ErrAlreadySubscribed is returned by UpsertSubscriber when an active
// subscription for the same email blocks the insert-or-reactivate.
var ErrAlreadySubscribed = errors.New("email is already subscribed")

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// CreateContact inserts a new contact inquiry with status "new" and fills
// the generated id and timestamps.
func (r *Repository) CreateContact(ctx context.Context, contact *Contact) error {
	contact.Status = ContactStatusNew

	_, err := r.db.ModelContext(ctx, contact).
		Returning("*").
		Insert()
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}

	return nil
}

// Contacts retrieves inquiries matching the filter, newest first.
func (r *Repository) Contacts(ctx context.Context, filter ContactFilter) ([]Contact, error) {
	filter.setDefaults()

	var contacts []Contact
	query := r.db.ModelContext(ctx, &contacts)

	if filter.Status != nil {
		query = query.Where(`"t"."status" = ?`, *filter.Status)
	}

	err := query.
		OrderExpr(`"t"."created_at" DESC`).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}

	return contacts, nil
}

// CreateComment inserts a new comment. Status is forced to pending; comments
// only become visible after external moderation.
func (r *Repository) CreateComment(ctx context.Context, comment *Comment) error {
	comment.Status = CommentStatusPending

	_, err := r.db.ModelContext(ctx, comment).
		Returning("*").
		Insert()
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// CommentsByPost retrieves the flat comment list for one post in creation
// order, filtered by status.
func (r *Repository) CommentsByPost(ctx context.Context, postID int, status string) ([]Comment, error) {
	var comments []Comment
	err := r.db.ModelContext(ctx, &comments).
		Where(`"t"."post_id" = ?`, postID).
		Where(`"t"."status" = ?`, status).
		OrderExpr(`"t"."created_at" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	return comments, nil
}

// UpsertSubscriber inserts a new active subscriber or reactivates an
// unsubscribed one in a single statement, keyed on the unique email. An
// existing active subscription blocks the update and yields
// ErrAlreadySubscribed.
func (r *Repository) UpsertSubscriber(ctx context.Context, email string, name *string) (*NewsletterSubscriber, error) {
	sub := &NewsletterSubscriber{
		Email:  email,
		Name:   name,
		Status: SubscriberStatusActive,
	}

	res, err := r.db.ModelContext(ctx, sub).
		OnConflict(`(email) DO UPDATE SET status = EXCLUDED.status, name = EXCLUDED.name, subscribed_at = now(), unsubscribed_at = NULL WHERE "t"."status" <> ?`, SubscriberStatusActive).
		Returning("*").
		Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to upsert subscriber: %w", err)
	}

	if res.RowsReturned() == 0 {
		return nil, ErrAlreadySubscribed
	}

	return sub, nil
}

// Unsubscribe marks the subscriber with the given email as unsubscribed and
// stamps unsubscribed_at. Unknown or already unsubscribed emails are not an
// error.
func (r *Repository) Unsubscribe(ctx context.Context, email string) error {
	_, err := r.db.ModelContext(ctx, (*NewsletterSubscriber)(nil)).
		Set(`status = ?`, SubscriberStatusUnsubscribed).
		Set(`unsubscribed_at = now()`).
		Where(`"t"."email" = ?`, email).
		Update()
	if err != nil {
		return fmt.Errorf("failed to unsubscribe %q: %w", email, err)
	}

	return nil
}

// SubscriberByEmail returns the subscriber row for email, or nil when none
// exists.
func (r *Repository) SubscriberByEmail(ctx context.Context, email string) (*NewsletterSubscriber, error) {
	sub := &NewsletterSubscriber{}
	err := r.db.ModelContext(ctx, sub).
		Where(`"t"."email" = ?`, email).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get subscriber by email: %w", err)
	}

	return sub, nil
}
