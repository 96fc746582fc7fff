package db

import (
	"time"
)

// Contact statuses, managed by the external admin workflow after insert.
const (
	ContactStatusNew        = "new"
	ContactStatusContacted  = "contacted"
	ContactStatusInProgress = "in_progress"
	ContactStatusCompleted  = "completed"
)

// Comment statuses. Every comment is created as pending; promotion to
// approved happens outside this service.
const (
	CommentStatusApproved = "approved"
	CommentStatusPending  = "pending"
	CommentStatusSpam     = "spam"
)

// Subscriber statuses.
const (
	SubscriberStatusActive       = "active"
	SubscriberStatusUnsubscribed = "unsubscribed"
	SubscriberStatusBounced      = "bounced"
)

type Contact struct {
	tableName struct{} `pg:"contacts,alias:t,discard_unknown_columns"`

	ID          int       `pg:"id,pk"`
	Name        string    `pg:"name,use_zero"`
	Email       string    `pg:"email,use_zero"`
	Company     *string   `pg:"company"`
	Phone       *string   `pg:"phone"`
	ServiceType string    `pg:"service_type,use_zero"`
	ProjectType string    `pg:"project_type,use_zero"`
	BudgetRange string    `pg:"budget_range,use_zero"`
	Timeline    string    `pg:"timeline,use_zero"`
	Message     string    `pg:"message,use_zero"`
	Status      string    `pg:"status,use_zero"`
	CreatedAt   time.Time `pg:"created_at,default:now()"`
	UpdatedAt   time.Time `pg:"updated_at,default:now()"`
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID            int       `pg:"id,pk"`
	PostID        int       `pg:"post_id,use_zero"`
	ParentID      *int      `pg:"parent_id"`
	AuthorName    string    `pg:"author_name,use_zero"`
	AuthorEmail   string    `pg:"author_email,use_zero"`
	AuthorWebsite *string   `pg:"author_website"`
	Content       string    `pg:"content,use_zero"`
	Status        string    `pg:"status,use_zero"`
	CreatedAt     time.Time `pg:"created_at,default:now()"`
	UpdatedAt     time.Time `pg:"updated_at,default:now()"`
}

type NewsletterSubscriber struct {
	tableName struct{} `pg:"newsletter_subscribers,alias:t,discard_unknown_columns"`

	ID             int        `pg:"id,pk"`
	Email          string     `pg:"email,use_zero"`
	Name           *string    `pg:"name"`
	Status         string     `pg:"status,use_zero"`
	SubscribedAt   time.Time  `pg:"subscribed_at,default:now()"`
	UnsubscribedAt *time.Time `pg:"unsubscribed_at"`
}
