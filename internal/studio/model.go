package studio

import (
	"github.com/forstval/studio-backend/internal/db"
)

type Inquiry struct {
	db.Contact
}

type Subscriber struct {
	db.NewsletterSubscriber
}

// Comment is one node of the rendered comment tree. Replies holds direct
// children in creation order.
type Comment struct {
	db.Comment
	Replies []*Comment
}

// SubmitResult reports a stored primary operation together with the outcome
// of its best-effort mail side effect.
type SubmitResult struct {
	ID        int
	EmailSent bool
}

// SubscribeResult reports a stored or reactivated subscription.
type SubscribeResult struct {
	Subscriber Subscriber
	EmailSent  bool
}
