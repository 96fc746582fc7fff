package rest

import "time"

type ContactRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Company     string `json:"company" validate:"omitempty,max=100"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	ServiceType string `json:"serviceType" validate:"required,oneof=ai-ml web-development game-development enterprise-solutions custom-software consulting"`
	ProjectType string `json:"projectType" validate:"required,oneof=new-project enhancement maintenance consulting emergency-support"`
	BudgetRange string `json:"budgetRange" validate:"required,oneof=under-5k 5k-15k 15k-50k 50k-100k over-100k discuss"`
	Timeline    string `json:"timeline" validate:"required,oneof=asap 1-month 3-months 6-months 1-year flexible"`
	Message     string `json:"message" validate:"required,min=10,max=2000"`
}

type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"omitempty,min=2,max=100"`
}

type CommentRequest struct {
	PostID        int    `json:"postId" validate:"required,gt=0"`
	ParentID      *int   `json:"parentId" validate:"omitempty,gt=0"`
	AuthorName    string `json:"authorName" validate:"required,min=2,max=100"`
	AuthorEmail   string `json:"authorEmail" validate:"required,email"`
	AuthorWebsite string `json:"authorWebsite" validate:"omitempty,url"`
	Content       string `json:"content" validate:"required,min=10,max=1000"`
}

type Contact struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Company     *string   `json:"company,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	ServiceType string    `json:"serviceType"`
	ProjectType string    `json:"projectType"`
	BudgetRange string    `json:"budgetRange"`
	Timeline    string    `json:"timeline"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Comment is one rendered tree node. The author email stays server-side.
type Comment struct {
	ID            int       `json:"id"`
	PostID        int       `json:"postId"`
	ParentID      *int      `json:"parentId,omitempty"`
	AuthorName    string    `json:"authorName"`
	AuthorWebsite *string   `json:"authorWebsite,omitempty"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"createdAt"`
	Replies       []Comment `json:"replies"`
}

type submitContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int    `json:"id"`
}

type contactsResponse struct {
	Success  bool      `json:"success"`
	Contacts []Contact `json:"contacts"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type submitCommentResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	CommentID int    `json:"commentId"`
}

type commentsResponse struct {
	Success    bool      `json:"success"`
	Comments   []Comment `json:"comments"`
	TotalCount int       `json:"totalCount"`
}
