package db

import (
	"context"
	"net/url"

	"github.com/go-pg/urlstruct"
)

const (
	defaultContactLimit = 50
	maxContactLimit     = 200
)

// ContactFilter narrows the admin contact listing. Decoded straight from
// query parameters (status, limit, offset).
type ContactFilter struct {
	Status *string
	Limit  int
	Offset int
}

func (f *ContactFilter) setDefaults() {
	if f.Limit <= 0 {
		f.Limit = defaultContactLimit
	}
	if f.Limit > maxContactLimit {
		f.Limit = maxContactLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// CommentFilter selects the flat comment list for one post. Decoded from
// query parameters (post_id, status).
type CommentFilter struct {
	PostID int
	Status string
}

func (f *CommentFilter) setDefaults() {
	if f.Status == "" {
		f.Status = CommentStatusApproved
	}
}

// UnmarshalContactFilter decodes query parameters into a ContactFilter.
func UnmarshalContactFilter(ctx context.Context, values url.Values) (ContactFilter, error) {
	var filter ContactFilter
	if err := urlstruct.Unmarshal(ctx, values, &filter); err != nil {
		return ContactFilter{}, err
	}
	return filter, nil
}

// UnmarshalCommentFilter decodes query parameters into a CommentFilter,
// defaulting status to approved.
func UnmarshalCommentFilter(ctx context.Context, values url.Values) (CommentFilter, error) {
	var filter CommentFilter
	if err := urlstruct.Unmarshal(ctx, values, &filter); err != nil {
		return CommentFilter{}, err
	}
	filter.setDefaults()
	return filter, nil
}
