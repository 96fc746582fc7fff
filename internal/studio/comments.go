package studio

import (
	"context"
	"fmt"

	"github.com/forstval/studio-backend/internal/db"
)

// SubmitComment stores a new comment. Status is always pending; visibility
// is a moderation decision made outside this service.
func (m *Manager) SubmitComment(ctx context.Context, comment *Comment) (int, error) {
	if err := m.db.CreateComment(ctx, &comment.Comment); err != nil {
		return 0, fmt.Errorf("store comment: %w", err)
	}

	return comment.ID, nil
}

// CommentsForPost returns the comment tree for one post plus the total
// number of matching comments (the flat count, before tree assembly).
func (m *Manager) CommentsForPost(ctx context.Context, filter db.CommentFilter) ([]*Comment, int, error) {
	flat, err := m.db.CommentsByPost(ctx, filter.PostID, filter.Status)
	if err != nil {
		return nil, 0, fmt.Errorf("db get comments: %w", err)
	}

	return BuildCommentTree(flat), len(flat), nil
}

// BuildCommentTree assembles the flat, creation-ordered comment list into
// root comments carrying their replies. A reply lands under whichever
// comment its parent_id names, so chains nest as deep as the data goes.
//
// A comment whose parent is absent from the input (typically filtered out by
// status) is promoted to a root instead of being hidden, so moderated-away
// parents never take their approved replies down with them. Input order is
// preserved among roots and within each replies list.
func BuildCommentTree(flat []db.Comment) []*Comment {
	byID := make(map[int]*Comment, len(flat))
	roots := make([]*Comment, 0, len(flat))

	for i := range flat {
		node := &Comment{
			Comment: flat[i],
			Replies: []*Comment{},
		}
		byID[node.ID] = node

		if node.ParentID != nil {
			if parent, ok := byID[*node.ParentID]; ok {
				parent.Replies = append(parent.Replies, node)
				continue
			}
		}

		roots = append(roots, node)
	}

	return roots
}
