package studio

import (
	"context"
	"fmt"

	"github.com/forstval/studio-backend/internal/wordpress"
)

const relatedPostsLimit = 3

// BlogConfigured reports whether a WordPress backend is wired up.
func (m *Manager) BlogConfigured() bool {
	return m.wp.Configured()
}

// Posts retrieves one page of published posts with filters applied.
func (m *Manager) Posts(ctx context.Context, opts wordpress.ListOptions) (*wordpress.PostPage, error) {
	page, err := m.wp.Posts(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("wordpress posts: %w", err)
	}

	return page, nil
}

// PostBySlug retrieves a single published post, nil when unknown. When
// includeRelated is set, up to three same-category posts ride along; a
// failed related lookup degrades to an empty list.
func (m *Manager) PostBySlug(ctx context.Context, slug string, includeRelated bool) (*wordpress.Post, []wordpress.Post, error) {
	post, err := m.wp.PostBySlug(ctx, slug)
	if err != nil {
		return nil, nil, fmt.Errorf("wordpress post by slug: %w", err)
	}
	if post == nil {
		return nil, nil, nil
	}

	if !includeRelated {
		return post, nil, nil
	}

	related, err := m.wp.RelatedPosts(ctx, post.ID, relatedPostsLimit)
	if err != nil {
		m.log.Error("related posts lookup failed", "postId", post.ID, "error", err)
		related = []wordpress.Post{}
	}

	return post, related, nil
}

// Categories lists blog categories, degrading to an empty list on upstream
// failure.
func (m *Manager) Categories(ctx context.Context) []wordpress.Category {
	categories, err := m.wp.Categories(ctx)
	if err != nil {
		m.log.Error("categories lookup failed", "error", err)
		return []wordpress.Category{}
	}

	return categories
}

// Tags lists blog tags, degrading to an empty list on upstream failure.
func (m *Manager) Tags(ctx context.Context) []wordpress.Tag {
	tags, err := m.wp.Tags(ctx)
	if err != nil {
		m.log.Error("tags lookup failed", "error", err)
		return []wordpress.Tag{}
	}

	return tags
}
