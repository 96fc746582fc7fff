package wordpress

import (
	"regexp"
	"strings"
)

const (
	wordsPerMinute = 200

	fallbackAuthorName = "Unknown"
	fallbackAuthorSlug = "unknown"
	fallbackAvatar     = "/default-avatar.png"
	avatarSizeKey      = "96"
)

var tagRe = regexp.MustCompile(`<[^>]*>`)

// ReadingTime estimates minutes to read pre-rendered HTML content: strip
// markup, count whitespace-separated words, 200 words per minute, rounded
// up, never below one minute.
func ReadingTime(content string) int {
	words := len(strings.Fields(tagRe.ReplaceAllString(content, "")))

	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}

	return minutes
}

// normalizePost maps one raw upstream post into the stable Post shape,
// resolving embedded author, featured media and taxonomy terms.
func normalizePost(p wpPost) Post {
	post := Post{
		ID:          p.ID,
		Title:       p.Title.Rendered,
		Slug:        p.Slug,
		Content:     p.Content.Rendered,
		Excerpt:     p.Excerpt.Rendered,
		Author:      normalizeAuthor(p.Embedded),
		PublishedAt: p.Date,
		UpdatedAt:   p.Modified,
		Categories:  normalizeTerms(p.Embedded, 0),
		Tags:        normalizeTerms(p.Embedded, 1),
		ReadingTime: ReadingTime(p.Content.Rendered),
	}

	if img := normalizeFeaturedImage(p.Embedded, p.Title.Rendered); img != nil {
		post.FeaturedImage = img
	}

	return post
}

func normalizePosts(raw []wpPost) []Post {
	posts := make([]Post, len(raw))
	for i := range raw {
		posts[i] = normalizePost(raw[i])
	}
	return posts
}

func normalizeAuthor(embedded *wpEmbedded) Author {
	author := Author{
		Name:   fallbackAuthorName,
		Slug:   fallbackAuthorSlug,
		Avatar: fallbackAvatar,
	}

	if embedded == nil || len(embedded.Author) == 0 {
		return author
	}

	wp := embedded.Author[0]
	if wp.Name != "" {
		author.Name = wp.Name
	}
	if wp.Slug != "" {
		author.Slug = wp.Slug
	}
	if avatar, ok := wp.AvatarURLs[avatarSizeKey]; ok && avatar != "" {
		author.Avatar = avatar
	}

	return author
}

// normalizeFeaturedImage returns nil when the post carries no embedded media
// entry; the field is then omitted from JSON entirely. An empty alt text
// falls back to the post title.
func normalizeFeaturedImage(embedded *wpEmbedded, title string) *Image {
	if embedded == nil || len(embedded.FeaturedMedia) == 0 {
		return nil
	}

	media := embedded.FeaturedMedia[0]
	alt := media.AltText
	if alt == "" {
		alt = title
	}

	return &Image{
		URL:    media.SourceURL,
		Alt:    alt,
		Width:  media.MediaDetails.Width,
		Height: media.MediaDetails.Height,
	}
}

// normalizeTerms maps one of the parallel embedded term lists (index 0 =
// categories, index 1 = tags). Missing term data yields an empty list.
func normalizeTerms(embedded *wpEmbedded, index int) []Term {
	if embedded == nil || len(embedded.Terms) <= index {
		return []Term{}
	}

	raw := embedded.Terms[index]
	terms := make([]Term, len(raw))
	for i, t := range raw {
		terms[i] = Term{
			ID:   t.ID,
			Name: t.Name,
			Slug: t.Slug,
		}
	}

	return terms
}
