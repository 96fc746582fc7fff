package wordpress

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(n int) string {
	if n == 0 {
		return ""
	}
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"Empty", "", 1},
		{"OneWord", "hello", 1},
		{"199Words", words(199), 1},
		{"200Words", words(200), 1},
		{"201Words", words(201), 2},
		{"400Words", words(400), 2},
		{"401Words", words(401), 3},
		{"MarkupIsStripped", "<p>" + words(400) + "</p><img src=\"x\">", 2},
		{"OnlyMarkup", "<p></p><br><div></div>", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadingTime(tt.content))
		})
	}
}

func TestReadingTimeMonotonic(t *testing.T) {
	prev := 0
	for n := 0; n <= 1000; n += 50 {
		got := ReadingTime(words(n))
		assert.GreaterOrEqual(t, got, prev, "reading time must not decrease with word count (n=%d)", n)
		prev = got
	}
}

func fullPost() wpPost {
	return wpPost{
		ID:       10,
		Date:     "2025-06-01T10:00:00",
		Modified: "2025-06-02T11:00:00",
		Slug:     "launching-our-studio",
		Status:   "publish",
		Title:    wpRendered{Rendered: "Launching Our Studio"},
		Content:  wpRendered{Rendered: "<p>" + words(400) + "</p>"},
		Excerpt:  wpRendered{Rendered: "<p>Short teaser.</p>"},
		Embedded: &wpEmbedded{
			Author: []wpAuthor{{
				ID:   3,
				Name: "Dana Writer",
				Slug: "dana",
				AvatarURLs: map[string]string{
					"24": "https://cdn.example.com/avatar-24.png",
					"96": "https://cdn.example.com/avatar-96.png",
				},
			}},
			FeaturedMedia: []wpMedia{{
				ID:        77,
				SourceURL: "https://cdn.example.com/hero.jpg",
				AltText:   "Team at work",
				MediaDetails: struct {
					Width  int `json:"width"`
					Height int `json:"height"`
				}{Width: 1200, Height: 630},
			}},
			Terms: [][]wpTerm{
				{{ID: 1, Name: "Engineering", Slug: "engineering", Taxonomy: "category"}},
				{{ID: 5, Name: "Go", Slug: "go", Taxonomy: "post_tag"}, {ID: 6, Name: "Web", Slug: "web", Taxonomy: "post_tag"}},
			},
		},
	}
}

func TestNormalizePost(t *testing.T) {
	post := normalizePost(fullPost())

	assert.Equal(t, 10, post.ID)
	assert.Equal(t, "Launching Our Studio", post.Title)
	assert.Equal(t, "launching-our-studio", post.Slug)
	assert.Equal(t, "2025-06-01T10:00:00", post.PublishedAt)
	assert.Equal(t, "2025-06-02T11:00:00", post.UpdatedAt)
	assert.Equal(t, 2, post.ReadingTime)

	assert.Equal(t, "Dana Writer", post.Author.Name)
	assert.Equal(t, "dana", post.Author.Slug)
	assert.Equal(t, "https://cdn.example.com/avatar-96.png", post.Author.Avatar)

	require.NotNil(t, post.FeaturedImage)
	assert.Equal(t, "https://cdn.example.com/hero.jpg", post.FeaturedImage.URL)
	assert.Equal(t, "Team at work", post.FeaturedImage.Alt)
	assert.Equal(t, 1200, post.FeaturedImage.Width)
	assert.Equal(t, 630, post.FeaturedImage.Height)

	require.Len(t, post.Categories, 1)
	assert.Equal(t, Term{ID: 1, Name: "Engineering", Slug: "engineering"}, post.Categories[0])
	require.Len(t, post.Tags, 2)
	assert.Equal(t, "go", post.Tags[0].Slug)
}

func TestNormalizePostFallbacks(t *testing.T) {
	t.Run("NoEmbeddedData", func(t *testing.T) {
		raw := fullPost()
		raw.Embedded = nil

		post := normalizePost(raw)

		assert.Equal(t, "Unknown", post.Author.Name)
		assert.Equal(t, "unknown", post.Author.Slug)
		assert.Equal(t, "/default-avatar.png", post.Author.Avatar)
		assert.Nil(t, post.FeaturedImage)
		assert.Empty(t, post.Categories)
		assert.NotNil(t, post.Categories)
		assert.Empty(t, post.Tags)
	})

	t.Run("EmptyAltFallsBackToTitle", func(t *testing.T) {
		raw := fullPost()
		raw.Embedded.FeaturedMedia[0].AltText = ""

		post := normalizePost(raw)

		require.NotNil(t, post.FeaturedImage)
		assert.Equal(t, "Launching Our Studio", post.FeaturedImage.Alt)
	})

	t.Run("MissingAvatarSizeUsesDefault", func(t *testing.T) {
		raw := fullPost()
		raw.Embedded.Author[0].AvatarURLs = map[string]string{"24": "small.png"}

		post := normalizePost(raw)

		assert.Equal(t, "/default-avatar.png", post.Author.Avatar)
	})

	t.Run("OnlyCategoriesEmbedded", func(t *testing.T) {
		raw := fullPost()
		raw.Embedded.Terms = raw.Embedded.Terms[:1]

		post := normalizePost(raw)

		assert.Len(t, post.Categories, 1)
		assert.Empty(t, post.Tags)
		assert.NotNil(t, post.Tags)
	})
}

// The featuredImage key must be absent from serialized output when the post
// has no embedded media, not rendered as null.
func TestFeaturedImageOmittedFromJSON(t *testing.T) {
	raw := fullPost()
	raw.Embedded.FeaturedMedia = nil

	data, err := json.Marshal(normalizePost(raw))
	require.NoError(t, err)

	assert.NotContains(t, string(data), "featuredImage")
}
