package wordpress

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWP struct {
	t *testing.T

	categories []Category
	tags       []Tag
	posts      []wpPost
	total      int
	totalPages int
	failPosts  bool

	requests []*http.Request
}

func (f *fakeWP) handler() http.Handler {
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(v); err != nil {
			f.t.Fatalf("encode fake response: %v", err)
		}
	}

	mux.HandleFunc("/categories", func(w http.ResponseWriter, r *http.Request) {
		f.requests = append(f.requests, r)
		slug := r.URL.Query().Get("slug")
		if slug == "" {
			writeJSON(w, f.categories)
			return
		}
		var matched []Category
		for _, c := range f.categories {
			if c.Slug == slug {
				matched = append(matched, c)
			}
		}
		writeJSON(w, matched)
	})

	mux.HandleFunc("/tags", func(w http.ResponseWriter, r *http.Request) {
		f.requests = append(f.requests, r)
		slug := r.URL.Query().Get("slug")
		if slug == "" {
			writeJSON(w, f.tags)
			return
		}
		var matched []Tag
		for _, tag := range f.tags {
			if tag.Slug == slug {
				matched = append(matched, tag)
			}
		}
		writeJSON(w, matched)
	})

	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		f.requests = append(f.requests, r)
		if f.failPosts {
			http.Error(w, "upstream broken", http.StatusInternalServerError)
			return
		}
		if slug := r.URL.Query().Get("slug"); slug != "" {
			var matched []wpPost
			for _, p := range f.posts {
				if p.Slug == slug {
					matched = append(matched, p)
				}
			}
			writeJSON(w, matched)
			return
		}
		w.Header().Set("X-WP-Total", strconv.Itoa(f.total))
		w.Header().Set("X-WP-TotalPages", strconv.Itoa(f.totalPages))
		writeJSON(w, f.posts)
	})

	mux.HandleFunc("/posts/", func(w http.ResponseWriter, r *http.Request) {
		f.requests = append(f.requests, r)
		if len(f.posts) == 0 {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, f.posts[0])
	})

	return mux
}

func newTestClient(t *testing.T, fake *fakeWP, token string) *Client {
	t.Helper()
	fake.t = t
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, token)
}

func simplePost(id int, slug string) wpPost {
	return wpPost{
		ID:      id,
		Slug:    slug,
		Title:   wpRendered{Rendered: "Post " + slug},
		Content: wpRendered{Rendered: "<p>some short content here</p>"},
	}
}

func TestClient_Posts(t *testing.T) {
	fake := &fakeWP{
		posts:      []wpPost{simplePost(1, "one"), simplePost(2, "two")},
		total:      25,
		totalPages: 3,
	}
	client := newTestClient(t, fake, "secret-token")

	page, err := client.Posts(context.Background(), ListOptions{Page: 2, PerPage: 10})
	require.NoError(t, err)

	assert.Len(t, page.Posts, 2)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 3, page.TotalPages)

	require.Len(t, fake.requests, 1)
	req := fake.requests[0]
	q := req.URL.Query()
	assert.Equal(t, "publish", q.Get("status"))
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "10", q.Get("per_page"))
	assert.Equal(t, "1", q.Get("_embed"))
	assert.Equal(t, "Bearer secret-token", req.Header.Get("Authorization"))
}

func TestClient_PostsCategoryFilter(t *testing.T) {
	t.Run("SlugResolvesToID", func(t *testing.T) {
		fake := &fakeWP{
			categories: []Category{{ID: 9, Name: "Engineering", Slug: "engineering"}},
			posts:      []wpPost{simplePost(1, "one")},
			total:      1,
			totalPages: 1,
		}
		client := newTestClient(t, fake, "")

		page, err := client.Posts(context.Background(), ListOptions{Category: "engineering"})
		require.NoError(t, err)
		assert.Len(t, page.Posts, 1)

		require.Len(t, fake.requests, 2)
		assert.Equal(t, "/categories", fake.requests[0].URL.Path)
		assert.Equal(t, "9", fake.requests[1].URL.Query().Get("categories"))
	})

	t.Run("UnknownSlugYieldsEmptyPage", func(t *testing.T) {
		fake := &fakeWP{
			posts:      []wpPost{simplePost(1, "one")},
			total:      1,
			totalPages: 1,
		}
		client := newTestClient(t, fake, "")

		page, err := client.Posts(context.Background(), ListOptions{Category: "missing"})
		require.NoError(t, err)

		assert.Empty(t, page.Posts)
		assert.Zero(t, page.Total)
		assert.Zero(t, page.TotalPages)

		// Only the lookup call; the listing is short-circuited.
		require.Len(t, fake.requests, 1)
		assert.Equal(t, "/categories", fake.requests[0].URL.Path)
	})

	t.Run("UnknownTagSlugYieldsEmptyPage", func(t *testing.T) {
		fake := &fakeWP{posts: []wpPost{simplePost(1, "one")}}
		client := newTestClient(t, fake, "")

		page, err := client.Posts(context.Background(), ListOptions{Tag: "missing"})
		require.NoError(t, err)
		assert.Empty(t, page.Posts)
	})
}

func TestClient_PostBySlug(t *testing.T) {
	fake := &fakeWP{posts: []wpPost{simplePost(7, "known-slug")}}
	client := newTestClient(t, fake, "")

	t.Run("Found", func(t *testing.T) {
		post, err := client.PostBySlug(context.Background(), "known-slug")
		require.NoError(t, err)
		require.NotNil(t, post)
		assert.Equal(t, 7, post.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		post, err := client.PostBySlug(context.Background(), "unknown")
		require.NoError(t, err)
		assert.Nil(t, post)
	})
}

func TestClient_PostsUpstreamFailure(t *testing.T) {
	fake := &fakeWP{failPosts: true}
	client := newTestClient(t, fake, "")

	_, err := client.Posts(context.Background(), ListOptions{})
	require.Error(t, err)

	_, err = client.RelatedPosts(context.Background(), 1, 3)
	require.Error(t, err)

	require.Error(t, client.Probe(context.Background()))
}

func TestClient_RelatedPosts(t *testing.T) {
	current := simplePost(10, "current")
	current.Categories = []int{1, 2}

	fake := &fakeWP{
		posts:      []wpPost{current, simplePost(11, "other")},
		total:      2,
		totalPages: 1,
	}
	client := newTestClient(t, fake, "")

	related, err := client.RelatedPosts(context.Background(), 10, 3)
	require.NoError(t, err)
	assert.Len(t, related, 2)

	require.Len(t, fake.requests, 2)
	assert.Equal(t, "/posts/10", fake.requests[0].URL.Path)
	q := fake.requests[1].URL.Query()
	assert.Equal(t, "1,2", q.Get("categories"))
	assert.Equal(t, "10", q.Get("exclude"))
	assert.Equal(t, "3", q.Get("per_page"))
}

func TestClient_Taxonomies(t *testing.T) {
	fake := &fakeWP{
		categories: []Category{{ID: 1, Name: "Engineering", Slug: "engineering", Count: 4}},
		tags:       []Tag{{ID: 5, Name: "Go", Slug: "go", Count: 2}},
	}
	client := newTestClient(t, fake, "")

	categories, err := client.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "engineering", categories[0].Slug)

	tags, err := client.Tags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "go", tags[0].Slug)

	for _, req := range fake.requests {
		q := req.URL.Query()
		assert.Equal(t, "true", q.Get("hide_empty"))
		assert.Equal(t, "100", q.Get("per_page"))
	}
}

func TestClient_Configured(t *testing.T) {
	assert.False(t, NewClient("", "").Configured())
	assert.True(t, NewClient("https://example.com/wp-json/wp/v2", "").Configured())
}
