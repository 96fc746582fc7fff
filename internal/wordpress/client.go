package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultPerPage  = 10
	taxonomyPerPage = "100"
)

// Client talks to a WordPress REST API (wp-json/wp/v2). A zero BaseURL means
// the blog is not configured; callers should check Configured before use.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{},
	}
}

func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// ListOptions filters the paginated post listing. Category and Tag are
// slugs; they are resolved to upstream numeric ids before the listing call.
type ListOptions struct {
	Page     int
	PerPage  int
	Category string
	Tag      string
	Search   string
}

func (c *Client) do(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	if params == nil {
		params = url.Values{}
	}
	// Embedded author, media and term data ride along on every request.
	params.Set("_embed", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wordpress request %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("wordpress api error: %s %s", path, resp.Status)
	}

	return resp, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	resp, err := c.do(ctx, path, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode wordpress response %s: %w", path, err)
	}

	return nil
}

// Posts retrieves one page of published posts. Pagination metadata comes
// from the X-WP-TotalPages / X-WP-Total response headers. A category or tag
// slug that resolves to nothing upstream yields an empty page, not an error.
func (c *Client) Posts(ctx context.Context, opts ListOptions) (*PostPage, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PerPage < 1 {
		opts.PerPage = defaultPerPage
	}

	params := url.Values{}
	params.Set("status", "publish")
	params.Set("page", strconv.Itoa(opts.Page))
	params.Set("per_page", strconv.Itoa(opts.PerPage))

	if opts.Category != "" {
		id, err := c.categoryIDBySlug(ctx, opts.Category)
		if err != nil {
			return nil, err
		}
		if id == 0 {
			return emptyPage(), nil
		}
		params.Set("categories", strconv.Itoa(id))
	}

	if opts.Tag != "" {
		id, err := c.tagIDBySlug(ctx, opts.Tag)
		if err != nil {
			return nil, err
		}
		if id == 0 {
			return emptyPage(), nil
		}
		params.Set("tags", strconv.Itoa(id))
	}

	if opts.Search != "" {
		params.Set("search", opts.Search)
	}

	resp, err := c.do(ctx, "/posts", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var raw []wpPost
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	totalPages, err := strconv.Atoi(resp.Header.Get("X-WP-TotalPages"))
	if err != nil {
		totalPages = 1
	}
	total, err := strconv.Atoi(resp.Header.Get("X-WP-Total"))
	if err != nil {
		total = 0
	}

	return &PostPage{
		Posts:      normalizePosts(raw),
		TotalPages: totalPages,
		Total:      total,
	}, nil
}

// PostBySlug retrieves a single published post, or nil when the slug is
// unknown upstream.
func (c *Client) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	params := url.Values{}
	params.Set("slug", slug)
	params.Set("status", "publish")

	var raw []wpPost
	if err := c.get(ctx, "/posts", params, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	post := normalizePost(raw[0])
	return &post, nil
}

// RelatedPosts returns up to limit published posts sharing a category with
// postID, excluding the post itself.
func (c *Client) RelatedPosts(ctx context.Context, postID, limit int) ([]Post, error) {
	var current wpPost
	if err := c.get(ctx, "/posts/"+strconv.Itoa(postID), nil, &current); err != nil {
		return nil, err
	}
	if len(current.Categories) == 0 {
		return []Post{}, nil
	}

	ids := make([]string, len(current.Categories))
	for i, id := range current.Categories {
		ids[i] = strconv.Itoa(id)
	}

	params := url.Values{}
	params.Set("categories", strings.Join(ids, ","))
	params.Set("exclude", strconv.Itoa(postID))
	params.Set("per_page", strconv.Itoa(limit))
	params.Set("status", "publish")

	var raw []wpPost
	if err := c.get(ctx, "/posts", params, &raw); err != nil {
		return nil, err
	}

	return normalizePosts(raw), nil
}

// Categories lists non-empty categories.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	params := url.Values{}
	params.Set("hide_empty", "true")
	params.Set("per_page", taxonomyPerPage)

	var categories []Category
	if err := c.get(ctx, "/categories", params, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

// Tags lists non-empty tags.
func (c *Client) Tags(ctx context.Context) ([]Tag, error) {
	params := url.Values{}
	params.Set("hide_empty", "true")
	params.Set("per_page", taxonomyPerPage)

	var tags []Tag
	if err := c.get(ctx, "/tags", params, &tags); err != nil {
		return nil, err
	}

	return tags, nil
}

// Probe issues a minimal read to verify the upstream API is reachable.
func (c *Client) Probe(ctx context.Context) error {
	params := url.Values{}
	params.Set("per_page", "1")

	resp, err := c.do(ctx, "/posts", params)
	if err != nil {
		return err
	}
	resp.Body.Close()

	return nil
}

func (c *Client) categoryIDBySlug(ctx context.Context, slug string) (int, error) {
	params := url.Values{}
	params.Set("slug", slug)

	var categories []Category
	if err := c.get(ctx, "/categories", params, &categories); err != nil {
		return 0, err
	}
	if len(categories) == 0 {
		return 0, nil
	}

	return categories[0].ID, nil
}

func (c *Client) tagIDBySlug(ctx context.Context, slug string) (int, error) {
	params := url.Values{}
	params.Set("slug", slug)

	var tags []Tag
	if err := c.get(ctx, "/tags", params, &tags); err != nil {
		return 0, err
	}
	if len(tags) == 0 {
		return 0, nil
	}

	return tags[0].ID, nil
}

func emptyPage() *PostPage {
	return &PostPage{Posts: []Post{}, TotalPages: 0, Total: 0}
}
