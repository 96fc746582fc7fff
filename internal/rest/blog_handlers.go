package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forstval/studio-backend/internal/wordpress"
)

type blogRequest struct {
	Page     int    `query:"page"`
	PerPage  int    `query:"per_page"`
	Category string `query:"category"`
	Tag      string `query:"tag"`
	Search   string `query:"search"`
	Type     string `query:"type"`
}

type postsResponse struct {
	Success    bool             `json:"success"`
	Posts      []wordpress.Post `json:"posts"`
	TotalPages int              `json:"totalPages"`
	Total      int              `json:"total"`
}

type categoriesResponse struct {
	Success    bool                 `json:"success"`
	Categories []wordpress.Category `json:"categories"`
}

type tagsResponse struct {
	Success bool            `json:"success"`
	Tags    []wordpress.Tag `json:"tags"`
}

type postResponse struct {
	Success      bool              `json:"success"`
	Post         wordpress.Post    `json:"post"`
	RelatedPosts *[]wordpress.Post `json:"relatedPosts,omitempty"`
}

// Blog handles GET /api/v1/blog. With type=categories or type=tags it lists
// the taxonomy; otherwise it returns one page of posts with optional
// category/tag/search filters.
func (h *Handler) Blog(c echo.Context) error {
	var req blogRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	ctx := c.Request().Context()

	switch req.Type {
	case "categories":
		return c.JSON(http.StatusOK, categoriesResponse{Success: true, Categories: h.uc.Categories(ctx)})
	case "tags":
		return c.JSON(http.StatusOK, tagsResponse{Success: true, Tags: h.uc.Tags(ctx)})
	}

	page, err := h.uc.Posts(ctx, wordpress.ListOptions{
		Page:     req.Page,
		PerPage:  req.PerPage,
		Category: req.Category,
		Tag:      req.Tag,
		Search:   req.Search,
	})
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch blog data")
	}

	return c.JSON(http.StatusOK, postsResponse{
		Success:    true,
		Posts:      page.Posts,
		TotalPages: page.TotalPages,
		Total:      page.Total,
	})
}

// BlogPost handles GET /api/v1/blog/:slug. include_related=true attaches up
// to three same-category posts; a failed related lookup degrades to an
// empty list rather than failing the request.
func (h *Handler) BlogPost(c echo.Context) error {
	slug := c.Param("slug")
	includeRelated := c.QueryParam("include_related") == "true"

	post, related, err := h.uc.PostBySlug(c.Request().Context(), slug, includeRelated)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch blog post")
	}
	if post == nil {
		return c.JSON(http.StatusNotFound, messageResponse{Success: false, Message: "Blog post not found"})
	}

	resp := postResponse{Success: true, Post: *post}
	if includeRelated {
		resp.RelatedPosts = &related
	}

	return c.JSON(http.StatusOK, resp)
}
