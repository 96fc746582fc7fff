package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forstval/studio-backend/internal/db"
	"github.com/forstval/studio-backend/internal/studio"
)

// SubmitComment handles POST /api/v1/comments. Every comment starts out
// pending moderation.
func (h *Handler) SubmitComment(c echo.Context) error {
	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, msgCommentInvalid)
	}
	if err := c.Validate(&req); err != nil {
		return h.validationError(c, err, msgCommentInvalid)
	}

	comment := &studio.Comment{
		Comment: db.Comment{
			PostID:      req.PostID,
			ParentID:    req.ParentID,
			AuthorName:  req.AuthorName,
			AuthorEmail: req.AuthorEmail,
			Content:     req.Content,
		},
	}
	if req.AuthorWebsite != "" {
		comment.AuthorWebsite = &req.AuthorWebsite
	}

	id, err := h.uc.SubmitComment(c.Request().Context(), comment)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, msgGenericError)
	}

	return c.JSON(http.StatusCreated, submitCommentResponse{
		Success:   true,
		Message:   msgCommentModeration,
		CommentID: id,
	})
}

// Comments handles GET /api/v1/comments?post_id=&status=. Returns the
// comment tree plus the flat total count; status defaults to approved.
func (h *Handler) Comments(c echo.Context) error {
	filter, err := db.UnmarshalCommentFilter(c.Request().Context(), c.QueryParams())
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}
	if filter.PostID <= 0 {
		return c.JSON(http.StatusBadRequest, messageResponse{Success: false, Message: "Post ID is required"})
	}

	tree, total, err := h.uc.CommentsForPost(c.Request().Context(), filter)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to retrieve comments")
	}

	return c.JSON(http.StatusOK, commentsResponse{
		Success:    true,
		Comments:   NewComments(tree),
		TotalCount: total,
	})
}
