package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/forstval/studio-backend/internal/studio"
)

// User-facing copy, kept stable for the frontend.
const (
	msgContactThanks     = "Thank you! We'll get back to you within 24 hours."
	msgContactInvalid    = "Please check your form data and try again."
	msgCommentModeration = "Thank you for your comment! It will be reviewed before being published."
	msgCommentInvalid    = "Please check your comment data and try again."
	msgNewsletterThanks  = "Thank you for subscribing! Check your email for confirmation."
	msgNewsletterInvalid = "Please provide a valid email address."
	msgAlreadySubscribed = "You're already subscribed to our newsletter!"
	msgUnsubscribed      = "You have been unsubscribed successfully."
	msgGenericError      = "Sorry, something went wrong. Please try again later."
)

type Handler struct {
	uc       *studio.Manager
	log      *slog.Logger
	adminKey string
	dbOpts   *pg.Options
}

func NewHandler(uc *studio.Manager, log *slog.Logger, adminKey string, dbOpts *pg.Options) *Handler {
	return &Handler{
		uc:       uc,
		log:      log,
		adminKey: adminKey,
		dbOpts:   dbOpts,
	}
}

// handleError logs the full error server-side and returns a generic message
// to the client.
func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, errorResponse{Success: false, Message: message})
}

// validationError turns validator violations into a structured 400 response.
func (h *Handler) validationError(c echo.Context, err error, message string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{
		Success: false,
		Message: message,
		Errors:  fieldErrors(err),
	})
}
