package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forstval/studio-backend/internal/studio"
)

// Subscribe handles POST /api/v1/newsletter. An active subscription for the
// same email yields 409; a previously unsubscribed one is reactivated in
// place.
func (h *Handler) Subscribe(c echo.Context) error {
	var req NewsletterRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, msgNewsletterInvalid)
	}
	if err := c.Validate(&req); err != nil {
		return h.validationError(c, err, msgNewsletterInvalid)
	}

	var name *string
	if req.Name != "" {
		name = &req.Name
	}

	_, err := h.uc.Subscribe(c.Request().Context(), req.Email, name)
	if errors.Is(err, studio.ErrAlreadySubscribed) {
		return c.JSON(http.StatusConflict, messageResponse{Success: false, Message: msgAlreadySubscribed})
	}
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, msgGenericError)
	}

	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: msgNewsletterThanks})
}

// Unsubscribe handles DELETE /api/v1/newsletter?email=. Idempotent: unknown
// and already unsubscribed emails succeed too.
func (h *Handler) Unsubscribe(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, messageResponse{Success: false, Message: "Email address required"})
	}

	if err := h.uc.Unsubscribe(c.Request().Context(), email); err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to unsubscribe. Please try again.")
	}

	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: msgUnsubscribed})
}
