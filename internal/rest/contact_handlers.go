package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forstval/studio-backend/internal/db"
	"github.com/forstval/studio-backend/internal/studio"
)

// SubmitContact handles POST /api/v1/contact.
// The inquiry is stored first; notification mail failure never fails the
// request.
func (h *Handler) SubmitContact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, msgContactInvalid)
	}
	if err := c.Validate(&req); err != nil {
		return h.validationError(c, err, msgContactInvalid)
	}

	inquiry := newInquiry(req)

	result, err := h.uc.SubmitInquiry(c.Request().Context(), inquiry)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, msgGenericError)
	}

	return c.JSON(http.StatusOK, submitContactResponse{
		Success: true,
		Message: msgContactThanks,
		ID:      result.ID,
	})
}

// Contacts handles GET /api/v1/contact for the admin surface, with optional
// status, limit and offset query parameters.
func (h *Handler) Contacts(c echo.Context) error {
	filter, err := db.UnmarshalContactFilter(c.Request().Context(), c.QueryParams())
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	inquiries, err := h.uc.Inquiries(c.Request().Context(), filter)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to retrieve contacts")
	}

	return c.JSON(http.StatusOK, contactsResponse{
		Success:  true,
		Contacts: NewContacts(inquiries),
	})
}

func newInquiry(req ContactRequest) *studio.Inquiry {
	inquiry := &studio.Inquiry{
		Contact: db.Contact{
			Name:        req.Name,
			Email:       req.Email,
			ServiceType: req.ServiceType,
			ProjectType: req.ProjectType,
			BudgetRange: req.BudgetRange,
			Timeline:    req.Timeline,
			Message:     req.Message,
		},
	}

	if req.Company != "" {
		inquiry.Company = &req.Company
	}
	if req.Phone != "" {
		inquiry.Phone = &req.Phone
	}

	return inquiry
}
