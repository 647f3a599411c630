package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trendyfy/storefront/internal/events"
	"github.com/trendyfy/storefront/internal/logging"
	"github.com/trendyfy/storefront/internal/middleware/auth"
	"github.com/trendyfy/storefront/internal/service"
	"github.com/trendyfy/storefront/internal/transport"
)

type ContactHTTP struct {
	Svc      *service.ContactService
	Producer *events.Producer
}

func (h *ContactHTTP) Submit(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "contact.submit")

	var req transport.ContactRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("contact_error", "status", 400, "error", err)
		return errorJSON(c, http.StatusBadRequest, "Name, email and message are required")
	}

	// identity is optional: anonymous submissions are stored without a
	// user id
	var userID *uint
	if ident, ok := auth.IdentityFrom(c); ok {
		userID = &ident.ID
	}

	inquiry, err := h.Svc.Submit(ctx, userID, req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("contact_error", "status", 400, "error", err)
			return errorJSON(c, http.StatusBadRequest, contactValidationMessage(req))
		}
		l.Error("contact_error", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "Server error submitting contact form")
	}

	publish(c, h.Producer, events.TopicContactEvents, req.Email, map[string]any{
		"type":      "contact_submitted",
		"inquiryID": inquiry.ID,
		"email":     req.Email,
	})

	l.Info("contact_success", "inquiry_id", inquiry.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Thank you for contacting us! We will get back to you soon.",
	})
}

func contactValidationMessage(req transport.ContactRequest) string {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return "Name, email and message are required"
	}
	return "Invalid email address"
}
