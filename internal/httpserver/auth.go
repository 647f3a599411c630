package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trendyfy/storefront/internal/events"
	"github.com/trendyfy/storefront/internal/logging"
	"github.com/trendyfy/storefront/internal/middleware/auth"
	"github.com/trendyfy/storefront/internal/service"
	"github.com/trendyfy/storefront/internal/tokens"
	"github.com/trendyfy/storefront/internal/transport"
)

type AuthHTTP struct {
	Svc      *service.AuthService
	Producer *events.Producer
}

func (h *AuthHTTP) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.signup")

	var req transport.SignupRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("signup_error", "status", 400, "error", err)
		return errorJSON(c, http.StatusBadRequest, "Email, password and name are required")
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		l.Warn("signup_error", "status", 400, "reason", "missing fields")
		return errorJSON(c, http.StatusBadRequest, "Email, password and name are required")
	}
	if len(req.Password) < 6 {
		l.Warn("signup_error", "status", 400, "reason", "short password")
		return errorJSON(c, http.StatusBadRequest, "Password must be at least 6 characters")
	}

	res, err := h.Svc.Signup(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			l.Warn("signup_error", "status", 400, "reason", "email taken")
			return errorJSON(c, http.StatusBadRequest, "Email already registered")
		case errors.Is(err, service.ErrValidation):
			l.Warn("signup_error", "status", 400, "error", err)
			return errorJSON(c, http.StatusBadRequest, "Invalid signup request")
		default:
			l.Error("signup_error", "status", 500, "error", err)
			return errorJSON(c, http.StatusInternalServerError, "Server error during signup")
		}
	}

	c.SetCookie(tokens.CreateCookie(res.Token, res.ExpiresAt))

	publish(c, h.Producer, events.TopicUserEvents, res.User.Email, map[string]any{
		"type":   "user_registered",
		"userID": res.User.ID,
		"email":  res.User.Email,
	})

	l.Info("signup_success", "user_id", res.User.ID)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": res.User})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return errorJSON(c, http.StatusBadRequest, "Email and password are required")
	}
	if req.Email == "" || req.Password == "" {
		l.Warn("login_error", "status", 400, "reason", "missing fields")
		return errorJSON(c, http.StatusBadRequest, "Email and password are required")
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			l.Warn("login_failed", "status", 401)
			return errorJSON(c, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, service.ErrValidation):
			l.Warn("login_error", "status", 400, "error", err)
			return errorJSON(c, http.StatusBadRequest, "Email and password are required")
		default:
			l.Error("login_error", "status", 500, "error", err)
			return errorJSON(c, http.StatusInternalServerError, "Server error during login")
		}
	}

	c.SetCookie(tokens.CreateCookie(res.Token, res.ExpiresAt))

	publish(c, h.Producer, events.TopicUserEvents, res.User.Email, map[string]any{
		"type":   "user_logged_in",
		"userID": res.User.ID,
	})

	l.Info("login_success", "user_id", res.User.ID)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": res.User})
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	c.SetCookie(tokens.DeleteCookie())
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Me reports the resolved identity, or null without failing, so the
// frontend can render either state.
func (h *AuthHTTP) Me(c echo.Context) error {
	ident, ok := auth.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusOK, echo.Map{"user": nil})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": ident})
}
