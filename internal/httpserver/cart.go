package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trendyfy/storefront/internal/events"
	"github.com/trendyfy/storefront/internal/logging"
	"github.com/trendyfy/storefront/internal/middleware/auth"
	"github.com/trendyfy/storefront/internal/service"
	"github.com/trendyfy/storefront/internal/transport"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *events.Producer
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	ident, ok := auth.IdentityFrom(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Authentication required")
	}

	entries, err := h.Svc.GetCart(ctx, ident.ID)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "Server error fetching cart")
	}

	return c.JSON(http.StatusOK, entries)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	ident, ok := auth.IdentityFrom(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Authentication required")
	}

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return errorJSON(c, http.StatusBadRequest, "Invalid product or quantity")
	}

	res, err := h.Svc.AddToCart(ctx, ident.ID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("add_to_cart_error", "status", 400, "error", err)
			return errorJSON(c, http.StatusBadRequest, "Invalid product or quantity")
		case errors.Is(err, service.ErrNotFound):
			l.Warn("add_to_cart_error", "status", 404, "error", err)
			return errorJSON(c, http.StatusNotFound, "Product not found")
		case errors.Is(err, service.ErrInsufficientStock):
			l.Warn("add_to_cart_error", "status", 400, "error", err)
			return errorJSON(c, http.StatusBadRequest, "Insufficient stock")
		default:
			l.Error("add_to_cart_error", "status", 500, "error", err)
			return errorJSON(c, http.StatusInternalServerError, "Server error adding to cart")
		}
	}

	publish(c, h.Producer, events.TopicCartEvents, fmt.Sprint(ident.ID), map[string]any{
		"type":      "cart_item_added",
		"userID":    ident.ID,
		"productID": req.ProductID,
		"quantity":  res.Quantity,
		"created":   res.Created,
	})

	msg := "Cart updated"
	if res.Created {
		msg = "Added to cart"
	}
	l.Info("add_to_cart_success", "user_id", ident.ID, "product_id", req.ProductID, "quantity", res.Quantity)
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"message":  msg,
		"created":  res.Created,
		"quantity": res.Quantity,
	})
}

func (h *CartHTTP) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")

	ident, ok := auth.IdentityFrom(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Authentication required")
	}

	entryID, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("update_cart_error", "status", 400, "error", err)
		return errorJSON(c, http.StatusBadRequest, "Invalid cart item id")
	}

	var req transport.UpdateCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_error", "status", 400, "error", err)
		return errorJSON(c, http.StatusBadRequest, "Quantity must be at least 1")
	}

	if err := h.Svc.UpdateQuantity(ctx, ident.ID, entryID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("update_cart_error", "status", 400, "error", err)
			return errorJSON(c, http.StatusBadRequest, "Quantity must be at least 1")
		case errors.Is(err, service.ErrNotFound):
			l.Warn("update_cart_error", "status", 404, "error", err)
			return errorJSON(c, http.StatusNotFound, "Cart item not found")
		case errors.Is(err, service.ErrInsufficientStock):
			l.Warn("update_cart_error", "status", 400, "error", err)
			return errorJSON(c, http.StatusBadRequest, "Insufficient stock")
		default:
			l.Error("update_cart_error", "status", 500, "error", err)
			return errorJSON(c, http.StatusInternalServerError, "Server error updating cart")
		}
	}

	publish(c, h.Producer, events.TopicCartEvents, fmt.Sprint(ident.ID), map[string]any{
		"type":     "cart_item_updated",
		"userID":   ident.ID,
		"entryID":  entryID,
		"quantity": req.Quantity,
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true, "quantity": req.Quantity})
}

func (h *CartHTTP) RemoveEntry(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	ident, ok := auth.IdentityFrom(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Authentication required")
	}

	entryID, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("remove_cart_error", "status", 400, "error", err)
		return errorJSON(c, http.StatusBadRequest, "Invalid cart item id")
	}

	if err := h.Svc.RemoveEntry(ctx, ident.ID, entryID); err != nil {
		l.Error("remove_cart_error", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "Server error removing item")
	}

	publish(c, h.Producer, events.TopicCartEvents, fmt.Sprint(ident.ID), map[string]any{
		"type":    "cart_item_removed",
		"userID":  ident.ID,
		"entryID": entryID,
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// CartCount tolerates anonymous callers: no identity means count 0.
func (h *CartHTTP) CartCount(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.count")

	ident, ok := auth.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusOK, echo.Map{"count": 0})
	}

	count, err := h.Svc.CartCount(ctx, ident.ID)
	if err != nil {
		l.Error("cart_count_error", "error", err)
		return c.JSON(http.StatusOK, echo.Map{"count": 0})
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}
