// Package httpserver carries the echo handlers and route registration
// for the storefront API.
package httpserver

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trendyfy/storefront/internal/events"
	"github.com/trendyfy/storefront/internal/transport"
)

func errorJSON(c echo.Context, code int, msg string) error {
	return c.JSON(code, transport.ErrorResponse{Error: msg})
}

func publish(c echo.Context, producer *events.Producer, topic, key string, event map[string]any) {
	if producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := producer.PublishEvent(ctx, topic, key, event); err != nil {
		c.Logger().Errorf("kafka publish error: %v", err)
	}
}
