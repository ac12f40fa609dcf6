package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

type requestIDKey struct{}

// RequestIDMiddleware reuses an incoming X-Request-ID or mints one, echoes
// it back and stores it on the request context
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, id)
			ctx := context.WithValue(c.Request().Context(), requestIDKey{}, id)
			c.SetRequest(c.Request().WithContext(ctx))

			if txn := newrelic.FromContext(ctx); txn != nil {
				txn.AddAttribute("request_id", id)
			}
			return next(c)
		}
	}
}

// RequestID returns the id assigned by RequestIDMiddleware
func RequestID(c echo.Context) string {
	if id := RequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// RequestIDFromContext returns the request id stored on ctx, or ""
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
