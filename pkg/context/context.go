package context

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type ctxKey int

const requestIDKey ctxKey = iota

const headerRequestID = "X-Request-ID"

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return "unknown"
	}
	requestID, ok := ctx.Value(requestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

// FromFiberCtx builds a plain context carrying the request ID set by the
// request-ID middleware, falling back to the inbound header.
func FromFiberCtx(c *fiber.Ctx) context.Context {
	requestID, ok := c.Locals(headerRequestID).(string)
	if !ok || requestID == "" {
		requestID = c.Get(headerRequestID)
	}
	if requestID == "" {
		requestID = "unknown"
	}

	return WithRequestID(context.Background(), requestID)
}
