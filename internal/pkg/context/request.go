package context

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestContext holds request-specific information
type RequestContext struct {
	RequestID   string
	UserID      string
	TraceID     string
	ServiceName string
	StartTime   time.Time
}

// WithRequestContext copies reqCtx into ctx values
func WithRequestContext(ctx context.Context, reqCtx *RequestContext) context.Context {
	if reqCtx == nil {
		return ctx
	}
	ctx = context.WithValue(ctx, RequestIDKey, reqCtx.RequestID)
	ctx = context.WithValue(ctx, UserIDKey, reqCtx.UserID)
	ctx = context.WithValue(ctx, TraceIDKey, reqCtx.TraceID)
	ctx = context.WithValue(ctx, ServiceNameKey, reqCtx.ServiceName)
	return ctx
}

// FromEchoContext builds a RequestContext from the incoming request,
// reusing the caller's request and trace ids when present
func FromEchoContext(c echo.Context, serviceName string) *RequestContext {
	reqCtx := &RequestContext{
		ServiceName: serviceName,
		StartTime:   time.Now(),
	}

	reqCtx.RequestID = c.Request().Header.Get(echo.HeaderXRequestID)
	if reqCtx.RequestID == "" {
		reqCtx.RequestID = uuid.New().String()
	}

	if userID, ok := c.Get("user_id").(string); ok {
		reqCtx.UserID = userID
	}

	reqCtx.TraceID = c.Request().Header.Get("X-Trace-ID")
	if reqCtx.TraceID == "" {
		reqCtx.TraceID = uuid.New().String()
	}

	return reqCtx
}
