package middleware

import (
	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/lleva/internal/pkg/context"
)

// RequestContextMiddleware propagates request and trace ids into the
// request context and echoes them back in the response headers
func RequestContextMiddleware(serviceName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqCtx := appctx.FromEchoContext(c, serviceName)

			c.Set("request_context", reqCtx)
			c.Set("request_id", reqCtx.RequestID)

			ctx := appctx.WithRequestContext(c.Request().Context(), reqCtx)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set(echo.HeaderXRequestID, reqCtx.RequestID)
			c.Response().Header().Set("X-Trace-ID", reqCtx.TraceID)

			return next(c)
		}
	}
}

// GetRequestContext extracts request context from Echo context
func GetRequestContext(c echo.Context) *appctx.RequestContext {
	if reqCtx, ok := c.Get("request_context").(*appctx.RequestContext); ok {
		return reqCtx
	}
	return nil
}
