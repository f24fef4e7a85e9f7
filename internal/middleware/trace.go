package middleware

import (
	"productReco/business/recommend"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceID tags each request with an id, taken from X-Request-ID when the
// client sent one. The id is echoed back and attached to the request context.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, id)
			c.Set("trace_id", id)

			req := c.Request()
			c.SetRequest(req.WithContext(recommend.WithTraceID(req.Context(), id)))

			return next(c)
		}
	}
}
