package middleware

import (
	"context"
	"errors"
	"net/http"

	"productReco/domain"
	"productReco/pkg/logger"
	jsonres "productReco/pkg/response"

	"github.com/labstack/echo/v4"
)

// StatusFor maps an error from the engine to an HTTP status code.
func StatusFor(err error) int {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code
	case errors.Is(err, domain.ErrUnknownProduct):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDataUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler renders every error returned by a handler in the standard
// response envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := StatusFor(err)

	message := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(he.Code)
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			"trace_id", c.Get("trace_id"),
			"method", c.Request().Method,
			"path", c.Path(),
			"status", status,
			"error", err,
		)
	}

	body := jsonres.Error(status, message, nil)
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		logger.Error("failed to write error response", "error", err)
	}
}
