package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_CountsByStatus(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusServiceUnavailable, errors.New("down").Error())
	})

	okBefore := testutil.ToFloat64(RequestTotal.WithLabelValues(http.MethodGet, "/ok", "200"))
	boomBefore := testutil.ToFloat64(RequestTotal.WithLabelValues(http.MethodGet, "/boom", "503"))

	for _, path := range []string{"/ok", "/ok", "/boom"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(RequestTotal.WithLabelValues(http.MethodGet, "/ok", "200")) - okBefore; got != 2 {
		t.Errorf("/ok 200 count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(RequestTotal.WithLabelValues(http.MethodGet, "/boom", "503")) - boomBefore; got != 1 {
		t.Errorf("/boom 503 count = %v, want 1", got)
	}
}
