package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
	"github.com/what2do/eventsphere/internal/metrics"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestRouter(t *testing.T, mw ...ginext.HandlerFunc) *ginext.Engine {
	t.Helper()
	r := ginext.New("test")
	r.Use(mw...)
	r.GET("/ping", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"request_id": c.GetString("request_id")})
	})
	r.GET("/panic", func(c *ginext.Context) {
		panic("boom")
	})
	return r
}

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	l, err := NewLimiter("2-M", nil)
	require.NoError(t, err)

	r := newTestRouter(t, RateLimit(l, "X-User-ID", newTestLogger(t)))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-User-ID", "6f1c2a5e-3b7d-4e8a-9c0f-1a2b3c4d5e6f")
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_KeysArePerPrincipal(t *testing.T) {
	l, err := NewLimiter("1-M", nil)
	require.NoError(t, err)

	r := newTestRouter(t, RateLimit(l, "X-User-ID", newTestLogger(t)))

	for _, user := range []string{
		"6f1c2a5e-3b7d-4e8a-9c0f-1a2b3c4d5e6f",
		"0d9e8f7a-6b5c-4d3e-8f1a-2b3c4d5e6f70",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-User-ID", user)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimit_MalformedPrincipalUsesClientIP(t *testing.T) {
	l, err := NewLimiter("2-M", nil)
	require.NoError(t, err)

	r := newTestRouter(t, RateLimit(l, "X-User-ID", newTestLogger(t)))

	codes := make([]int, 0, 3)
	for _, junk := range []string{"a", "b", ""} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "198.51.100.7:4711"
		req.Header.Set("X-User-ID", junk)
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewLimiter_InvalidRate(t *testing.T) {
	_, err := NewLimiter("lots", nil)
	assert.Error(t, err)
}

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	r := newTestRouter(t, RequestID())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	assert.Contains(t, w.Body.String(), "req-42")
}

func TestRecovery_ReturnsInternalError(t *testing.T) {
	log := newTestLogger(t)
	r := newTestRouter(t, RequestID(), RequestLogger(log), Recovery(log))
	before := testutil.ToFloat64(metrics.HandlerPanics.WithLabelValues("/panic"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.HandlerPanics.WithLabelValues("/panic")))
}
