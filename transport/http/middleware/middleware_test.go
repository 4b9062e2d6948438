package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stayops/config"
	"stayops/infras/otel/mocks"
	"stayops/shared/cache"
	"stayops/shared/constant"
	"stayops/transport/http/middleware"

	"github.com/alicebob/miniredis/v2"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newMiddleware(t *testing.T, cfg *config.Config) middleware.AppMiddleware {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache.NewRedisCache(client, mocks.NewOtel()))
}

func TestActor(t *testing.T) {
	m := newMiddleware(t, &config.Config{})

	var got string

	handler := m.Actor(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, _ = r.Context().Value(constant.ContextKeyUserID).(string)
	}))

	t.Run("header sets the actor", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constant.RequestHeaderUser, "host-42")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "host-42", got)
	})

	t.Run("falls back to system", func(t *testing.T) {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, constant.SystemUser, got)
	})

	t.Run("echoes the request id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		chiMiddleware.RequestID(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
	})
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	handler := newMiddleware(t, cfg).RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	serve := func(remoteAddr, userAgent string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remoteAddr
		req.Header.Set(constant.RequestHeaderUserAgent, userAgent)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec
	}

	t.Run("ports share one bucket", func(t *testing.T) {
		codes := []int{}
		for _, addr := range []string{"10.0.0.1:5001", "10.0.0.1:5002", "10.0.0.1:5003"} {
			codes = append(codes, serve(addr, "curl").Code)
		}

		assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
	})

	t.Run("limited response carries the window", func(t *testing.T) {
		rec := serve("10.0.0.1:5004", "curl")

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "60", rec.Header().Get(constant.RequestHeaderRetryAfter))
		assert.Equal(t, "0", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("other clients are unaffected", func(t *testing.T) {
		rec := serve("10.0.0.2:5001", "curl")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		assert.Equal(t, http.StatusNoContent, serve("10.0.0.1:5005", "Mozilla/5.0").Code)
	})
}

func TestRateLimit_FailsOpen(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 1
	cfg.App.RateLimiter.WindowSeconds = 60

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	m := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache.NewRedisCache(client, mocks.NewOtel()))
	handler := m.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	server.Close()

	for range 3 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	handler := newMiddleware(t, &config.Config{}).RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
}

func TestTracingAndMetrics_PassThrough(t *testing.T) {
	cfg := &config.Config{}
	cfg.Metrics.Enable = true

	m := newMiddleware(t, cfg)
	handler := m.Tracing(m.Metrics(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/properties", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
