package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"credit-engine/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("blocks once the burst is spent", func(t *testing.T) {
		rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 2}, testLogger)
		t.Cleanup(rl.Stop)
		handler := rl.Middleware(ok)

		codes := make([]int, 0, 3)
		for range 3 {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "127.0.0.1:12345"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			codes = append(codes, rec.Code)

			if rec.Code == http.StatusTooManyRequests {
				var body map[string]map[string]any
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, "Rate limit exceeded", body["error"]["message"])
			}
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 1}, testLogger)
		t.Cleanup(rl.Stop)
		handler := rl.Middleware(ok)

		for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = addr
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code, addr)
		}
	})

	t.Run("disabled passes through", func(t *testing.T) {
		rl := NewRateLimiter(config.RateLimitConfig{Enabled: false, Burst: 0}, testLogger)
		handler := rl.Middleware(ok)
		for range 5 {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("idle buckets are evicted", func(t *testing.T) {
		rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 1}, testLogger)
		t.Cleanup(rl.Stop)

		rl.limiterFor("10.0.0.9")
		rl.evictIdle()

		_, found := rl.limiters.Load("10.0.0.9")
		assert.False(t, found)
	})
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "192.168.1.1, 10.0.0.1")
	assert.Equal(t, "192.168.1.1", clientIP(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "10.0.0.1")
	assert.Equal(t, "10.0.0.1", clientIP(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:12345"
	assert.Equal(t, "127.0.0.1", clientIP(req))
}
