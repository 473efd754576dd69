package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(nextHandler)

	t.Run("Allows within burst", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		req.RemoteAddr = "10.0.0.1:1234"

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Blocks strict tier after burst exhausted", func(t *testing.T) {
		var lastCode int
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest("POST", "/create-order", nil)
			req.RemoteAddr = "10.0.0.2:1234"

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			lastCode = w.Code
		}

		assert.Equal(t, http.StatusTooManyRequests, lastCode)
	})

	t.Run("Tiers have separate quotas", func(t *testing.T) {
		// Exhaust the strict bucket for this IP
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest("POST", "/verify-payment", nil)
			req.RemoteAddr = "10.0.0.3:1234"
			handler.ServeHTTP(httptest.NewRecorder(), req)
		}

		// General traffic from the same IP is still allowed
		req := httptest.NewRequest("GET", "/health", nil)
		req.RemoteAddr = "10.0.0.3:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Different IPs do not share buckets", func(t *testing.T) {
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest("POST", "/create-order", nil)
			req.RemoteAddr = "10.0.0.4:1234"
			handler.ServeHTTP(httptest.NewRecorder(), req)
		}

		req := httptest.NewRequest("POST", "/create-order", nil)
		req.RemoteAddr = "10.0.0.5:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestResolveRateTier(t *testing.T) {
	t.Run("Payment endpoints are strict", func(t *testing.T) {
		for _, path := range []string{"/create-order", "/verify-payment"} {
			req := httptest.NewRequest("POST", path, nil)
			limit, burst, tier := resolveRateTier(req)
			assert.Equal(t, limitStrict, limit)
			assert.Equal(t, burstStrict, burst)
			assert.Equal(t, "strict", tier)
		}
	})

	t.Run("Everything else is general", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		limit, burst, tier := resolveRateTier(req)
		assert.Equal(t, limitGeneral, limit)
		assert.Equal(t, burstGeneral, burst)
		assert.Equal(t, "general", tier)
	})
}
