package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"mmex-search/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/search", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func TestRateLimiter_AllowsBurstThenRejects(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 3})
	handler := rl.Middleware()(okHandler)

	for i := 0; i < 3; i++ {
		rec := serve(e, handler, "192.168.1.100:12345", nil)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i)
	}

	rec := serve(e, handler, "192.168.1.100:12345", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_ClientsAreIndependent(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1})
	handler := rl.Middleware()(okHandler)

	assert.Equal(t, http.StatusOK, serve(e, handler, "10.0.0.1:1", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(e, handler, "10.0.0.1:1", nil).Code)
	assert.Equal(t, http.StatusOK, serve(e, handler, "10.0.0.2:1", nil).Code)
	assert.Equal(t, 2, rl.visitorCount())
}

func TestRateLimiter_RotatingForwardedForDoesNotEvadeLimit(t *testing.T) {
	e := echo.New()
	extractor, err := NewIPExtractor(nil)
	require.NoError(t, err)
	e.IPExtractor = extractor
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1})
	handler := rl.Middleware()(okHandler)

	first := map[string]string{"X-Forwarded-For": "203.0.113.9", "X-Real-IP": "203.0.113.9"}
	second := map[string]string{"X-Forwarded-For": "198.51.100.7", "X-Real-IP": "198.51.100.7"}

	assert.Equal(t, http.StatusOK, serve(e, handler, "192.0.2.10:5000", first).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(e, handler, "192.0.2.10:5001", second).Code)
	assert.Equal(t, 1, rl.visitorCount())
}

func TestRateLimiter_TrustedProxyForwardsClientAddress(t *testing.T) {
	e := echo.New()
	extractor, err := NewIPExtractor([]string{"10.0.0.0/8"})
	require.NoError(t, err)
	e.IPExtractor = extractor
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1})
	handler := rl.Middleware()(okHandler)

	client := map[string]string{"X-Forwarded-For": "203.0.113.9"}
	other := map[string]string{"X-Forwarded-For": "198.51.100.7"}
	// a spoofed hop left of the untrusted client address is not used
	spoofed := map[string]string{"X-Forwarded-For": "198.51.100.99, 203.0.113.9"}

	assert.Equal(t, http.StatusOK, serve(e, handler, "10.0.0.1:1", client).Code)
	assert.Equal(t, http.StatusOK, serve(e, handler, "10.0.0.2:1", other).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(e, handler, "10.0.0.1:1", spoofed).Code)
}

func TestNewIPExtractor_RejectsBadCIDR(t *testing.T) {
	_, err := NewIPExtractor([]string{"10.0.0.0/99"})
	assert.Error(t, err)
}

func TestRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{})

	assert.Equal(t, 20, rl.requestsPerSecond)
	assert.Equal(t, 40, rl.burst)
}

func TestRateLimiter_CleanupDropsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 5, Burst: 5})
	rl.limiter("10.0.0.1")
	rl.limiter("10.0.0.2")

	rl.mu.Lock()
	rl.visitors["10.0.0.1"].lastSeen = time.Now().Add(-10 * time.Minute)
	rl.mu.Unlock()

	rl.cleanup(time.Now())

	assert.Equal(t, 1, rl.visitorCount())
}

func TestRateLimiter_RunStopsOnCancel(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		rl.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRateLimiter_ConcurrentRequests(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 10})
	handler := rl.Middleware()(okHandler)

	var mu sync.Mutex
	codes := map[int]int{}
	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := serve(e, handler, "172.16.0.1:80", nil)
			mu.Lock()
			codes[rec.Code]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, codes[http.StatusOK], 11)
	assert.Equal(t, 30, codes[http.StatusOK]+codes[http.StatusTooManyRequests])
}
