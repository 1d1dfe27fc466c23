package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRateLimiter creates a rate limiter backed by miniredis
func setupTestRateLimiter(t testing.TB, config RateLimiterConfig) (*RateLimiter, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRateLimiter(client, config), mr
}

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rl.Middleware())
	router.POST("/api/auth/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})
	return router
}

func hit(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsRequestsUnderLimit(t *testing.T) {
	rl, _ := setupTestRateLimiter(t, RateLimiterConfig{MaxRequests: 5, Window: time.Minute})
	router := newLimitedRouter(rl)

	for i := 0; i < 5; i++ {
		w := hit(router, "192.168.1.1")
		assert.Equal(t, http.StatusOK, w.Code, "Request %d should succeed", i+1)
	}
}

func TestRateLimiter_BlocksRequestsOverLimit(t *testing.T) {
	rl, _ := setupTestRateLimiter(t, RateLimiterConfig{MaxRequests: 2, Window: time.Minute, BlockTime: 5 * time.Minute})
	router := newLimitedRouter(rl)

	hit(router, "192.168.1.1")
	hit(router, "192.168.1.1")
	w := hit(router, "192.168.1.1")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "300", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestRateLimiter_DifferentIPsIndependent(t *testing.T) {
	rl, _ := setupTestRateLimiter(t, RateLimiterConfig{MaxRequests: 3, Window: time.Minute})
	router := newLimitedRouter(rl)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, hit(router, "192.168.1.1").Code)
	}
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(router, "192.168.1.2").Code, "IP2 request %d should succeed", i+1)
	}

	assert.Equal(t, http.StatusTooManyRequests, hit(router, "192.168.1.1").Code)
}

func TestRateLimiter_WindowExpiry(t *testing.T) {
	// No block time: the limit lifts as soon as the window rolls over
	rl, mr := setupTestRateLimiter(t, RateLimiterConfig{MaxRequests: 2, Window: time.Second})
	ctx := context.Background()
	ip := "192.168.1.100"

	for i := 0; i < 2; i++ {
		allowed, _, err := rl.CheckLimit(ctx, ip)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	allowed, retryAfter, err := rl.CheckLimit(ctx, ip)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))

	mr.FastForward(2 * time.Second)

	allowed, _, err = rl.CheckLimit(ctx, ip)
	require.NoError(t, err)
	assert.True(t, allowed, "Request should be allowed after window expires")
}

func TestRateLimiter_BlockOutlastsWindow(t *testing.T) {
	rl, mr := setupTestRateLimiter(t, RateLimiterConfig{MaxRequests: 1, Window: time.Second, BlockTime: time.Minute})
	ctx := context.Background()
	ip := "10.0.0.9"

	allowed, _, err := rl.CheckLimit(ctx, ip)
	require.NoError(t, err)
	require.True(t, allowed)
	allowed, _, err = rl.CheckLimit(ctx, ip)
	require.NoError(t, err)
	require.False(t, allowed)

	// Window is over but the block is not
	mr.FastForward(5 * time.Second)
	allowed, retryAfter, err := rl.CheckLimit(ctx, ip)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, 50*time.Second)

	mr.FastForward(time.Minute)
	allowed, _, err = rl.CheckLimit(ctx, ip)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimiter_BanAndUnban(t *testing.T) {
	rl, _ := setupTestRateLimiter(t, RateLimiterConfig{MaxRequests: 100, Window: time.Minute})
	router := newLimitedRouter(rl)
	ctx := context.Background()
	ip := "192.168.1.100"

	banned, err := rl.IsIPBanned(ctx, ip)
	require.NoError(t, err)
	assert.False(t, banned)

	require.NoError(t, rl.BanIP(ctx, ip))
	w := hit(router, ip)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "banned")

	require.NoError(t, rl.UnbanIP(ctx, ip))
	assert.Equal(t, http.StatusOK, hit(router, ip).Code)
}

func TestRateLimiter_KeyPrefixIsolation(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	a := NewRateLimiter(client, RateLimiterConfig{MaxRequests: 1, Window: time.Minute, KeyPrefix: "auth"})
	b := NewRateLimiter(client, RateLimiterConfig{MaxRequests: 1, Window: time.Minute, KeyPrefix: "other"})
	ctx := context.Background()

	allowed, _, err := a.CheckLimit(ctx, "1.1.1.1")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, _, err = b.CheckLimit(ctx, "1.1.1.1")
	require.NoError(t, err)
	assert.True(t, allowed, "limiters with different prefixes must not share counters")
}

func TestRateLimiter_FailsOpenWhenRedisDown(t *testing.T) {
	rl, mr := setupTestRateLimiter(t, RateLimiterConfig{MaxRequests: 1, Window: time.Minute})
	router := newLimitedRouter(rl)
	mr.Close()

	assert.Equal(t, http.StatusOK, hit(router, "192.168.1.1").Code)
	assert.Equal(t, http.StatusOK, hit(router, "192.168.1.1").Code)
}

func BenchmarkRateLimiter_CheckLimit(b *testing.B) {
	rl, _ := setupTestRateLimiter(b, RateLimiterConfig{MaxRequests: 1000000, Window: time.Minute})
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = rl.CheckLimit(ctx, "192.168.1.100")
	}
}
