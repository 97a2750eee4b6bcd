package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"interest-calculator/repository"
	"interest-calculator/service"
)

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := newRateLimiter(2, time.Minute, func() time.Time { return now })

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"), "buckets are per client")

	now = now.Add(time.Minute)
	assert.True(t, rl.Allow("a"))
}

func TestRateLimiter_Cleanup(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := newRateLimiter(1, time.Minute, func() time.Time { return now })
	rl.Allow("a")

	now = now.Add(2 * time.Hour)
	rl.cleanup()
	assert.Empty(t, rl.clients)
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := newRateLimiter(1, time.Minute, func() time.Time { return now })

	svc := service.NewInterestService(repository.NewHistoryRepositoryMemory(), zap.NewNop())
	router := NewRouter(NewInterestHandler(svc, nil, nil), rl, nil)

	body := `{"principal":"10000","rate":"500"}`
	assert.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/interest/one-time", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, router, http.MethodPost, "/interest/one-time", body).Code)

	// health checks are not limited
	assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/health", "").Code)
}
