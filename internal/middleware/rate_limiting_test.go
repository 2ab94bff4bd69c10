package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lvassor/train-server/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	"github.com/go-redis/redismock/v8"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type staticLimiter struct {
	allowed    int
	retryAfter time.Duration
}

func (s staticLimiter) Allow(_ context.Context, _ string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	return &redis_rate.Result{Allowed: s.allowed, RetryAfter: s.retryAfter}, nil
}

func TestRateLimit_allowed(t *testing.T) {
	m := metrics.NewTestManager()

	var served int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served++
	})
	handler := RateLimit(staticLimiter{allowed: 1}, "generate", 2, m)(next)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("POST", "/programs/generate", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, served)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.CounterRateLimitedRequests))
}

func TestRateLimit_limited(t *testing.T) {
	m := metrics.NewTestManager()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("must not be called when rate limited")
	})
	handler := RateLimit(staticLimiter{allowed: 0, retryAfter: 30 * time.Second}, "generate", 2, m)(next)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("POST", "/programs/generate", nil))
	assert.Equal(t, http.StatusTooEarly, rr.Code)
	assert.Contains(t, rr.Body.String(), "retry after")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterRateLimitedRequests))
}

func TestRateLimit_redisError(t *testing.T) {
	// a bare redis mock has no script loaded, the limiter errors out and
	// the middleware fails closed
	rdb, _ := redismock.NewClientMock()
	limiter := redis_rate.NewLimiter(rdb)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("must not be called on limiter error")
	})
	handler := RateLimit(limiter, "generate", 2, metrics.NewTestManager())(next)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("POST", "/programs/generate", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
