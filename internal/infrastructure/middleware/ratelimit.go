package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geoloc/internal/infrastructure/config"
	"github.com/marcos-nsantos/geoloc/internal/pkg/apperror"
	"github.com/marcos-nsantos/geoloc/internal/pkg/httputil"
)

const rateLimitKeyPrefix = "geoloc:ratelimit:"

var errRateLimited = apperror.New(apperror.CodeRateLimited, "too many requests, please try again later", http.StatusTooManyRequests)

// RateLimiter is a sliding-window limiter keyed by client IP. Requests are
// let through when redis cannot be reached.
type RateLimiter struct {
	client         *redis.Client
	logger         *zap.Logger
	requestsPerMin int
	windowSize     time.Duration
}

func NewRateLimiter(client *redis.Client, cfg config.RateLimitConfig, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		client:         client,
		logger:         logger,
		requestsPerMin: cfg.RequestsPerMin,
		windowSize:     time.Minute,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := rateLimitKeyPrefix + c.ClientIP()

		allowed, remaining, err := rl.isAllowed(ctx, key)
		if err != nil {
			rl.logger.Warn("rate limit check failed", zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.requestsPerMin))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(rl.windowSize.Seconds())))
			httputil.HandleError(c, errRateLimited)
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) isAllowed(ctx context.Context, key string) (bool, int, error) {
	now := time.Now().UnixMilli()
	windowStart := now - rl.windowSize.Milliseconds()

	pipe := rl.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))

	// Members must be unique or concurrent requests in the same millisecond collapse.
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now),
		Member: uuid.NewString(),
	})

	countCmd := pipe.ZCard(ctx, key)

	pipe.Expire(ctx, key, rl.windowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		return true, rl.requestsPerMin, err
	}

	count := int(countCmd.Val())
	remaining := max(rl.requestsPerMin-count, 0)

	return count <= rl.requestsPerMin, remaining, nil
}
