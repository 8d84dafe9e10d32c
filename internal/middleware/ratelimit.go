package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
	"go.uber.org/zap"
)

// Per-route rates. Write operations are deliberately tight: the board is
// anonymous, so IP throttling is the only brake on spam.
var (
	WriteRate  = limiter.Rate{Period: 24 * time.Hour, Limit: 50}
	VerifyRate = limiter.Rate{Period: 15 * time.Minute, Limit: 10}
)

// NewRateLimitStore returns a Redis-backed store when redisURL is set and
// usable, otherwise an in-memory store. A broken Redis URL degrades to
// memory rather than failing boot.
func NewRateLimitStore(redisURL string, log *zap.Logger) limiter.Store {
	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Warn("invalid REDIS_URL, using in-memory rate limit store", zap.Error(err))
			return memory.NewStore()
		}
		store, err := sredis.NewStoreWithOptions(redis.NewClient(opts), limiter.StoreOptions{
			Prefix: "nexthire:ratelimit",
		})
		if err != nil {
			log.Warn("redis rate limit store unavailable, using in-memory store", zap.Error(err))
			return memory.NewStore()
		}
		log.Info("rate limiter using redis store")
		return store
	}
	return memory.NewStore()
}

// RateLimit throttles by client IP. The limiter failing (e.g. Redis down)
// lets the request through: availability over strictness here.
func RateLimit(store limiter.Store, rate limiter.Rate, log *zap.Logger) gin.HandlerFunc {
	lim := limiter.New(store, rate)
	return func(c *gin.Context) {
		lctx, err := lim.Get(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn("rate limiter error", zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

		if lctx.Reached {
			log.Warn("rate limit exceeded",
				zap.String("client_ip", c.ClientIP()),
				zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"detail": "Rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
