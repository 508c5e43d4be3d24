package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	rds "github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const limiterPrefix = "eventsphere:limiter"

// NewLimiter builds a limiter for a rate such as "20-M". A nil client keeps
// counters in process memory; with redis they are shared between instances.
func NewLimiter(rate string, client *rds.Client) (*limiter.Limiter, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("parse rate %q: %w", rate, err)
	}

	opts := limiter.StoreOptions{
		Prefix:          limiterPrefix,
		MaxRetry:        limiter.DefaultMaxRetry,
		CleanUpInterval: limiter.DefaultCleanUpInterval,
	}

	var store limiter.Store
	if client == nil {
		store = memory.NewStoreWithOptions(opts)
	} else {
		store, err = sredis.NewStoreWithOptions(client, opts)
		if err != nil {
			return nil, fmt.Errorf("create redis limiter store: %w", err)
		}
	}

	return limiter.New(store, r), nil
}

// RateLimit throttles requests per principal. Callers without a well-formed
// principal id share the bucket of their client IP.
func RateLimit(l *limiter.Limiter, keyHeader string, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		key := c.ClientIP()
		if id, err := uuid.Parse(c.GetHeader(keyHeader)); err == nil {
			key = id.String()
		}

		lctx, err := l.Get(c.Request.Context(), key)
		if err != nil {
			// лимитер недоступен, запрос не блокируем
			log.LogAttrs(c.Request.Context(), logger.WarnLevel, "rate limiter unavailable",
				logger.String("error", err.Error()),
			)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))

		if lctx.Reached {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				ginext.H{"error": "rate limit exceeded"},
			)
			return
		}

		c.Next()
	}
}
