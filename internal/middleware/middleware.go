package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/popeskul/moments-broadcast/internal/config"
)

type Config struct {
	Logger *zap.Logger

	CORS *CORSConfig

	RateLimit      rate.Limit
	RateLimitBurst int

	RequestTimeout time.Duration
}

// NewConfig builds the chain configuration from the middleware section.
func NewConfig(cfg config.MiddlewareConfig, logger *zap.Logger) *Config {
	c := &Config{
		Logger:         logger,
		RateLimit:      rate.Limit(cfg.RateLimit),
		RateLimitBurst: cfg.RateLimitBurst,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
	}
	if cfg.RateLimit <= 0 {
		c.RateLimit = rate.Inf
	}
	if cfg.EnableCORS {
		c.CORS = DefaultCORSConfig(cfg.AllowedOrigins...)
	}
	return c
}

// Chain wraps a handler with, from the outside in: logging, request ids,
// panic recovery, CORS, rate limiting and the request timeout. The returned
// stop function ends the rate limiter's background cleanup.
func Chain(config *Config) (wrap func(http.Handler) http.Handler, stop func()) {
	rateLimiter := NewRateLimiter(config.RateLimit, config.RateLimitBurst)

	wrap = func(handler http.Handler) http.Handler {
		h := handler

		h = Timeout(config.RequestTimeout)(h)

		h = rateLimiter.Middleware()(h)

		if config.CORS != nil {
			h = CORS(config.CORS)(h)
		}

		h = Recovery(config.Logger)(h)

		h = RequestID(h)

		h = Logger(config.Logger)(h)

		return h
	}

	return wrap, rateLimiter.Stop
}
