package middleware

import (
	"personal-task-management/pkg/log"
)

type Middleware struct {
	l           log.Logger
	internalKey string
	limiter     *rateLimiter
}

// New builds the request middlewares. An empty internalKey disables the gateway
// key check; rateLimitPerMin <= 0 disables rate limiting.
func New(l log.Logger, internalKey string, rateLimitPerMin int) Middleware {
	mw := Middleware{
		l:           l,
		internalKey: internalKey,
	}
	if rateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(rateLimitPerMin)
	}
	return mw
}
