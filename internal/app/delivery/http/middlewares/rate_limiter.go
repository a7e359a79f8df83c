package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter throttles mutating requests per client IP. A client that
// exhausts its burst is rejected outright until blockTime has passed.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	rps       int
	blockTime time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func NewRateLimiter(rps int, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	if rps < 1 {
		rps = 1
	}
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		rps:       rps,
		blockTime: blockTime,
		log:       logger,
		now:       time.Now,
	}
}

func isReadOnly(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (l *RateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if blockedUntil, found := l.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(l.blocked, ip)
		delete(l.limiters, ip)
	}

	limiter, exists := l.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Limit(l.rps), l.rps)
		l.limiters[ip] = limiter
	}

	if !limiter.AllowN(now, 1) {
		l.blocked[ip] = now.Add(l.blockTime)
		return false
	}
	return true
}

func (l *RateLimiter) LimitWrites(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isReadOnly(r.Method) {
			next.ServeHTTP(w, r)
			return
		}

		if !l.allow(clientIP(r)) {
			utils.BuildErrorResponse(l.log, w, exceptions.ErrTooManyRequests(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NewWriteLimiter builds the write limiter from App.WriteRequestsPerSecond
// and App.WriteBlockTimeInSeconds.
func (m *Middlewares) NewWriteLimiter() *RateLimiter {
	blockTime := time.Duration(m.InternalConfig.App.WriteBlockTimeInSeconds) * time.Second
	return NewRateLimiter(m.InternalConfig.App.WriteRequestsPerSecond, blockTime, m.Log)
}
