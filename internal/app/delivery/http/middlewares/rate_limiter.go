package middlewares

import (
	"clinix-service/internal/pkg/constvars"
	"clinix-service/internal/pkg/exceptions"
	"clinix-service/internal/pkg/utils"
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter is a per-IP token bucket that blocks an IP for blockTime once
// its bucket runs dry. It guards the credential endpoints.
type RateLimiter struct {
	log       *zap.Logger
	visitors  map[string]*visitor
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(log *zap.Logger, requests int, per, blockTime time.Duration) *RateLimiter {
	if requests < 1 {
		requests = 1
	}
	return &RateLimiter{
		log:       log,
		visitors:  make(map[string]*visitor),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		r.mu.Lock()
		r.sweep()

		if blockedUntil, found := r.blocked[ip]; found {
			if r.now().Before(blockedUntil) {
				r.mu.Unlock()
				r.reject(w, req, ip, blockedUntil)
				return
			}
			delete(r.blocked, ip)
		}

		v, exists := r.visitors[ip]
		if !exists {
			v = &visitor{limiter: rate.NewLimiter(rate.Every(r.per/time.Duration(r.requests)), r.requests)}
			r.visitors[ip] = v
		}
		v.lastSeen = r.now()

		if !v.limiter.AllowN(r.now(), 1) {
			blockedUntil := r.now().Add(r.blockTime)
			r.blocked[ip] = blockedUntil
			r.mu.Unlock()
			r.reject(w, req, ip, blockedUntil)
			return
		}

		r.mu.Unlock()
		next.ServeHTTP(w, req)
	})
}

// sweep drops, at most once per refill period, buckets idle for a full
// period and expired blocks. An idle bucket is full again, so recreating it
// later changes nothing. Callers hold r.mu.
func (r *RateLimiter) sweep() {
	now := r.now()
	if now.Sub(r.lastSweep) < r.per {
		return
	}
	for ip, v := range r.visitors {
		if now.Sub(v.lastSeen) >= r.per {
			delete(r.visitors, ip)
		}
	}
	for ip, blockedUntil := range r.blocked {
		if !now.Before(blockedUntil) {
			delete(r.blocked, ip)
		}
	}
	r.lastSweep = now
}

func (r *RateLimiter) reject(w http.ResponseWriter, req *http.Request, ip string, blockedUntil time.Time) {
	retryAfter := int(blockedUntil.Sub(r.now()).Seconds()) + 1
	utils.LogSecurityEvent(r.log, "auth_rate_limited", utils.GetRequestID(req.Context()), "medium",
		zap.String(constvars.LoggingRemoteAddrKey, ip),
		zap.Int("retry_after_seconds", retryAfter),
	)
	w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(retryAfter))
	utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(errors.New("auth request limit reached")))
}

// AuthRateLimit builds the credential endpoint limiter from
// APP_AUTH_MAX_REQUESTS_PER_MINUTE.
func (m *Middlewares) AuthRateLimit() func(http.Handler) http.Handler {
	limiter := NewRateLimiter(m.Log, m.InternalConfig.App.AuthMaxRequestsPerMinute, time.Minute, time.Minute)
	return limiter.Limit
}
