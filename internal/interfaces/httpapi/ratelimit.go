package httpapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/riskibarqy/golf-scoring/internal/observability"
	"golang.org/x/time/rate"
)

const (
	// limiter entries are only swept once the map grows past this size.
	limiterSweepThreshold = 1024
	limiterMaxIdle        = 10 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientRateLimiter hands out one token bucket per client IP.
type ClientRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

func NewClientRateLimiter(perSecond float64, burst int) *ClientRateLimiter {
	return &ClientRateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Limit(perSecond),
		burst:   burst,
		now:     time.Now,
	}
}

func (l *ClientRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if len(l.clients) > limiterSweepThreshold {
		cutoff := now.Add(-limiterMaxIdle)
		for key, c := range l.clients {
			if c.lastSeen.Before(cutoff) {
				delete(l.clients, key)
			}
		}
	}

	c, ok := l.clients[ip]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// PublicRateLimit guards the share-code routes, which anyone holding a code
// can call.
func PublicRateLimit(limiter *ClientRateLimiter, metrics *observability.Metrics, next http.HandlerFunc) http.HandlerFunc {
	if limiter == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow(resolveClientIP(r)) {
			metrics.ObserveRateLimited(r.Pattern)
			w.Header().Set("Retry-After", "1")
			writeError(r.Context(), w, errRateLimited)
			return
		}
		next(w, r)
	}
}
