package api

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/limbo/planner/pkg/httputil"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultRPS   = 5.0
	defaultBurst = 20

	limiterStaleAfter = 10 * time.Minute
)

type RateLimitConfig struct {
	RPS      float64
	Burst    int
	Disabled bool
}

func (c RateLimitConfig) withDefaults() RateLimitConfig {
	if c.RPS <= 0 {
		c.RPS = defaultRPS
	}
	if c.Burst <= 0 {
		c.Burst = defaultBurst
	}
	return c
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterStore maps owner or client ip to a token bucket. Entries unused for
// staleAfter are dropped by the janitor.
type limiterStore struct {
	mu         sync.Mutex
	entries    map[string]*limiterEntry
	limit      rate.Limit
	burst      int
	staleAfter time.Duration
	stop       chan struct{}
	stopOnce   sync.Once
}

func newLimiterStore(cfg RateLimitConfig, staleAfter time.Duration) *limiterStore {
	store := &limiterStore{
		entries:    make(map[string]*limiterEntry),
		limit:      rate.Limit(cfg.RPS),
		burst:      cfg.Burst,
		staleAfter: staleAfter,
		stop:       make(chan struct{}),
	}
	go store.janitor(time.Minute)
	return store
}

func (s *limiterStore) janitor(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.cleanup(time.Now())
		case <-s.stop:
			return
		}
	}
}

func (s *limiterStore) getOrCreate(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key]; ok {
		e.lastSeen = time.Now()
		return e.limiter
	}
	lim := rate.NewLimiter(s.limit, s.burst)
	s.entries[key] = &limiterEntry{limiter: lim, lastSeen: time.Now()}
	return lim
}

func (s *limiterStore) cleanup(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := now.Add(-s.staleAfter)
	for k, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, k)
		}
	}
}

func (s *limiterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *limiterStore) close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// RateLimitMiddleware limits per owner when authenticated, per client ip otherwise.
func (s *Server) RateLimitMiddleware(next http.Handler) http.Handler {
	if s.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := "ip:" + clientIP(r)
		if uid, err := GetUIDFromContext(r); err == nil {
			key = "uid:" + uid.String()
		}
		if !s.limiter.getOrCreate(key).Allow() {
			GetLoggerFromCtx(r.Context()).Warn("rate limit exceeded", zap.String("key", key))
			w.Header().Set("Retry-After", "1")
			httputil.WriteErrorResponse(w, http.StatusTooManyRequests, "too many requests", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
