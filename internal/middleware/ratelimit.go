package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"vahis-pet-care-hub/internal/platform/logger"
	"vahis-pet-care-hub/internal/platform/metrics"

	"golang.org/x/time/rate"
)

const (
	// A partir de este tamaño se purgan los limiters inactivos.
	maxTrackedClients = 10000
	clientIdleTTL     = 30 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter aplica un token bucket por cliente (IP, o usuario si hay sesión).
// Se usa para proteger la cuota del oráculo en /api/match-pet.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rate    rate.Limit
	burst   int
	log     logger.Logger
	now     func() time.Time
}

// NewRateLimiter crea un limiter de perMinute requests por minuto por cliente.
// perMinute <= 0 desactiva el límite.
func NewRateLimiter(perMinute, burst int, log logger.Logger) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	lim := rate.Inf
	if perMinute > 0 {
		lim = rate.Every(time.Minute / time.Duration(perMinute))
	}
	return &RateLimiter{
		clients: make(map[string]*clientLimiter),
		rate:    lim,
		burst:   burst,
		log:     log,
		now:     time.Now,
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if len(rl.clients) >= maxTrackedClients {
		for k, c := range rl.clients {
			if now.Sub(c.lastSeen) > clientIdleTTL {
				delete(rl.clients, k)
			}
		}
	}

	c, ok := rl.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// Handler devuelve el middleware. El rechazo es 429 con cuerpo JSON {"error": ...},
// el mismo formato que usa el matcher.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		if !rl.allow(key) {
			rl.log.Warn("rate limit exceeded", map[string]any{
				"client": key,
				"path":   r.URL.Path,
			})
			metrics.RecordRateLimited(r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "60")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "Too many match requests. Please wait a minute and try again.",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	if c, ok := GetClaims(r.Context()); ok && strings.TrimSpace(c.UserID) != "" {
		return "user:" + c.UserID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// chimw.RealIP deja solo la IP (sin puerto)
		host = r.RemoteAddr
	}
	return "ip:" + host
}
