package api

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"octosupply/pkg/logger"
	"octosupply/pkg/metrics"
	"octosupply/pkg/otel"
)

const requestIDHeader = "X-Request-ID"

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// traceMiddleware continues any incoming W3C trace and makes tracer
// available to handler spans.
func traceMiddleware(tracer trace.Tracer) mux.MiddlewareFunc {
	prop := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := prop.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx = otel.InjectTracing(ctx, tracer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// unmatchedRoute labels requests no route matched.
const unmatchedRoute = "unmatched"

type routeKey struct{}

// observeMiddleware logs each request and records it in m when set. It
// wraps the router so 404 and 405 replies are seen too; the route template
// is reported back by captureRouteMiddleware.
func observeMiddleware(log *logger.Logger, m *metrics.ServerMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			route := new(string)
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), routeKey{}, route)))
			elapsed := time.Since(start)

			if *route == "" {
				*route = unmatchedRoute
			}
			if m != nil {
				m.Observe(*route, r.Method, rec.status, elapsed)
			}
			log.Info(r.Context(), "request",
				"method", r.Method,
				"route", *route,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", elapsed,
				"request_id", w.Header().Get(requestIDHeader))
		})
	}
}

// captureRouteMiddleware runs on matched routes only and hands the path
// template to observeMiddleware.
func captureRouteMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if route, ok := r.Context().Value(routeKey{}).(*string); ok {
			if cur := mux.CurrentRoute(r); cur != nil {
				if tpl, err := cur.GetPathTemplate(); err == nil {
					*route = tpl
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

// corsMiddleware allows the configured origins. An origin may hold one "*"
// standing for any run of characters, e.g. https://*.app.github.dev.
func corsMiddleware(origins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && originAllowed(origins, origin) {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				h.Add("Vary", "Origin")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(patterns []string, origin string) bool {
	for _, p := range patterns {
		if p == "*" || p == origin {
			return true
		}
		prefix, suffix, ok := strings.Cut(p, "*")
		if ok && len(origin) > len(prefix)+len(suffix) &&
			strings.HasPrefix(origin, prefix) && strings.HasSuffix(origin, suffix) {
			return true
		}
	}
	return false
}

// limiterIdle is how long a client's bucket survives without requests.
const limiterIdle = 10 * time.Minute

// rateLimitMiddleware applies a token bucket per client IP.
func rateLimitMiddleware(rps float64, burst int) mux.MiddlewareFunc {
	limiters := newIPLimiters(rate.Limit(rps), burst, limiterIdle)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiters.allow(clientIP(r)) {
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ipLimiters hands out one bucket per client IP. Buckets idle for longer
// than idle are dropped by a sweep that runs at most once per idle period.
type ipLimiters struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	idle      time.Duration
	now       func() time.Time
	lastSweep time.Time
	buckets   map[string]*ipBucket
}

type ipBucket struct {
	limiter *rate.Limiter
	seen    time.Time
}

func newIPLimiters(limit rate.Limit, burst int, idle time.Duration) *ipLimiters {
	return &ipLimiters{
		limit:   limit,
		burst:   burst,
		idle:    idle,
		now:     time.Now,
		buckets: make(map[string]*ipBucket),
	}
}

func (l *ipLimiters) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if now.Sub(l.lastSweep) >= l.idle {
		for key, b := range l.buckets {
			if now.Sub(b.seen) >= l.idle {
				delete(l.buckets, key)
			}
		}
		l.lastSweep = now
	}
	b, ok := l.buckets[ip]
	if !ok {
		b = &ipBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[ip] = b
	}
	b.seen = now
	return b.limiter.AllowN(now, 1)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func bodyLimitMiddleware(limit int64) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
