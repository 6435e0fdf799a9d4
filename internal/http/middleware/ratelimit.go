package middleware

import (
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/retail-pos/internal/http/ban"
	rl "github.com/rogerio-castellano/retail-pos/internal/http/rate_limiter"
	"github.com/rogerio-castellano/retail-pos/internal/logger"
)

var (
	limiter  *rl.Limiter
	banGuard *ban.Guard
)

func SetRateLimiter(l *rl.Limiter) {
	limiter = l
}

func SetBanGuard(g *ban.Guard) {
	banGuard = g
}

// RateLimitMiddleware answers 429 once a client exhausts its token bucket and
// 403 while the client is banned. Redis failures let the request through.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limiter == nil {
			next.ServeHTTP(w, r)
			return
		}
		ip := clientIP(r)

		if banGuard != nil {
			banned, err := banGuard.IsBanned(r.Context(), ip)
			if err != nil {
				logger.L().Error("ban lookup failed", zap.String("ip", ip), zap.Error(err))
			}
			if banned {
				http.Error(w, "client temporarily banned", http.StatusForbidden)
				return
			}
		}

		if !limiter.Allow(ip) {
			if banGuard != nil {
				if _, err := banGuard.Strike(r.Context(), ip, r.URL.Path); err != nil {
					logger.L().Error("could not record strike", zap.String("ip", ip), zap.Error(err))
				}
			}
			http.Error(w, "too many requests", http.StatusTooManyRequests)
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
