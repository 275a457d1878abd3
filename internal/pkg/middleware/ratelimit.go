package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"gotienda/internal/pkg/cache"
	"gotienda/internal/pkg/logger"
)

// RateLimiter limita cada cliente a limit requisições por janela, com contadores no Redis.
// O cliente é o usuário autenticado, ou o IP quando não há claims.
// Falhas do Redis não bloqueiam a requisição.
func RateLimiter(client cache.Client, limit int, window time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := "rate-limit:" + clientID(r)

			count, err := client.Incr(ctx, key)
			if err != nil {
				log.Error("Falha ao incrementar contador do rate limit.", err)
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := client.Expire(ctx, key, window); err != nil {
					log.Error("Falha ao definir expiração do rate limit.", err)
				}
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))

			if count > int64(limit) {
				ttl, err := client.TTL(ctx, key)
				if err != nil || ttl < 0 {
					ttl = window
				}
				log.Warn("Limite de requisições excedido.", map[string]interface{}{
					"key":   key,
					"count": count,
					"limit": limit,
				})
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", strconv.Itoa(int(ttl.Seconds())))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = fmt.Fprintf(w, `{"code":%d,"category":"RATE_LIMITED","message":"Limite de requisições excedido."}`, http.StatusTooManyRequests)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-int(count)))
			next.ServeHTTP(w, r)
		})
	}
}

func clientID(r *http.Request) string {
	if claims, ok := GetUserClaimsFromContext(r.Context()); ok && claims.UserID != "" {
		return "user:" + claims.UserID
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	return "ip:" + ip
}
