package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jobnest/jobnest-api/internal/metrics"
	"github.com/jobnest/jobnest-api/internal/security"
)

const (
	requestIDKey = "request_id"
	ctxUserID    = "uid"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.InFlight.Inc()
		c.Next()
		metrics.InFlight.Dec()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.ReqDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// ProtectRoute extracts the session cookie, verifies signature and expiry,
// and attaches the user id for downstream handlers.
func (h *Handler) ProtectRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, err := c.Cookie(sessionCookie)
		if err != nil || tok == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - no token provided."})
			return
		}
		claims, err := security.ParseSession(h.Cfg.JWTSecret, tok)
		if err != nil || claims.UID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - invalid token."})
			return
		}
		c.Set(ctxUserID, claims.UID)
		c.Next()
	}
}

// RateLimit is a fixed-window counter per client IP in Redis. Fails open:
// no Redis, no limiting.
func (h *Handler) RateLimit(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.Redis == nil || h.Cfg.RateLimitPerMin <= 0 {
			c.Next()
			return
		}
		ctx := c.Request.Context()
		key := "rl:" + scope + ":" + c.ClientIP()
		n, err := h.Redis.C.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if n == 1 {
			h.Redis.C.Expire(ctx, key, time.Minute)
		}
		if n > int64(h.Cfg.RateLimitPerMin) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests."})
			return
		}
		c.Next()
	}
}
