package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/apperror"
	"github.com/oksasatya/go-ddd-wallet/pkg/response"
)

// KeyFunc builds the client part of a rate-limit key.
type KeyFunc func(c *gin.Context) string

// AllowFunc returning true skips the limit for the request.
type AllowFunc func(c *gin.Context) bool

func KeyByIP() KeyFunc {
	return func(c *gin.Context) string {
		return "ip:" + ipFromCtx(c)
	}
}

// KeyByIPAndPath limits each route separately per client.
func KeyByIPAndPath() KeyFunc {
	return func(c *gin.Context) string {
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		return "path:" + path + ":ip:" + ipFromCtx(c)
	}
}

// KeyByUserID needs JWTAuth to run first; anonymous callers fall back to IP.
func KeyByUserID() KeyFunc {
	return func(c *gin.Context) string {
		if uid := c.GetString(CtxUserIDKey); uid != "" {
			return "user:" + uid
		}
		return "user:anon:ip:" + ipFromCtx(c)
	}
}

// Returns the hit count and the window's remaining ttl in one round trip.
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("PTTL", KEYS[1])}
`)

// Rule is one fixed window: at most Max requests per Window for each key.
type Rule struct {
	Max    int
	Window time.Duration
	Key    KeyFunc
	Allow  AllowFunc
}

// Limiter applies Rules against Redis. Keys are namespaced by scope so the
// two services keep separate counters on a shared Redis.
type Limiter struct {
	rdb    *redis.Client
	scope  string
	logger logrus.FieldLogger
}

// NewLimiter accepts a nil client; every rule is then a pass-through.
func NewLimiter(rdb *redis.Client, scope string, logger logrus.FieldLogger) *Limiter {
	return &Limiter{rdb: rdb, scope: scope, logger: logger}
}

// Handler enforces rule. Redis errors fail open with a warning.
func (l *Limiter) Handler(rule Rule) gin.HandlerFunc {
	if l == nil || l.rdb == nil || rule.Max <= 0 || rule.Window <= 0 || rule.Key == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions || (rule.Allow != nil && rule.Allow(c)) {
			c.Next()
			return
		}

		key := "rl:" + l.scope + ":" + rule.Key(c)
		res, err := fixedWindowScript.Run(c.Request.Context(), l.rdb, []string{key}, rule.Window.Milliseconds()).Int64Slice()
		if err != nil || len(res) != 2 {
			l.logger.WithError(err).WithField("key", key).Warn("rate limiter unavailable")
			c.Next()
			return
		}
		count, ttl := int(res[0]), time.Duration(res[1])*time.Millisecond

		resetSec := 0
		if ttl > 0 {
			resetSec = int((ttl + time.Second - 1) / time.Second)
		}
		remaining := max(rule.Max-count, 0)

		// https://datatracker.ietf.org/doc/html/rfc6585#section-4
		c.Header("X-RateLimit-Limit", strconv.Itoa(rule.Max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.Itoa(resetSec))

		if count > rule.Max {
			if resetSec > 0 {
				c.Header("Retry-After", strconv.Itoa(resetSec))
			}
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded", gin.H{"code": apperror.CodeRateLimited})
			return
		}
		c.Next()
	}
}
