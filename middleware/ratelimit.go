package middleware

import (
	"Bookgram/config"
	"Bookgram/pkg/log"
	"Bookgram/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// 超过该数量的客户端时整体重置
const maxLimiters = 10000

// RateLimiter 按客户端 IP 的令牌桶限流
type RateLimiter struct {
	limiters cmap.ConcurrentMap[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters: cmap.New[*rate.Limiter](),
		rate:     rate.Limit(perSecond),
		burst:    burst,
	}
}

// NewLoginLimiter 登录限流，未配置速率时返回 nil（不限流）
func NewLoginLimiter(conf *config.Config) *RateLimiter {
	if conf.RateLimit == nil || conf.RateLimit.LoginPerSecond <= 0 {
		return nil
	}
	return NewRateLimiter(conf.RateLimit.LoginPerSecond, conf.RateLimit.LoginBurst)
}

func (rl *RateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		if rl.limiters.Count() >= maxLimiters {
			rl.limiters.Clear()
		}
		rl.limiters.SetIfAbsent(key, rate.NewLimiter(rl.rate, rl.burst))
		limiter, _ = rl.limiters.Get(key)
	}
	return limiter.Allow()
}

// Handler nil 的 RateLimiter 直接放行
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil {
			c.Next()
			return
		}
		ip := c.ClientIP()
		if !rl.Allow(ip) {
			log.L.Warn("rate limit exceeded", zap.String("ip", ip), zap.String("path", c.FullPath()))
			response.Abort(c, http.StatusTooManyRequests, "too many requests")
			return
		}
		c.Next()
	}
}
