package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
	"github.com/dayanaadylkhanova/credit-claim/internal/service"
)

const (
	headerPayment         = "X-Payment"
	headerPaymentResponse = "X-Payment-Response"
)

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Request.URL.Path == "/healthz" || c.Request.URL.Path == "/metrics" {
			level = slog.LevelDebug
		}
		log.Log(c.Request.Context(), level, "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"remote", c.ClientIP(),
		)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, "+headerPayment)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Expose-Headers", headerPaymentResponse)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// paywall admits the request only after the gate accepted its X-Payment proof.
func paywall(log *slog.Logger, gate PaymentGate, resourceID string, price entity.Price) gin.HandlerFunc {
	return func(c *gin.Context) {
		receipt, err := gate.Admit(c.Request.Context(), resourceID, c.GetHeader(headerPayment))

		var pe *service.PaymentError
		switch {
		case err == nil:
			if receipt != "" {
				c.Header(headerPaymentResponse, receipt)
			}
			c.Next()
		case errors.Is(err, service.ErrPaymentRequired), errors.Is(err, service.ErrPaymentNotConfigured):
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gate.Requirement(resourceID, price))
		case errors.As(err, &pe) && errors.Is(err, service.ErrPaymentVerifyFailed):
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"ok":     false,
				"error":  tagPaymentVerifyFailed,
				"detail": pe.Detail,
			})
		case errors.Is(err, service.ErrFacilitatorUnavailable):
			c.AbortWithStatusJSON(http.StatusBadGateway, errorBody(tagFacilitatorDown))
		default:
			log.Error("payment gate", "resource", resourceID, "err", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody(tagPaymentInternal))
		}
	}
}

type visitor struct {
	limiter *rate.Limiter
	seen    time.Time
}

// ipLimiter keeps one token bucket per client IP and forgets idle ones.
type ipLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time
}

func newIPLimiter(rps float64, burst int) *ipLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ipLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		idle:     3 * time.Minute,
		now:      time.Now,
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, ok := l.visitors[ip]
	if !ok {
		if len(l.visitors) >= 1024 {
			for k, old := range l.visitors {
				if now.Sub(old.seen) > l.idle {
					delete(l.visitors, k)
				}
			}
		}
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[ip] = v
	}
	v.seen = now
	return v.limiter.AllowN(now, 1)
}

func rateLimit(l *ipLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorBody(tagRateLimited))
			return
		}
		c.Next()
	}
}
