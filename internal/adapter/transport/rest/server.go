package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
)

// CreditsResource is the payment resource id of the paid balance lookup.
const CreditsResource = "credits-read"

type Deps struct {
	Claims  Claimer
	Credits BalanceReader
	Gate    PaymentGate
	Price   entity.Price
	Metrics prometheus.Gatherer // nil disables /metrics

	RateRPS   float64 // per client IP on /claim; 0 disables
	RateBurst int
}

type Server struct {
	log       *slog.Logger
	addr      string
	shutdownT time.Duration
	engine    *gin.Engine
}

func NewServer(log *slog.Logger, addr string, shutdown time.Duration, deps Deps) *Server {
	s := &Server{
		log:       log,
		addr:      addr,
		shutdownT: shutdown,
	}

	r := gin.New()
	r.Use(
		gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, rec any) {
			log.Error("handler panic", "path", c.Request.URL.Path, "panic", rec)
			c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody(tagInternal))
		}),
		requestLogger(log),
		corsMiddleware(),
	)

	h := &handlers{log: log, claims: deps.Claims, credits: deps.Credits}

	r.GET("/healthz", h.healthz)

	claim := []gin.HandlerFunc{}
	if deps.RateRPS > 0 {
		claim = append(claim, rateLimit(newIPLimiter(deps.RateRPS, deps.RateBurst)))
	}
	r.POST("/claim", append(claim, h.claim)...)

	r.GET("/credits/:wallet", paywall(log, deps.Gate, CreditsResource, deps.Price), h.readCredits)

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}

	s.engine = r
	return s
}

func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until ctx is cancelled, then drains in-flight requests for at most the
// shutdown wait.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info("server started", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		s.log.Info("shutdown: draining requests")
		sctx, cancel := context.WithTimeout(context.Background(), s.shutdownT)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			s.log.Warn("shutdown: force-close remaining connections", "err", err)
			_ = srv.Close()
			return nil
		}
		s.log.Info("shutdown: all requests drained")
		return nil

	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}
