package email

import (
	"context"
	"log/slog"
	"strconv"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/forcollegesake07/food-bridge/config"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	"github.com/forcollegesake07/food-bridge/internal/errors"
	"github.com/forcollegesake07/food-bridge/internal/infra/metrics"
)

const (
	breakerName                = "email-api"
	defaultConsecutiveFailures = 5
)

// resilientSender guards a sender with a rate limiter and a circuit breaker.
type resilientSender struct {
	next    service.EmailSender
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[struct{}]
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func newResilientSender(next service.EmailSender, cfg *config.EmailConfig, logger *slog.Logger, m *metrics.Metrics) *resilientSender {
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	threshold := cfg.Breaker.ConsecutiveFailures
	if threshold == 0 {
		threshold = defaultConsecutiveFailures
	}

	m.SetBreakerState(breakerName, int(gobreaker.StateClosed))

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.Breaker.MaxRequests,
		Interval:    cfg.Breaker.Interval,
		Timeout:     cfg.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A rejected payload says nothing about the health of the API.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			statusErr, ok := errors.AsType[*StatusError](err)

			return ok && statusErr.IsClientError()
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("[Email] circuit breaker state transition",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			m.SetBreakerState(name, int(to))
		},
	})

	return &resilientSender{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
		cb:      cb,
		logger:  logger,
		metrics: m,
	}
}

// SendTemplate waits for the rate limiter, then sends through the breaker.
func (s *resilientSender) SendTemplate(ctx context.Context, msg *service.EmailMessage) error {
	template := strconv.FormatInt(msg.TemplateID, 10)

	if err := s.limiter.Wait(ctx); err != nil {
		s.metrics.ObserveEmail(template, "rate_limited")

		return errors.Wrap(err, "email rate limit wait")
	}

	_, err := s.cb.Execute(func() (struct{}, error) {
		return struct{}{}, s.next.SendTemplate(ctx, msg)
	})
	if err != nil {
		outcome := "failure"
		if errors.IsAny(err, gobreaker.ErrOpenState, gobreaker.ErrTooManyRequests) {
			outcome = "rejected"
		}
		s.metrics.ObserveEmail(template, outcome)

		return err
	}

	s.metrics.ObserveEmail(template, "sent")

	return nil
}
