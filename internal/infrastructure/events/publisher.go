package events

import (
	"context"
	"time"

	"github.com/DRSN-tech/kitchen-backend/internal/domain"
	"github.com/DRSN-tech/kitchen-backend/internal/infrastructure"
	"github.com/DRSN-tech/kitchen-backend/internal/usecase"
	"github.com/DRSN-tech/kitchen-backend/pkg/e"
	"github.com/DRSN-tech/kitchen-backend/pkg/jitter"
	"github.com/DRSN-tech/kitchen-backend/pkg/logger"
)

// LogPublisher только пишет подтверждённый заказ в лог. Используется при ORDER_BROKER=none.
type LogPublisher struct {
	logger logger.Logger
}

func NewLogPublisher(logger logger.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishOrderConfirmed(_ context.Context, event *domain.OrderConfirmed) error {
	p.logger.Infof("order confirmed: event %s, session %s, %d items, total %s",
		event.EventID, event.SessionID, event.Summary.ItemCount, event.Summary.Total.StringFixed(2))
	return nil
}

// RetryingPublisher повторяет публикацию при временных ошибках брокера
// с экспоненциальной задержкой и джиттером.
type RetryingPublisher struct {
	next        usecase.OrderPublisher
	logger      logger.Logger
	maxAttempts int
	baseBackoff time.Duration
	maxBackoff  time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

func NewRetryingPublisher(next usecase.OrderPublisher, logger logger.Logger,
	maxAttempts int, baseBackoff, maxBackoff time.Duration) *RetryingPublisher {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &RetryingPublisher{
		next:        next,
		logger:      logger,
		maxAttempts: maxAttempts,
		baseBackoff: baseBackoff,
		maxBackoff:  maxBackoff,
		sleep:       jitter.Sleep,
	}
}

func (p *RetryingPublisher) PublishOrderConfirmed(ctx context.Context, event *domain.OrderConfirmed) error {
	const op = "RetryingPublisher.PublishOrderConfirmed"

	var err error
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		if err = p.next.PublishOrderConfirmed(ctx, event); err == nil {
			return nil
		}

		if !infrastructure.IsRetryable(err) || attempt == p.maxAttempts-1 {
			break
		}

		delay := jitter.ExponentialBackoff(p.baseBackoff, p.maxBackoff, attempt, jitter.DefaultJitter)
		p.logger.Warnf("publish of order %s failed (attempt %d/%d), retrying in %s: %v",
			event.EventID, attempt+1, p.maxAttempts, delay, err)

		if sleepErr := p.sleep(ctx, delay); sleepErr != nil {
			return e.Wrap(op, sleepErr)
		}
	}

	p.logger.Errorf(err, "order %s was not published", event.EventID)
	return e.Wrap(op, err)
}
