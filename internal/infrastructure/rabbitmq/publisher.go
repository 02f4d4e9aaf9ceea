package rabbitmq

import (
	"context"
	"sync"

	"github.com/DRSN-tech/kitchen-backend/internal/cfg"
	"github.com/DRSN-tech/kitchen-backend/internal/domain"
	"github.com/DRSN-tech/kitchen-backend/internal/infrastructure/events"
	"github.com/DRSN-tech/kitchen-backend/pkg/e"
	"github.com/DRSN-tech/kitchen-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher кладёт подтверждённые заказы в durable-очередь RabbitMQ.
type Publisher struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	mu     sync.Mutex // канал amqp нельзя использовать для публикации из нескольких горутин
	queue  string
	logger logger.Logger
}

func NewPublisher(cfg *cfg.RabbitMQCfg, logger logger.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URI)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	q, err := ch.QueueDeclare(
		cfg.Queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Publisher{
		conn:   conn,
		ch:     ch,
		queue:  q.Name,
		logger: logger,
	}, nil
}

func (p *Publisher) PublishOrderConfirmed(ctx context.Context, event *domain.OrderConfirmed) error {
	msg, err := NewOrderPublishing(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	p.logger.Debugf("order %s published to queue %s", event.EventID, p.queue)
	return nil
}

// NewOrderPublishing собирает сообщение AMQP для события заказа.
func NewOrderPublishing(event *domain.OrderConfirmed) (amqp.Publishing, error) {
	body, err := events.Encode(event)
	if err != nil {
		return amqp.Publishing{}, err
	}

	return amqp.Publishing{
		ContentType:   events.ContentType,
		DeliveryMode:  amqp.Persistent,
		MessageId:     event.EventID,
		CorrelationId: event.SessionID,
		Timestamp:     event.OccurredAt,
		Type:          "kitchen.order.confirmed",
		Body:          body,
	}, nil
}

func (p *Publisher) Close() error {
	if err := p.ch.Close(); err != nil {
		p.logger.Warnf("failed to close rabbitmq channel: %v", err)
	}

	return p.conn.Close()
}
