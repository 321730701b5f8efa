package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/painel/painel-backend/pkg/logger"
)

// Channel is the subset of *amqp.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Publisher handles publishing events to RabbitMQ
type Publisher struct {
	channel  Channel
	exchange string
	source   string
	logger   *logger.Logger
}

// NewPublisher declares the exchange and creates a publisher on it
func NewPublisher(rmq *RabbitMQ, exchange, source string, log *logger.Logger) (*Publisher, error) {
	if err := rmq.DeclareExchange(exchange); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return NewPublisherWithChannel(rmq.Channel(), exchange, source, log), nil
}

// NewPublisherWithChannel creates a publisher on an already-declared exchange
func NewPublisherWithChannel(ch Channel, exchange, source string, log *logger.Logger) *Publisher {
	return &Publisher{
		channel:  ch,
		exchange: exchange,
		source:   source,
		logger:   log,
	}
}

// Publish publishes an event to the exchange using eventType as routing key
func (p *Publisher) Publish(ctx context.Context, eventType string, data interface{}) error {
	correlationID := getCorrelationID(ctx)

	event, err := NewEvent(eventType, p.source, correlationID, data)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange, // exchange
		eventType,  // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			CorrelationId: correlationID,
			Body:          body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug().
		Str("event_type", eventType).
		Str("event_id", event.ID).
		Str("correlation_id", correlationID).
		Msg("event published")

	return nil
}

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// WithCorrelationID adds a correlation ID to the context
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey, correlationID)
}

func getCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		return id
	}
	return ""
}
