package messaging

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/painel/painel-backend/pkg/config"
	"github.com/painel/painel-backend/pkg/logger"
)

// RabbitMQ manages the connection to RabbitMQ
type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	config  *config.RabbitMQConfig
	logger  *logger.Logger
	mu      sync.RWMutex
	closed  bool
}

// New creates a new RabbitMQ connection
func New(cfg *config.RabbitMQConfig, log *logger.Logger) (*RabbitMQ, error) {
	rmq := &RabbitMQ{
		config: cfg,
		logger: log,
	}

	if err := rmq.connect(); err != nil {
		log.Warn().Err(err).Msg("RabbitMQ not reachable yet")
		if err := rmq.Reconnect(context.Background()); err != nil {
			return nil, err
		}
	}

	return rmq, nil
}

func (r *RabbitMQ) connect() error {
	var err error

	r.conn, err = amqp.Dial(r.config.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	r.channel, err = r.conn.Channel()
	if err != nil {
		r.conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	r.logger.Info().Msg("connected to RabbitMQ")
	return nil
}

// Channel returns the current channel
func (r *RabbitMQ) Channel() *amqp.Channel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.channel
}

// Close closes the RabbitMQ connection
func (r *RabbitMQ) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true

	if r.channel != nil {
		if err := r.channel.Close(); err != nil {
			r.logger.Warn().Err(err).Msg("failed to close channel")
		}
	}

	if r.conn != nil {
		if err := r.conn.Close(); err != nil {
			return fmt.Errorf("failed to close connection: %w", err)
		}
	}

	r.logger.Info().Msg("RabbitMQ connection closed")
	return nil
}

// Health returns the health status of RabbitMQ
func (r *RabbitMQ) Health() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	status := map[string]string{
		"status": "up",
	}

	if r.conn == nil || r.conn.IsClosed() {
		status["status"] = "down"
		status["error"] = "connection closed"
	}

	return status
}

// DeclareExchange declares a durable topic exchange
func (r *RabbitMQ) DeclareExchange(name string) error {
	return r.Channel().ExchangeDeclare(
		name,    // name
		"topic", // type
		true,    // durable
		false,   // auto-deleted
		false,   // internal
		false,   // no-wait
		nil,     // arguments
	)
}

// Reconnect attempts to reconnect to RabbitMQ
func (r *RabbitMQ) Reconnect(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return fmt.Errorf("connection is permanently closed")
	}

	for i := 0; i < r.config.MaxRetries; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		r.logger.Info().Int("attempt", i+1).Msg("attempting to reconnect to RabbitMQ")

		if err := r.connect(); err != nil {
			r.logger.Warn().Err(err).Msg("reconnection attempt failed")
			time.Sleep(r.config.ReconnectDelay)
			continue
		}

		return nil
	}

	return fmt.Errorf("failed to reconnect after %d attempts", r.config.MaxRetries)
}
