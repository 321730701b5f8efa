package events

import (
	"context"
	"time"

	"github.com/painel/painel-backend/internal/dashboard/domain"
	"github.com/painel/painel-backend/pkg/logger"
	"github.com/painel/painel-backend/pkg/messaging"
)

const source = "dashboard-service"

// SnapshotEventPublisher publishes snapshot lifecycle events
type SnapshotEventPublisher struct {
	publisher *messaging.Publisher
	seed      uint64
	backend   string
	logger    *logger.Logger
}

// NewSnapshotEventPublisher creates a publisher on the dashboard exchange
func NewSnapshotEventPublisher(rmq *messaging.RabbitMQ, seed uint64, backend string, log *logger.Logger) (*SnapshotEventPublisher, error) {
	publisher, err := messaging.NewPublisher(rmq, messaging.ExchangeDashboardEvents, source, log)
	if err != nil {
		return nil, err
	}
	return newSnapshotEventPublisher(publisher, seed, backend, log), nil
}

// NewSnapshotEventPublisherWithChannel creates a publisher on an already
// declared exchange
func NewSnapshotEventPublisherWithChannel(ch messaging.Channel, seed uint64, backend string, log *logger.Logger) *SnapshotEventPublisher {
	publisher := messaging.NewPublisherWithChannel(ch, messaging.ExchangeDashboardEvents, source, log)
	return newSnapshotEventPublisher(publisher, seed, backend, log)
}

func newSnapshotEventPublisher(publisher *messaging.Publisher, seed uint64, backend string, log *logger.Logger) *SnapshotEventPublisher {
	return &SnapshotEventPublisher{
		publisher: publisher,
		seed:      seed,
		backend:   backend,
		logger:    log,
	}
}

// SnapshotGenerated publishes a snapshot generated event
func (p *SnapshotEventPublisher) SnapshotGenerated(ctx context.Context, ds *domain.Dataset, took time.Duration) error {
	if p == nil {
		return nil
	}

	data := messaging.SnapshotGeneratedEvent{
		Seed:        p.seed,
		Backend:     p.backend,
		RowCounts:   ds.RowCounts(),
		GeneratedAt: time.Now().UTC(),
		Duration:    took,
	}

	if err := p.publisher.Publish(ctx, messaging.EventSnapshotGenerated, data); err != nil {
		p.logger.Error().Err(err).Uint64("seed", p.seed).Msg("failed to publish snapshot generated event")
		return err
	}
	return nil
}
