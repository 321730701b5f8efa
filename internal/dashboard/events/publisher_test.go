package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painel/painel-backend/internal/dashboard/domain"
	"github.com/painel/painel-backend/pkg/logger"
	"github.com/painel/painel-backend/pkg/messaging"
)

type recordingChannel struct {
	exchange string
	key      string
	msgs     []amqp.Publishing
	err      error
}

func (c *recordingChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.exchange, c.key = exchange, key
	c.msgs = append(c.msgs, msg)
	return nil
}

func TestSnapshotGenerated(t *testing.T) {
	ch := &recordingChannel{}
	p := NewSnapshotEventPublisherWithChannel(ch, 42, "file", logger.Nop())
	ds := &domain.Dataset{Sales: make([]domain.Sale, 3)}

	require.NoError(t, p.SnapshotGenerated(context.Background(), ds, 2*time.Second))
	require.Len(t, ch.msgs, 1)
	assert.Equal(t, messaging.ExchangeDashboardEvents, ch.exchange)
	assert.Equal(t, messaging.EventSnapshotGenerated, ch.key)

	var event messaging.Event
	require.NoError(t, json.Unmarshal(ch.msgs[0].Body, &event))
	assert.Equal(t, "dashboard-service", event.Source)

	var data messaging.SnapshotGeneratedEvent
	require.NoError(t, event.UnmarshalData(&data))
	assert.Equal(t, uint64(42), data.Seed)
	assert.Equal(t, "file", data.Backend)
	assert.Equal(t, 3, data.RowCounts[domain.ArtifactSales])
	assert.Len(t, data.RowCounts, 9)
	assert.Equal(t, 2*time.Second, data.Duration)
}

func TestSnapshotGenerated_ChannelClosed(t *testing.T) {
	ch := &recordingChannel{err: amqp.ErrClosed}
	p := NewSnapshotEventPublisherWithChannel(ch, 42, "file", logger.Nop())

	err := p.SnapshotGenerated(context.Background(), &domain.Dataset{}, time.Second)
	assert.ErrorIs(t, err, amqp.ErrClosed)
}

func TestSnapshotGenerated_NilPublisher(t *testing.T) {
	var p *SnapshotEventPublisher
	assert.NoError(t, p.SnapshotGenerated(context.Background(), &domain.Dataset{}, time.Second))
}
