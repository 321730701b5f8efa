package messaging

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types
const (
	EventSnapshotGenerated = "dashboard.snapshot.generated"
)

// Exchange names
const (
	ExchangeDashboardEvents = "dashboard.events"
)

// Event is the base event structure
type Event struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlation_id"`
	Data          json.RawMessage `json:"data"`
}

// NewEvent creates a new event with the given type and data
func NewEvent(eventType, source, correlationID string, data interface{}) (*Event, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:            uuid.New().String(),
		Type:          eventType,
		Source:        source,
		Timestamp:     time.Now().UTC(),
		CorrelationID: correlationID,
		Data:          dataBytes,
	}, nil
}

// UnmarshalData unmarshals the event data into the provided struct
func (e *Event) UnmarshalData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// SnapshotGeneratedEvent is published after a full artifact set has been regenerated
type SnapshotGeneratedEvent struct {
	Seed        uint64         `json:"seed"`
	Backend     string         `json:"backend"`
	RowCounts   map[string]int `json:"row_counts"`
	GeneratedAt time.Time      `json:"generated_at"`
	Duration    time.Duration  `json:"duration_ns"`
}
