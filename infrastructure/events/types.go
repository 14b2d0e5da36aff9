// Package events defines the envelope pulseboard writes to Redis Streams.
package events

import (
	"time"

	"github.com/google/uuid"
)

// DefaultStreamName is the stream used when none is configured.
const DefaultStreamName = "pulseboard-events"

// PayloadField is the stream entry field holding the JSON envelope.
const PayloadField = "event"

// EventType names a board event.
type EventType string

// BoardRendered is emitted after a board is built for a request or scan.
const BoardRendered EventType = "BOARD_RENDERED"

// Event is the envelope for every pulseboard event.
type Event struct {
	EventID   uuid.UUID `json:"event_id"`
	EventType EventType `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// BoardRenderedPayload summarises one board. Item texts are not included.
type BoardRenderedPayload struct {
	Source      string    `json:"source"`
	CollectedAt time.Time `json:"collected_at"`
	Total       int       `json:"total"`
	Negative    int       `json:"negative"`
	Neutral     int       `json:"neutral"`
	Degraded    bool      `json:"degraded"`
	RequestID   string    `json:"request_id,omitempty"`
}
