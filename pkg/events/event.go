package events

import "time"

// Event type codes published on the bus.
const (
	TypeItemSelected   = "ITEM_SELECTED"
	TypeItemUnselected = "ITEM_UNSELECTED"
	TypeMessagePosted  = "MESSAGE_POSTED"
	TypeSessionStarted = "SESSION_STARTED"
)

// Event is the contract every bus event satisfies.
type Event interface {
	// EventType returns the event code, e.g. "ITEM_SELECTED".
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation used by publishers and when
// reconstructing events off the wire.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewSelectionEvent builds the event emitted after a selection change.
func NewSelectionEvent(eventType, sessionID, taxonomy, section, item string) BaseEvent {
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"taxonomy":   taxonomy,
			"section":    section,
			"item":       item,
		},
		OccurredAt: time.Now(),
	}
}
