package events

import "time"

// Quote lifecycle event codes published on the bus.
const (
	QuoteCreated = "QUOTE_CREATED"
	QuoteUpdated = "QUOTE_UPDATED"
	QuoteDeleted = "QUOTE_DELETED"
	PdfExported  = "PDF_EXPORTED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "QUOTE_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation used by all publishers.
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

// NewQuoteEvent builds a lifecycle event for a quote document.
func NewQuoteEvent(code, quoteId, userId string) BaseEvent {
	return BaseEvent{
		Type: code,
		Data: map[string]interface{}{
			"quote_id": quoteId,
			"user_id":  userId,
		},
		OccurredAt: time.Now(),
	}
}
