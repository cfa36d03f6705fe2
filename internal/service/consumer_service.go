package service

import (
	"context"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
	"github.com/lwilly3/radioManager-SaaS-sub001/pkg/events"
	pktNats "github.com/lwilly3/radioManager-SaaS-sub001/pkg/nats"
)

type IConsumerService interface {
	Consume() error
}

// Broadcaster fans an envelope out to every connected client. The websocket
// hub satisfies it; consumers only need the fan-out, not the hub itself.
type Broadcaster interface {
	Broadcast(msgType string, payload interface{})
}

// consumerService relays bus events to connected feed clients. Quote
// mutations already reach each session through its own subscription; this
// stream carries the cross-cutting notifications (exports finishing, activity
// from other instances) that no session subscribes to.
type consumerService struct {
	subscriber *pktNats.Subscriber
	hub        Broadcaster
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber *pktNats.Subscriber,
	hub Broadcaster,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		hub:        hub,
		logger:     log,
	}
}

func (cs *consumerService) Consume() error {
	return cs.subscriber.Subscribe("events.>", "feed-broadcaster", cs.handleEvent)
}

func (cs *consumerService) handleEvent(ctx context.Context, event events.Event) error {
	switch event.EventType() {
	case events.PdfExported:
		cs.hub.Broadcast("export_completed", event.Payload())
	case events.QuoteCreated, events.QuoteUpdated, events.QuoteDeleted:
		cs.hub.Broadcast("quote_activity", map[string]interface{}{
			"event": event.EventType(),
			"data":  event.Payload(),
		})
	default:
		cs.logger.Debug("ConsumerService", "Ignoring event", map[string]interface{}{
			"event": event.EventType(),
		})
	}
	return nil
}
