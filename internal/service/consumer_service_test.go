package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
	"github.com/lwilly3/radioManager-SaaS-sub001/pkg/events"
)

type recordedBroadcast struct {
	MsgType string
	Payload interface{}
}

type stubBroadcaster struct {
	calls []recordedBroadcast
}

func (b *stubBroadcaster) Broadcast(msgType string, payload interface{}) {
	b.calls = append(b.calls, recordedBroadcast{MsgType: msgType, Payload: payload})
}

func newConsumerFixture() (*consumerService, *stubBroadcaster) {
	hub := &stubBroadcaster{}
	cs := &consumerService{
		hub:    hub,
		logger: logger.NewNopLogger(),
	}
	return cs, hub
}

func TestHandleEventRelaysExportCompletion(t *testing.T) {
	cs, hub := newConsumerFixture()

	event := events.BaseEvent{
		Type:       events.PdfExported,
		Data:       map[string]interface{}{"file_name": "conducteur.pdf", "user_id": "u1"},
		OccurredAt: time.Now(),
	}
	require.NoError(t, cs.handleEvent(context.Background(), event))

	require.Len(t, hub.calls, 1)
	assert.Equal(t, "export_completed", hub.calls[0].MsgType)
	assert.Equal(t, event.Data, hub.calls[0].Payload)
}

func TestHandleEventRelaysQuoteActivity(t *testing.T) {
	cs, hub := newConsumerFixture()

	for _, code := range []string{events.QuoteCreated, events.QuoteUpdated, events.QuoteDeleted} {
		require.NoError(t, cs.handleEvent(context.Background(), events.NewQuoteEvent(code, "q1", "u1")))
	}

	require.Len(t, hub.calls, 3)
	for i, code := range []string{events.QuoteCreated, events.QuoteUpdated, events.QuoteDeleted} {
		assert.Equal(t, "quote_activity", hub.calls[i].MsgType)
		envelope, ok := hub.calls[i].Payload.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, code, envelope["event"])
	}
}

func TestHandleEventIgnoresUnknownCodes(t *testing.T) {
	cs, hub := newConsumerFixture()

	event := events.BaseEvent{Type: "BILLING_RENEWED", OccurredAt: time.Now()}
	require.NoError(t, cs.handleEvent(context.Background(), event))

	assert.Empty(t, hub.calls)
}
