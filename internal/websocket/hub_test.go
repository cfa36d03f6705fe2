package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
)

func registeredUsers(h *Hub) map[string]int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	counts := make(map[string]int, len(h.clients))
	for userID, clients := range h.clients {
		counts[userID] = len(clients)
	}
	return counts
}

func waitUntil(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal(msg)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestBroadcastEvictsOnlySlowClients(t *testing.T) {
	h := NewHub(nil, logger.NewNopLogger())
	go h.Run()

	fast := &Client{UserID: "animateur", Send: make(chan []byte, 8)}
	stalled := &Client{UserID: "regie", Send: make(chan []byte)}
	h.register <- fast
	h.register <- stalled
	waitUntil(t, func() bool {
		return len(registeredUsers(h)) == 2
	}, "clients never registered")

	h.Broadcast("quote_activity", map[string]interface{}{"event": "QUOTE_CREATED"})

	// The stalled connection is dropped, the healthy one keeps its message.
	waitUntil(t, func() bool {
		_, still := registeredUsers(h)["regie"]
		return !still
	}, "stalled client was not evicted")

	users := registeredUsers(h)
	assert.Equal(t, 1, users["animateur"])

	select {
	case msg := <-fast.Send:
		assert.Contains(t, string(msg), "quote_activity")
	default:
		t.Fatal("healthy client did not receive the broadcast")
	}

	// The hub closed the evicted channel exactly once; a second broadcast
	// must not panic on it.
	waitUntil(t, func() bool {
		select {
		case _, open := <-stalled.Send:
			return !open
		default:
			return false
		}
	}, "evicted channel was not closed")

	require.NotPanics(t, func() {
		h.Broadcast("quote_activity", map[string]interface{}{"event": "QUOTE_UPDATED"})
	})
}

func TestSendEvictsStalledDeviceOnly(t *testing.T) {
	h := NewHub(nil, logger.NewNopLogger())
	go h.Run()

	phone := &Client{UserID: "u1", Send: make(chan []byte, 1)}
	laptop := &Client{UserID: "u1", Send: make(chan []byte)}
	h.register <- phone
	h.register <- laptop
	waitUntil(t, func() bool {
		return registeredUsers(h)["u1"] == 2
	}, "devices never registered")

	h.Send("u1", "export_completed", map[string]interface{}{"file_name": "conducteur.pdf"})

	waitUntil(t, func() bool {
		return registeredUsers(h)["u1"] == 1
	}, "stalled device was not evicted")

	select {
	case msg := <-phone.Send:
		assert.Contains(t, string(msg), "export_completed")
	default:
		t.Fatal("healthy device did not receive the message")
	}
}

func TestUnregisterTwiceIsHarmless(t *testing.T) {
	h := NewHub(nil, logger.NewNopLogger())
	go h.Run()

	client := &Client{UserID: "u1", Send: make(chan []byte, 1)}
	h.register <- client
	waitUntil(t, func() bool {
		return registeredUsers(h)["u1"] == 1
	}, "client never registered")

	// A read pump teardown and a slow-client eviction can both report the
	// same connection.
	h.unregister <- client
	h.unregister <- client

	waitUntil(t, func() bool {
		_, still := registeredUsers(h)["u1"]
		return !still
	}, "client was not removed")
}
