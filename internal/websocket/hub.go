package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
)

type Hub struct {
	// Registered clients map: UserID -> List of Clients (multi-device)
	clients map[string][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance fan-out
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.UserID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.UserID]) == 0 {
					delete(h.clients, client.UserID)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"user_id": client.UserID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends an envelope to ALL connected clients, local and remote.
// Used for quote lifecycle notifications that every open studio screen shows.
func (h *Hub) Broadcast(msgType string, payload interface{}) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": msgType,
		"data": payload,
	})

	h.fanOutLocal(data)

	if h.rdb != nil {
		envelope := map[string]interface{}{
			"target_user_id": "*",
			"message":        json.RawMessage(data),
		}
		jsonPayload, _ := json.Marshal(envelope)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

// fanOutLocal queues data on every local connection. Clients whose buffer is
// full get evicted after the lock is released; closing Send stays the sole
// responsibility of the unregister branch in Run.
func (h *Hub) fanOutLocal(data []byte) {
	var slow []*Client
	h.mu.RLock()
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				slow = append(slow, client)
			}
		}
	}
	h.mu.RUnlock()
	h.evict(slow)
}

// sendLocal queues data on every device of one user.
func (h *Hub) sendLocal(userID string, data []byte) {
	var slow []*Client
	h.mu.RLock()
	for _, client := range h.clients[userID] {
		select {
		case client.Send <- data:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()
	h.evict(slow)
}

func (h *Hub) evict(slow []*Client) {
	for _, client := range slow {
		h.logger.Warn("Hub", "Client send buffer full, evicting", map[string]interface{}{"user_id": client.UserID})
		h.unregister <- client
	}
}

// Send delivers an envelope to every device of one user.
func (h *Hub) Send(userID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": msgType,
		"data": payload,
	})

	h.sendLocal(userID, data)

	// Always publish for multi-device support across instances.
	if h.rdb != nil {
		envelope := map[string]interface{}{
			"target_user_id": userID,
			"message":        json.RawMessage(data),
		}
		jsonPayload, _ := json.Marshal(envelope)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

// subscribeToRedis mirrors cluster_events onto local connections. Every
// instance subscribes and filters for the users it holds.
func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "cluster_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			TargetUserID string          `json:"target_user_id"`
			Message      json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		if payload.TargetUserID == "*" {
			h.fanOutLocal(payload.Message)
			continue
		}

		h.sendLocal(payload.TargetUserID, payload.Message)
	}
}
