package websocket

import (
	"context"
	"encoding/json"

	"github.com/gofiber/websocket/v2"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/dto"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/service"
)

// feedCommand is the inbound frame from feed consumers.
type feedCommand struct {
	Type    string            `json:"type"` // setFilters | refresh
	Filters *dto.QuoteFilters `json:"filters,omitempty"`
}

// ServeFeed attaches one connection to the hub and to a live quote feed. The
// session is torn down when the socket closes.
func ServeFeed(hub *Hub, feeds service.IQuoteFeedService, c *websocket.Conn, userID string, initial dto.QuoteFilters) {
	client := &Client{Hub: hub, Conn: c, UserID: userID, Send: make(chan []byte, 256)}

	session := feeds.Open(context.Background(), userID, initial, func(state service.FeedState) {
		data, err := json.Marshal(map[string]interface{}{
			"type": "feed",
			"data": state,
		})
		if err != nil {
			return
		}
		select {
		case client.Send <- data:
		default:
			// Slow consumer; readPump's deadline will reap the connection.
		}
	})

	client.OnMessage = func(data []byte) {
		var cmd feedCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			return
		}
		switch cmd.Type {
		case "setFilters":
			if cmd.Filters != nil {
				session.SetFilters(*cmd.Filters)
			}
		case "refresh":
			session.Refresh()
		}
	}
	client.OnClose = session.Close

	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}
