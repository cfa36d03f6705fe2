package handler

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/dto"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/service"
	internalWS "github.com/lwilly3/radioManager-SaaS-sub001/internal/websocket"
)

// FeedHandler upgrades authenticated connections into live quote feeds.
type FeedHandler struct {
	feedService service.IQuoteFeedService
	hub         *internalWS.Hub
	logger      logger.ILogger
}

func NewFeedHandler(feedService service.IQuoteFeedService, hub *internalWS.Hub, log logger.ILogger) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
		hub:         hub,
		logger:      log,
	}
}

// ServeWs handles websocket requests from the peer.
func (h *FeedHandler) ServeWs(c *fiber.Ctx) error {
	// Browsers cannot set headers on websocket handshakes, so the token also
	// rides in the query string.
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		h.logger.Warn("FeedHandler", "Invalid Token in WS Handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing user_id"})
	}

	// Seed the session with the user's persisted filter state so the first
	// snapshot matches their last view.
	initial := dto.QuoteFilters{RealTime: true}
	if saved, err := h.feedService.LoadSavedFilters(c.UserContext(), userID); err == nil && saved != nil {
		initial = *saved
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("FeedHandler", "Starting feed session", map[string]interface{}{"user_id": userID})
			internalWS.ServeFeed(h.hub, h.feedService, conn, userID, initial)
			h.logger.Info("FeedHandler", "Feed session ended", map[string]interface{}{"user_id": userID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the feed websocket route.
func (h *FeedHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/feed", h.ServeWs)
}
