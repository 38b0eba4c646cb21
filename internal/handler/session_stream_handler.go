package handler

import (
	"deal-insights-be/internal/pkg/logger"
	"deal-insights-be/internal/pkg/serverutils"
	internalWS "deal-insights-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/websocket/v2"
)

// SessionLookup reports whether a session is live.
type SessionLookup interface {
	Exists(id string) bool
}

// SessionStreamHandler pushes a session's panel events to websocket clients.
type SessionStreamHandler struct {
	sessions SessionLookup
	hub      *internalWS.Hub
	logger   logger.ILogger
}

func NewSessionStreamHandler(sessions SessionLookup, hub *internalWS.Hub, log logger.ILogger) *SessionStreamHandler {
	return &SessionStreamHandler{
		sessions: sessions,
		hub:      hub,
		logger:   log,
	}
}

// ServeWs handles websocket requests from the peer.
func (h *SessionStreamHandler) ServeWs(c *fiber.Ctx) error {
	// Params aliases the request buffer, which fasthttp reuses once the
	// connection is hijacked; the id outlives the request as a hub key.
	sessionId := utils.CopyString(c.Params("id"))
	if !h.sessions.Exists(sessionId) {
		return serverutils.NewNotFoundError("Session not found")
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("SessionStreamHandler", "Starting WebSocket session", map[string]interface{}{"session_id": sessionId})
			internalWS.ServeWs(h.hub, conn, sessionId)
			h.logger.Info("SessionStreamHandler", "WebSocket session ended", map[string]interface{}{"session_id": sessionId})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

func (h *SessionStreamHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/sessions/:id/ws", h.ServeWs)
}
