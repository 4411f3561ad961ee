package handler

import (
	"os"

	"brigade-taxonomy-be/internal/pkg/logger"
	"brigade-taxonomy-be/internal/pkg/serverutils"
	"brigade-taxonomy-be/internal/service"
	internalWS "brigade-taxonomy-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ActivityHandler exposes the per-session activity feed and the websocket
// endpoint used for live view updates.
type ActivityHandler struct {
	service service.IActivityService
	hub     *internalWS.Hub
	logger  logger.ILogger
}

func NewActivityHandler(svc service.IActivityService, hub *internalWS.Hub, log logger.ILogger) *ActivityHandler {
	return &ActivityHandler{
		service: svc,
		hub:     hub,
		logger:  log,
	}
}

// ServeWs upgrades the connection after validating the session token.
// Browsers cannot set headers on the websocket handshake, so the token is
// accepted from the query string first.
func (h *ActivityHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse("Missing token"))
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("ActivityHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse("Invalid token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse("Invalid token claims"))
	}

	sessionIDStr, ok := claims["session_id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse("Token missing session_id"))
	}

	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse("Invalid session id in token"))
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("ActivityHandler", "WebSocket session started", map[string]interface{}{"session_id": sessionID})
			internalWS.ServeWs(h.hub, conn, sessionID)
			h.logger.Info("ActivityHandler", "WebSocket session ended", map[string]interface{}{"session_id": sessionID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// GetActivities returns the session's activity history.
func (h *ActivityHandler) GetActivities(c *fiber.Ctx) error {
	sessionIDStr, ok := c.Locals("session_id").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse("Unauthorized"))
	}
	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse("Invalid session id"))
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	res, err := h.service.GetBySession(c.UserContext(), sessionID, limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(serverutils.SuccessResponse("Activities retrieved", res))
}

// RegisterRoutes registers the activity routes.
func (h *ActivityHandler) RegisterRoutes(router fiber.Router) {
	activities := router.Group("/activities")
	activities.Use(serverutils.JwtMiddleware)
	activities.Get("/", h.GetActivities)

	router.Get("/ws", h.ServeWs)
}
