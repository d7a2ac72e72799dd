package ws

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// UserResolver extracts the authenticated user from the request
// context. The auth middleware runs before the upgrade, so the
// handler only needs to read what it stored.
type UserResolver func(c fiber.Ctx) (uuid.UUID, bool)

type Handler struct {
	hub     *Hub
	logger  *log.Logger
	resolve UserResolver
}

func NewHandler(hub *Hub, logger *log.Logger, resolve UserResolver) *Handler {
	return &Handler{hub: hub, logger: logger, resolve: resolve}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) HandleMatchesWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil || h.resolve == nil {
		return fiber.ErrServiceUnavailable
	}

	userID, ok := h.resolve(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("WS upgrade error | error=%v", err)
			}
			return
		}

		client := NewClient(h.hub, conn, userID)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
