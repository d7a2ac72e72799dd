package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type MatchesGeneratedEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"`
}

// Notifier pushes match lifecycle events through the hub. It satisfies
// the usecase notifier contract and is safe to use with a nil hub.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) MatchesGenerated(userID uuid.UUID, count int) {
	if n == nil || n.hub == nil || count <= 0 {
		return
	}

	evt := MatchesGeneratedEvent{
		Type:      "matches_generated",
		UserID:    userID.String(),
		Count:     count,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.SendToUser(userID, b)
}
