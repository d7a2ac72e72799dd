package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Cache is the slice of the Redis wrapper the usecases need. A nil
// Cache disables caching without changing behavior.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// MatchNotifier pushes best-effort events to connected clients.
type MatchNotifier interface {
	MatchesGenerated(userID uuid.UUID, count int)
}
