package application

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("application not found")

type Status string

const (
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Application records that a seeker applied to a job. Only pending
// applications may be withdrawn.
type Application struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	JobID                uuid.UUID
	Status               Status
	AccommodationRequest string
	AppliedAt            time.Time
}

func (a Application) Withdrawable() bool {
	return a.Status == StatusPending
}
