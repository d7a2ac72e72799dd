package dto

import (
	"time"

	"able-match/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID                   uuid.UUID `json:"id"`
	JobID                uuid.UUID `json:"job_id"`
	Status               string    `json:"status"`
	AccommodationRequest string    `json:"accommodation_request"`
	AppliedAt            time.Time `json:"applied_at"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:                   a.ID,
		JobID:                a.JobID,
		Status:               string(a.Status),
		AccommodationRequest: a.AccommodationRequest,
		AppliedAt:            a.AppliedAt,
	}
}

type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Count        int                   `json:"count"`
}

func NewApplicationListResponse(apps []application.Application) ApplicationListResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, NewApplicationResponse(a))
	}
	return ApplicationListResponse{Applications: out, Count: len(out)}
}
