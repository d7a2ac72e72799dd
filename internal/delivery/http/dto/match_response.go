package dto

import (
	"time"

	"able-match/internal/domain/match"
	"able-match/internal/domain/matching"
	"able-match/internal/usecase"

	"github.com/google/uuid"
)

type ScoreBreakdownResponse struct {
	SkillsMatch        float64   `json:"skills_match"`
	ExperienceMatch    float64   `json:"experience_match"`
	LocationMatch      float64   `json:"location_match"`
	AccessibilityMatch float64   `json:"accessibility_match"`
	SalaryMatch        float64   `json:"salary_match"`
	CalculatedAt       time.Time `json:"calculated_at"`
}

type MatchScoreResponse struct {
	MatchScore float64                `json:"match_score"`
	Breakdown  ScoreBreakdownResponse `json:"breakdown"`
}

func NewMatchScoreResponse(res matching.Result) MatchScoreResponse {
	return MatchScoreResponse{
		MatchScore: res.Overall,
		Breakdown: ScoreBreakdownResponse{
			SkillsMatch:        res.Breakdown.SkillsMatch,
			ExperienceMatch:    res.Breakdown.ExperienceMatch,
			LocationMatch:      res.Breakdown.LocationMatch,
			AccessibilityMatch: res.Breakdown.AccessibilityMatch,
			SalaryMatch:        res.Breakdown.SalaryMatch,
			CalculatedAt:       res.Breakdown.CalculatedAt,
		},
	}
}

type MatchResponse struct {
	ID                 uuid.UUID `json:"id"`
	JobID              uuid.UUID `json:"job_id"`
	MatchScore         float64   `json:"match_score"`
	SkillsMatch        float64   `json:"skills_match"`
	ExperienceMatch    float64   `json:"experience_match"`
	LocationMatch      float64   `json:"location_match"`
	AccessibilityMatch float64   `json:"accessibility_match"`
	SalaryMatch        float64   `json:"salary_match"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

func NewMatchResponse(m match.Match) MatchResponse {
	return MatchResponse{
		ID:                 m.ID,
		JobID:              m.JobID,
		MatchScore:         m.MatchScore,
		SkillsMatch:        m.SkillsMatch,
		ExperienceMatch:    m.ExperienceMatch,
		LocationMatch:      m.LocationMatch,
		AccessibilityMatch: m.AccessibilityMatch,
		SalaryMatch:        m.SalaryMatch,
		Status:             string(m.Status),
		CreatedAt:          m.CreatedAt,
	}
}

type MatchListItemResponse struct {
	Match                MatchResponse `json:"match"`
	Job                  JobResponse   `json:"job"`
	HasActiveApplication bool          `json:"has_active_application"`
}

type MatchListResponse struct {
	Matches []MatchListItemResponse `json:"matches"`
	Count   int                     `json:"count"`
}

func NewMatchListResponse(items []usecase.MatchListItem) MatchListResponse {
	out := make([]MatchListItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, MatchListItemResponse{
			Match:                NewMatchResponse(it.Match),
			Job:                  NewJobResponse(it.Job),
			HasActiveApplication: it.HasActiveApplication,
		})
	}
	return MatchListResponse{Matches: out, Count: len(out)}
}

type GenerateMatchesResponse struct {
	Created []MatchResponse `json:"created"`
	Count   int             `json:"count"`
}

func NewGenerateMatchesResponse(created []match.Match) GenerateMatchesResponse {
	out := make([]MatchResponse, 0, len(created))
	for _, m := range created {
		out = append(out, NewMatchResponse(m))
	}
	return GenerateMatchesResponse{Created: out, Count: len(out)}
}
