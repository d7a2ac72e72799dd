package dto

import (
	"time"

	"able-match/internal/domain/job"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID                    uuid.UUID `json:"id"`
	Title                 string    `json:"title"`
	Company               string    `json:"company"`
	Description           string    `json:"description"`
	Requirements          string    `json:"requirements"`
	RequiredSkills        string    `json:"required_skills"`
	ExperienceRequired    string    `json:"experience_required"`
	Location              string    `json:"location"`
	WorkType              string    `json:"work_type"`
	AccessibilityFeatures string    `json:"accessibility_features"`
	SalaryRange           string    `json:"salary_range"`
	CreatedAt             time.Time `json:"created_at"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:                    j.ID,
		Title:                 j.Title,
		Company:               j.Company,
		Description:           j.Description,
		Requirements:          j.Requirements,
		RequiredSkills:        j.RequiredSkills,
		ExperienceRequired:    j.ExperienceRequired,
		Location:              j.Location,
		WorkType:              j.WorkType,
		AccessibilityFeatures: j.AccessibilityFeatures,
		SalaryRange:           j.SalaryRange,
		CreatedAt:             j.CreatedAt,
	}
}

type JobListResponse struct {
	Jobs   []JobResponse `json:"jobs"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
	Count  int           `json:"count"`
}

func NewJobListResponse(jobs []job.Job, limit, offset int) JobListResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return JobListResponse{Jobs: out, Limit: limit, Offset: offset, Count: len(out)}
}
