package job

import (
	"errors"
	"time"

	"able-match/internal/domain/matching"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Job struct {
	ID          uuid.UUID
	Title       string
	Company     string
	Description string

	// Matchable attributes, all optional free text.
	Requirements          string
	RequiredSkills        string
	ExperienceRequired    string
	Location              string
	WorkType              string
	AccessibilityFeatures string
	SalaryRange           string

	PostedBy  uuid.UUID
	CreatedAt time.Time
}

// MatchingPosting projects the job onto the attributes the scoring
// engine consumes.
func (j Job) MatchingPosting() matching.Posting {
	return matching.Posting{
		RequiredSkills:        j.RequiredSkills,
		ExperienceRequired:    j.ExperienceRequired,
		Location:              j.Location,
		WorkType:              j.WorkType,
		AccessibilityFeatures: j.AccessibilityFeatures,
		SalaryRange:           j.SalaryRange,
	}
}
