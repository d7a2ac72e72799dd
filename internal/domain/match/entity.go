package match

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("match not found")

// Match is the persisted result of scoring a (user, job) pair. At most
// one exists per pair; Details carries the serialized score breakdown.
type Match struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	JobID              uuid.UUID
	MatchScore         float64
	SkillsMatch        float64
	ExperienceMatch    float64
	LocationMatch      float64
	AccessibilityMatch float64
	SalaryMatch        float64
	Details            string
	Status             Status
	CreatedAt          time.Time
}
