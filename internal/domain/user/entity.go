package user

import (
	"errors"
	"time"

	"able-match/internal/domain/matching"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

const (
	TypeJobSeeker = "job_seeker"
	TypeEmployer  = "employer"
)

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	UserType     string

	// Matchable profile attributes, all optional free text.
	DisabilityType     string
	Skills             string
	ExperienceLevel    string
	PreferredLocation  string
	SalaryExpectation  string
	AccessibilityNeeds string
	WorkPreferences    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) IsJobSeeker() bool {
	return u.UserType == TypeJobSeeker
}

// MatchingProfile projects the user onto the attributes the scoring
// engine consumes.
func (u User) MatchingProfile() matching.Profile {
	return matching.Profile{
		Skills:             u.Skills,
		ExperienceLevel:    u.ExperienceLevel,
		PreferredLocation:  u.PreferredLocation,
		SalaryExpectation:  u.SalaryExpectation,
		DisabilityType:     u.DisabilityType,
		AccessibilityNeeds: u.AccessibilityNeeds,
	}
}
