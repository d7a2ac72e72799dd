package dto

import (
	"time"

	"able-match/internal/domain/user"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	ID                 uuid.UUID `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	UserType           string    `json:"user_type"`
	DisabilityType     string    `json:"disability_type"`
	Skills             string    `json:"skills"`
	ExperienceLevel    string    `json:"experience_level"`
	PreferredLocation  string    `json:"preferred_location"`
	SalaryExpectation  string    `json:"salary_expectation"`
	AccessibilityNeeds string    `json:"accessibility_needs"`
	WorkPreferences    string    `json:"work_preferences"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func NewUserProfileResponse(u user.User) UserProfileResponse {
	return UserProfileResponse{
		ID:                 u.ID,
		Username:           u.Username,
		Email:              u.Email,
		UserType:           u.UserType,
		DisabilityType:     u.DisabilityType,
		Skills:             u.Skills,
		ExperienceLevel:    u.ExperienceLevel,
		PreferredLocation:  u.PreferredLocation,
		SalaryExpectation:  u.SalaryExpectation,
		AccessibilityNeeds: u.AccessibilityNeeds,
		WorkPreferences:    u.WorkPreferences,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}
