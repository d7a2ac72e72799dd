// Package matching holds the pure compatibility-scoring engine. Every
// scorer is a total function over raw profile/posting text: sparse or
// malformed data resolves to a documented default, never an error.
package matching

import "time"

// Profile is the matchable view of a job seeker.
type Profile struct {
	Skills             string
	ExperienceLevel    string
	PreferredLocation  string
	SalaryExpectation  string
	DisabilityType     string
	AccessibilityNeeds string
}

// Posting is the matchable view of a job.
type Posting struct {
	RequiredSkills        string
	ExperienceRequired    string
	Location              string
	WorkType              string
	AccessibilityFeatures string
	SalaryRange           string
}

// Dimension weights. They sum to 1.0, so the overall score is a convex
// combination of the dimension scores.
const (
	WeightSkills        = 0.35
	WeightExperience    = 0.25
	WeightAccessibility = 0.20
	WeightLocation      = 0.10
	WeightSalary        = 0.10
)

// MinMatchScore is the admission threshold: pairs scoring below it are
// not persisted as matches.
const MinMatchScore = 30.0

type Breakdown struct {
	SkillsMatch        float64   `json:"skills_match"`
	ExperienceMatch    float64   `json:"experience_match"`
	LocationMatch      float64   `json:"location_match"`
	AccessibilityMatch float64   `json:"accessibility_match"`
	SalaryMatch        float64   `json:"salary_match"`
	CalculatedAt       time.Time `json:"calculated_at"`
}

type Result struct {
	Overall   float64
	Breakdown Breakdown
}

// Calculate scores a (profile, posting) pair across all five dimensions
// and combines them with the fixed weights. Scores are rounded to one
// decimal, matching the precision the ledger stores.
func Calculate(p Profile, j Posting) Result {
	skills := SkillsScore(p.Skills, j.RequiredSkills)
	experience := ExperienceScore(p.ExperienceLevel, j.ExperienceRequired)
	location := LocationScore(p.PreferredLocation, j.Location, j.WorkType)
	accessibility := AccessibilityScore(p.DisabilityType, p.AccessibilityNeeds, j.AccessibilityFeatures)
	salary := SalaryScore(p.SalaryExpectation, j.SalaryRange)

	overall := skills*WeightSkills +
		experience*WeightExperience +
		accessibility*WeightAccessibility +
		location*WeightLocation +
		salary*WeightSalary

	return Result{
		Overall: round1(overall),
		Breakdown: Breakdown{
			SkillsMatch:        round1(skills),
			ExperienceMatch:    round1(experience),
			LocationMatch:      round1(location),
			AccessibilityMatch: round1(accessibility),
			SalaryMatch:        round1(salary),
			CalculatedAt:       time.Now().UTC(),
		},
	}
}
