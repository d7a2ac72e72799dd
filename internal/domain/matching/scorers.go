package matching

import (
	"math"
	"strings"
)

// experienceLevels maps the fixed ordinal bracket set to 1..5. An
// unrecognized bracket maps to 0, which the scorer treats as "unknown".
var experienceLevels = map[string]int{
	"0-1":  1,
	"1-3":  2,
	"3-5":  3,
	"5-10": 4,
	"10+":  5,
}

// accessibilityKeywords is the fixed vocabulary scanned for overlap
// between a seeker's stated needs and a posting's listed features.
var accessibilityKeywords = []string{
	"wheelchair", "accessible", "screen reader", "braille", "hearing",
	"visual", "cognitive", "mobility", "remote", "flexible", "accommodation",
}

// SkillsScore rates how much of the posting's requirement surface the
// profile covers. The required-skills count is the denominator; partial
// substring hits ("python" vs "python programming") earn half credit,
// at most once per profile token.
func SkillsScore(profileSkills, requiredSkills string) float64 {
	userList := SplitList(profileSkills)
	jobList := SplitList(requiredSkills)
	if len(userList) == 0 || len(jobList) == 0 {
		return 0
	}

	jobSet := toSet(jobList)
	exact := 0
	for t := range toSet(userList) {
		if _, ok := jobSet[t]; ok {
			exact++
		}
	}

	partial := 0.0
	for _, us := range userList {
		for _, js := range jobList {
			if strings.Contains(js, us) || strings.Contains(us, js) {
				partial += 0.5
				break
			}
		}
	}

	score := (float64(exact) + partial) / float64(len(jobList)) * 100
	return math.Min(100, score)
}

// ExperienceScore compares bracket ordinals with a coarse step function.
// Missing or unrecognized brackets on either side score a neutral 50:
// insufficient information must not penalize.
func ExperienceScore(profileBracket, postingBracket string) float64 {
	userLevel := experienceLevels[strings.TrimSpace(profileBracket)]
	jobLevel := experienceLevels[strings.TrimSpace(postingBracket)]
	if userLevel == 0 || jobLevel == 0 {
		return 50
	}

	switch d := absInt(userLevel - jobLevel); d {
	case 0:
		return 100
	case 1:
		return 80
	case 2:
		return 60
	default:
		return 40
	}
}

// LocationScore applies its rules in precedence order: no posting
// location means no constraint, remote work makes location moot, a
// missing preference is neutral, and only then are the two location
// strings compared word-by-word. A disjoint pair is a near-disqualifier.
func LocationScore(preferred, jobLocation, workType string) float64 {
	if strings.TrimSpace(jobLocation) == "" {
		return 100
	}
	if strings.Contains(strings.ToLower(workType), "remote") {
		return 100
	}
	if strings.TrimSpace(preferred) == "" {
		return 50
	}

	jobWords := wordSet(jobLocation)
	for w := range wordSet(preferred) {
		if _, ok := jobWords[w]; ok {
			return 100
		}
	}
	return 20
}

// AccessibilityScore starts from the premise that every posting in this
// catalog is PWD-friendly: a profile with no stated disability or needs
// is fully compatible, and any posting that lists features earns a base
// credit of 60 plus 10 per keyword present in both texts, capped at 100.
// A posting that is silent about accommodation scores a penalty 20.
func AccessibilityScore(disabilityType, needs, features string) float64 {
	if strings.TrimSpace(disabilityType) == "" && strings.TrimSpace(needs) == "" {
		return 100
	}
	if strings.TrimSpace(features) == "" {
		return 20
	}

	needsLower := strings.ToLower(needs)
	featuresLower := strings.ToLower(features)

	count := 0
	for _, kw := range accessibilityKeywords {
		if strings.Contains(needsLower, kw) && strings.Contains(featuresLower, kw) {
			count++
		}
	}

	return 60 + math.Min(40, float64(count)*10)
}

// SalaryScore compares the seeker's expected figure against the
// posting's offered range. Expectation within range scores 100, below
// range a light 90 (favorable to the employer), above range a
// proportional penalty floored at 20. Anything unparseable resolves to
// the neutral-positive 75.
func SalaryScore(expectation, offeredRange string) float64 {
	if strings.TrimSpace(expectation) == "" || strings.TrimSpace(offeredRange) == "" {
		return 75
	}

	userAmounts, ok := parseSalaryAmounts(expectation)
	if !ok {
		return 75
	}
	jobAmounts, ok := parseSalaryAmounts(offeredRange)
	if !ok {
		return 75
	}

	expected := userAmounts[0]
	offerMin := jobAmounts[0]
	offerMax := jobAmounts[len(jobAmounts)-1]
	if offerMax <= 0 {
		return 75
	}

	switch {
	case expected >= offerMin && expected <= offerMax:
		return 100
	case expected < offerMin:
		return 90
	default:
		overshoot := float64(expected-offerMax) / float64(offerMax) * 100
		return math.Max(20, 80-overshoot)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
