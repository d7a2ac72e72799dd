package matching

import (
	"encoding/json"
	"math"
	"testing"
)

func TestWeightsSumToOne(t *testing.T) {
	sum := WeightSkills + WeightExperience + WeightAccessibility + WeightLocation + WeightSalary
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("weights sum to %v, want 1.0", sum)
	}
}

func TestCalculate_ConvexCombination(t *testing.T) {
	p := Profile{
		Skills:            "Go, SQL",
		ExperienceLevel:   "3-5",
		PreferredLocation: "Berlin",
		SalaryExpectation: "60000",
	}
	j := Posting{
		RequiredSkills:     "Go, Kubernetes, SQL",
		ExperienceRequired: "1-3",
		Location:           "Munich",
		SalaryRange:        "$50,000 - $70,000",
	}

	res := Calculate(p, j)
	b := res.Breakdown

	dims := []float64{b.SkillsMatch, b.ExperienceMatch, b.LocationMatch, b.AccessibilityMatch, b.SalaryMatch}
	lo, hi := dims[0], dims[0]
	for _, d := range dims[1:] {
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}

	// Allow for the one-decimal rounding of the overall score.
	if res.Overall < lo-0.1 || res.Overall > hi+0.1 {
		t.Fatalf("overall %v outside [%v, %v]", res.Overall, lo, hi)
	}
}

func TestCalculate_EndToEndScenario(t *testing.T) {
	p := Profile{
		Skills:            "HTML, CSS, JavaScript, React",
		ExperienceLevel:   "1-3",
		PreferredLocation: "New York",
		SalaryExpectation: "70000",
	}
	j := Posting{
		RequiredSkills:     "HTML, CSS, JavaScript, React, Vue.js, WCAG, Accessibility",
		ExperienceRequired: "1-3",
		Location:           "Remote / New York, NY",
		WorkType:           "remote",
		SalaryRange:        "$65,000 - $85,000 annually",
	}

	res := Calculate(p, j)
	b := res.Breakdown

	// 4 exact hits plus 4 partial bonuses over 7 requirements.
	if !almostEqual(b.SkillsMatch, 85.7) {
		t.Errorf("skills: got %v, want ~85.7", b.SkillsMatch)
	}
	if b.ExperienceMatch != 100 {
		t.Errorf("experience: got %v, want 100", b.ExperienceMatch)
	}
	if b.LocationMatch != 100 {
		t.Errorf("location: got %v, want 100", b.LocationMatch)
	}
	if b.AccessibilityMatch != 100 {
		t.Errorf("accessibility: got %v, want 100", b.AccessibilityMatch)
	}
	if b.SalaryMatch != 100 {
		t.Errorf("salary: got %v, want 100", b.SalaryMatch)
	}
	if !almostEqual(res.Overall, 95.0) {
		t.Errorf("overall: got %v, want ~95.0", res.Overall)
	}
	if res.Overall < MinMatchScore {
		t.Errorf("overall %v below admission threshold", res.Overall)
	}
	if b.CalculatedAt.IsZero() {
		t.Error("expected CalculatedAt to be set")
	}
}

func TestCalculate_SparseProfileStillScores(t *testing.T) {
	res := Calculate(Profile{}, Posting{RequiredSkills: "Go"})
	if res.Overall < 0 || res.Overall > 100 {
		t.Fatalf("overall out of range: %v", res.Overall)
	}
}

func TestBreakdown_SerializesLedgerKeys(t *testing.T) {
	b, err := json.Marshal(Breakdown{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{
		"skills_match", "experience_match", "location_match",
		"accessibility_match", "salary_match", "calculated_at",
	} {
		if _, ok := m[key]; !ok {
			t.Errorf("breakdown missing key %q", key)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList("  Go , , SQL,docker ,")
	want := []string{"go", "sql", "docker"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if got := SplitList("   "); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}
