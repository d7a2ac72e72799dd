package match

import "testing"

func TestStatus_CanTransition(t *testing.T) {
	all := []Status{StatusPending, StatusLiked, StatusPassed, StatusApplied}

	allowed := map[Status]map[Status]bool{
		StatusPending: {StatusLiked: true, StatusPassed: true, StatusApplied: true},
		StatusLiked:   {StatusApplied: true},
		StatusApplied: {StatusLiked: true},
		StatusPassed:  {},
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[from][to]
			if got := from.CanTransition(to); got != want {
				t.Errorf("CanTransition(%s -> %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusLiked, StatusPassed, StatusApplied} {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if Status("archived").Valid() {
		t.Error("expected archived to be invalid")
	}
}

func TestAction_TargetStatus(t *testing.T) {
	cases := []struct {
		action Action
		want   Status
		ok     bool
	}{
		{ActionLike, StatusLiked, true},
		{ActionPass, StatusPassed, true},
		{ActionApply, StatusApplied, true},
		{Action("superlike"), "", false},
	}
	for _, c := range cases {
		got, ok := c.action.TargetStatus()
		if got != c.want || ok != c.ok {
			t.Errorf("TargetStatus(%s) = (%v, %v), want (%v, %v)", c.action, got, ok, c.want, c.ok)
		}
	}
}
