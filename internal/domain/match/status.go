// Package match defines the persisted match record and the state
// machine that governs its status.
package match

// Status is the lifecycle state of a match record.
//
//	pending -> liked | passed | applied
//	liked   -> applied
//	applied -> liked   (only when the application is withdrawn)
type Status string

const (
	StatusPending Status = "pending"
	StatusLiked   Status = "liked"
	StatusPassed  Status = "passed"
	StatusApplied Status = "applied"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusLiked, StatusPassed, StatusApplied:
		return true
	}
	return false
}

// CanTransition reports whether moving from s to next is a legal edge.
// passed is terminal.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusLiked || next == StatusPassed || next == StatusApplied
	case StatusLiked:
		return next == StatusApplied
	case StatusApplied:
		return next == StatusLiked
	default:
		return false
	}
}

// Action is a user gesture on a pending or liked match.
type Action string

const (
	ActionLike  Action = "like"
	ActionPass  Action = "pass"
	ActionApply Action = "apply"
)

// TargetStatus maps an action to the status it requests. ok=false for
// an unknown action.
func (a Action) TargetStatus() (Status, bool) {
	switch a {
	case ActionLike:
		return StatusLiked, true
	case ActionPass:
		return StatusPassed, true
	case ActionApply:
		return StatusApplied, true
	}
	return "", false
}
