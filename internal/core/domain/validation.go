package domain

// ViolationKind classifies a pre-posting check failure.
type ViolationKind string

const (
	ViolationImbalanced      ViolationKind = "imbalanced"
	ViolationUnknownAccount  ViolationKind = "unknown_account"
	ViolationInactiveAccount ViolationKind = "inactive_account"
	ViolationClosedPeriod    ViolationKind = "closed_period"
)

// Violation is one failed pre-posting check. Any non-empty violation list is a
// hard failure; nothing is partially posted.
type Violation struct {
	Kind    ViolationKind `json:"kind"`
	Message string        `json:"message"`
}
