// Package domain provides core business rules for the leads bounded context.
package domain

// LeadStatus is the lifecycle status of a lead.
type LeadStatus string

const (
	// StatusPending is the initial status assigned at submission.
	StatusPending LeadStatus = "PENDING"
	// StatusReachedOut is the terminal status, set once an attorney has
	// contacted the prospect.
	StatusReachedOut LeadStatus = "REACHED_OUT"
)

var knownStatuses = map[LeadStatus]struct{}{
	StatusPending:    {},
	StatusReachedOut: {},
}

// IsKnownStatus reports whether the value is a valid lead status.
func IsKnownStatus(status LeadStatus) bool {
	_, ok := knownStatuses[status]
	return ok
}

// IsTerminal reports whether no further transitions are allowed from status.
func IsTerminal(status LeadStatus) bool {
	return status == StatusReachedOut
}

// CanTransition reports whether the single allowed edge PENDING → REACHED_OUT
// matches the given pair. A REACHED_OUT → REACHED_OUT repeat is not a valid
// transition; callers surface it as a conflict, not a silent success.
func CanTransition(from, to LeadStatus) bool {
	return from == StatusPending && to == StatusReachedOut
}
