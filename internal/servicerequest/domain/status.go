package domain

// Status is the lifecycle state of a service request, stored as text.
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// ParseStatus validates an inbound status string. Unknown values are
// rejected rather than stored verbatim.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusCancelled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Event is a side effect produced by a status transition.
type Event int

const (
	EventNone Event = iota
	// EventCompleted fires on any transition into COMPLETED from a
	// non-COMPLETED state. Re-saving an already completed request does
	// not fire it again.
	EventCompleted
)

// Transition maps an (old, new) status pair to the event it produces.
func Transition(old, next Status) Event {
	if old != StatusCompleted && next == StatusCompleted {
		return EventCompleted
	}
	return EventNone
}
