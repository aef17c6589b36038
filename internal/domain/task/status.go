package task

import (
	"fmt"

	"github.com/taskboard-dev/taskboard/internal/domain"
)

// Status represents the lifecycle state of a Task.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusCancelled  Status = "cancelled"
)

// legalTransitions is the status state machine. A task starts open; done and
// cancelled are terminal. Self-transitions are not legal.
var legalTransitions = map[Status][]Status{
	StatusOpen:       {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusDone, StatusCancelled},
	StatusDone:       {},
	StatusCancelled:  {},
}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusDone, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no transition out of the status is legal.
func (s Status) IsTerminal() bool {
	return len(legalTransitions[s]) == 0 && s.IsValid()
}

// CanTransitionTo returns true if the state machine allows moving from s
// to the target status.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range legalTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// TransitionError reports an illegal status transition, carrying both the
// current and the requested state. It wraps domain.ErrInvalidTransition so
// callers can match it with errors.Is.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return domain.ErrInvalidTransition
}
