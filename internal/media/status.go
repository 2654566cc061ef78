package media

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of an item. All three states are
// mutually reachable; there is no terminal state.
type Status int

const (
	StatusPlanned Status = iota
	StatusInProgress
	StatusCompleted
)

// Name returns the stable identifier persisted to storage.
func (s Status) Name() string {
	switch s {
	case StatusInProgress:
		return "InProgress"
	case StatusCompleted:
		return "Completed"
	default:
		return "Planned"
	}
}

func (s Status) String() string { return s.Name() }

// Label returns the human-readable form for display.
func (s Status) Label() string {
	switch s {
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return "Planned"
	}
}

// Color returns the display color associated with the status.
func (s Status) Color() string {
	switch s {
	case StatusInProgress:
		return "orange"
	case StatusCompleted:
		return "green"
	default:
		return "gray"
	}
}

// ParseStatus reconstructs a Status from its persisted name.
// Unknown or empty names fall back to Planned rather than failing, so a
// database written by an older schema always loads. The legacy
// "*State" spellings are accepted for the same reason.
func ParseStatus(name string) Status {
	switch name {
	case "InProgress", "InProgressState":
		return StatusInProgress
	case "Completed", "CompletedState":
		return StatusCompleted
	default:
		return StatusPlanned
	}
}

// ParseStatusStrict maps a status name to its value and rejects names
// it does not recognize. ParseStatus's lenient default is for database
// loads; user-supplied input goes through here.
func ParseStatusStrict(name string) (Status, error) {
	for _, s := range []Status{StatusPlanned, StatusInProgress, StatusCompleted} {
		if strings.EqualFold(name, s.Name()) {
			return s, nil
		}
	}
	return StatusPlanned, fmt.Errorf("unknown status %q, expected Planned, InProgress or Completed", name)
}

// Action is a requested status transition.
type Action string

const (
	ActionPlan     Action = "plan"
	ActionStart    Action = "start"
	ActionComplete Action = "complete"
)

// ParseAction parses a user-supplied action name, case-insensitively.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plan":
		return ActionPlan, nil
	case "start":
		return ActionStart, nil
	case "complete":
		return ActionComplete, nil
	default:
		return "", fmt.Errorf("unknown action %q", s)
	}
}

// Apply returns the status after performing the action. Transitions are
// total: every action succeeds from every state, and applying an action
// that targets the current state is a no-op.
func (s Status) Apply(a Action) Status {
	switch a {
	case ActionStart:
		return StatusInProgress
	case ActionComplete:
		return StatusCompleted
	case ActionPlan:
		return StatusPlanned
	default:
		return s
	}
}
