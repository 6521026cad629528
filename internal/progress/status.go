package progress

import (
	"fmt"
	"strings"
)

// Status represents a question's progress state.
type Status string

const (
	// StatusPending is the implicit default when no progress record exists.
	StatusPending   Status = "pending"
	StatusAttempted Status = "attempted"
	StatusSolved    Status = "solved"
)

// Parse maps a raw backend status token onto a Status. It never fails:
// "attempted" and "solved"/"completed" map to their states, everything else
// (including nil) degrades to pending.
func Parse(raw any) Status {
	value := strings.ToLower(strings.TrimSpace(fmt.Sprint(raw)))
	if raw == nil {
		value = ""
	}
	switch value {
	case "attempted":
		return StatusAttempted
	case "solved", "completed":
		return StatusSolved
	default:
		return StatusPending
	}
}

// transitions lists the moves the defined actions can trigger. Self-moves
// are not forbidden by the machine but no action produces them, and nothing
// ever sets pending explicitly.
var transitions = map[Status][]Status{
	StatusPending:   {StatusAttempted},
	StatusAttempted: {StatusSolved},
	StatusSolved:    {StatusAttempted},
}

// CanTransition reports whether the from -> to move is produced by a
// defined action.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// RequiresProgressID reports whether the transition needs an existing
// backend progress identifier before it may be requested. Only the initial
// pending -> attempted move mints a new identifier; every other legal move
// updates an existing progress row.
func RequiresProgressID(from, to Status) bool {
	if from == StatusPending && to == StatusAttempted {
		return false
	}
	return true
}
