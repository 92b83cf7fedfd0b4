package dispatch

import "fmt"

// ConflictError reports a label (name or alias) that is already bound to a
// registered command. The earlier registration stays intact.
type ConflictError struct {
	// Label is the conflicting label.
	Label string
	// Existing is the primary name of the command already holding the label.
	Existing string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("duplicate command/alias %q: already bound to %q", e.Label, e.Existing)
}
