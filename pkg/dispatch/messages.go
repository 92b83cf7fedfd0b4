package dispatch

// Messages holds the user-facing templates the orchestrator sends on gating
// rejections and execution failures. Hosts override them wholesale via
// WithMessages; each template is a fmt format string with the argument noted.
type Messages struct {
	// PermissionDenied takes the missing permission string.
	PermissionDenied string
	// CooldownActive takes the remaining whole seconds (rounded up).
	CooldownActive string
	// UnknownSubcommand takes the offending token.
	UnknownSubcommand string
	// InternalError takes no arguments.
	InternalError string
	// Throttled takes no arguments.
	Throttled string
}

// DefaultMessages returns the stock wording.
func DefaultMessages() Messages {
	return Messages{
		PermissionDenied:  "You need the %q permission to do that.",
		CooldownActive:    "Easy there. Try again in %d second(s).",
		UnknownSubcommand: "Unknown subcommand: %q",
		InternalError:     "Something went wrong while running that command.",
		Throttled:         "The server is handling too many commands right now. Try again shortly.",
	}
}
