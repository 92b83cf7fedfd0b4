package dispatch

import (
	"time"

	"commandkit/pkg/command"
)

// gateOutcome is the decision the gating stage hands back to the orchestrator.
// Rejections are expected, user-facing results, not errors; the orchestrator
// turns them into messages and nothing else ever throws for them.
type gateOutcome int

const (
	outcomeProceed gateOutcome = iota
	outcomeUnknownSubcommand
	outcomePermissionDenied
	outcomeThrottled
	outcomeCoolingDown
)

// decision carries the gate outcome plus whatever the message needs: the
// offending token, the missing permission, or the remaining window. When the
// outcome is proceed, invoker/args describe the resolved target (nil invoker
// means root execution).
type decision struct {
	outcome    gateOutcome
	token      string
	permission command.Permission
	remaining  time.Duration

	invoker *command.Invoker
	args    []string
}
