// Package command models a command family the way a handler declares it: a
// descriptor (raw metadata + callback references) that the definition factory
// validates once into an immutable Definition, memoized per handler type by
// the definition cache. How definitions get bound into a host's command table
// and dispatched is the dispatch package's business.
package command

import "commandkit/pkg/platform"

// Context is what every callback receives: the sender plus the arguments left
// after label and subcommand resolution. Created fresh per invocation.
type Context struct {
	Sender platform.Sender
	Label  string
	Args   []string
}

// Func is the shape of every command entry point: one context in, nothing out.
// Failures are reported by panicking; the orchestrator recovers at the task
// boundary.
type Func func(ctx *Context)

// SuggestFunc produces tab-completion suggestions for a context.
type SuggestFunc func(ctx *Context) []string

// Handler is what a host registers: a descriptor describing the command family
// and the root entry point.
type Handler interface {
	Describe() Descriptor
	Execute(ctx *Context)
}

// Suggester is an optional handler capability providing suggestions when the
// command has no subcommands (or for the root argument position).
type Suggester interface {
	Suggest(ctx *Context) []string
}

// Descriptor is the declarative registration table for one command family.
// All strings are raw; the definition factory normalizes and validates them.
type Descriptor struct {
	Name        string
	Description string
	Permission  string
	Aliases     []string
	Execution   ExecutionType
	// CooldownSeconds is the per-sender window in seconds; 0 disables it.
	CooldownSeconds int
	SubCommands     []SubDescriptor
}

// SubDescriptor declares one subcommand entry point.
type SubDescriptor struct {
	Name        string
	Description string
	// Permission is the optional override: nil inherits the root permission,
	// a non-nil pointer (even to "") always wins over the root's.
	Permission *string
	Run         Func
	Suggest     SuggestFunc
}
