// Package platform defines the narrow contracts the dispatch engine needs
// from a host application: a sender that can be messaged and permission-checked,
// a scheduler that runs a task now or on a background pool, a command table
// slot to bind labels to executors, and a clock. Hosts (Discord bots, consoles,
// game servers) implement these; the engine never imports a host.
package platform

import "time"

// Sender is the caller's identity abstraction for one invocation. Permission
// and messaging go through it; the engine never talks to the host directly.
type Sender interface {
	Name() string
	HasPermission(permission string) bool
	SendMessage(message string)
}

// Identifiable marks senders that can be tracked across invocations (players,
// logged-in users). Cooldowns only apply to identifiable senders; anonymous
// senders such as a server console always pass.
type Identifiable interface {
	ID() string
}

// Task is a prepared handler call, ready to run.
type Task func()

// Scheduler runs tasks under the host's threading rules. RunSync executes on
// the host's primary execution context and must not be used for blocking work;
// RunAsync hands the task to a background pool. There is no cancellation:
// once scheduled, a task runs to completion or panics.
type Scheduler interface {
	RunSync(task Task)
	RunAsync(task Task)
}

// Executor is what the engine binds into the host's command table. OnCommand
// reports handled for every label the engine registered, on every branch.
type Executor interface {
	OnCommand(sender Sender, label string, args []string) bool
	OnTabComplete(sender Sender, label string, args []string) []string
}

// Entry is one registration handed to the host's command table: the primary
// name with its aliases, user-facing description, the root permission string
// (informational for the host; gating happens in the executor), and the
// executor itself.
type Entry struct {
	Name        string
	Aliases     []string
	Description string
	Permission  string
	Executor    Executor
}

// Table is the opaque platform command table. Install binds an entry under its
// name and aliases; how the host stores or syncs that is its own business.
type Table interface {
	Install(entry Entry) error
}

// Clock abstracts time so cooldown behavior is testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls the function.
func (f ClockFunc) Now() time.Time { return f() }
