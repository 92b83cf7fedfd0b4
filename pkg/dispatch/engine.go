// Package dispatch is the engine that turns registered handlers into live
// commands: it caches definitions, binds labels into the host's command
// table, and runs the per-invocation pipeline (subcommand resolution,
// permission and cooldown gating, sync/async scheduling, panic containment,
// tab completion).
package dispatch

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"commandkit/pkg/command"
	"commandkit/pkg/cooldown"
	"commandkit/pkg/platform"
)

// Registered is a definition paired with the handler instance it was built
// from. Created at registration, never mutated.
type Registered struct {
	Def     *command.Definition
	Handler command.Handler
}

// Engine composes the dispatch pipeline. Registration is a startup-time
// affair; the label table supports concurrent lookups during dispatch.
type Engine struct {
	table     platform.Table
	sched     platform.Scheduler
	clock     platform.Clock
	log       *zap.Logger
	cache     *command.Cache
	cooldowns *cooldown.Tracker
	messages  Messages
	flood     *rate.Limiter

	mu     sync.RWMutex
	labels map[command.Label]*Registered
}

// Option configures the engine.
type Option func(*Engine)

// WithClock injects the clock used for cooldown windows and the flood guard.
func WithClock(clock platform.Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithLogger sets the logger. Defaults to a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithMessages replaces the user-facing message templates.
func WithMessages(m Messages) Option {
	return func(e *Engine) { e.messages = m }
}

// WithFloodLimit enables the engine-wide dispatch throttle: a token bucket
// refilling at perSecond with the given burst. Off by default.
func WithFloodLimit(perSecond float64, burst int) Option {
	return func(e *Engine) {
		e.flood = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithCache shares a definition cache between engines.
func WithCache(c *command.Cache) Option {
	return func(e *Engine) {
		if c != nil {
			e.cache = c
		}
	}
}

// New builds an engine over the host's command table and scheduler.
func New(table platform.Table, sched platform.Scheduler, opts ...Option) *Engine {
	e := &Engine{
		table:    table,
		sched:    sched,
		clock:    platform.SystemClock{},
		log:      zap.NewNop(),
		cache:    command.NewCache(),
		messages: DefaultMessages(),
		labels:   make(map[command.Label]*Registered),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.cooldowns = cooldown.New(e.clock)
	return e
}

// Cooldowns exposes the cooldown tracker so hosts can run the background
// cleaner or reset windows.
func (e *Engine) Cooldowns() *cooldown.Tracker { return e.cooldowns }

// Register resolves the handler's definition (through the cache), claims its
// labels, and installs an executor into the platform command table.
//
// A *command.ConfigError means the descriptor is broken; a *ConflictError
// means a label is already taken. Either way nothing is installed and earlier
// registrations stay usable.
func (e *Engine) Register(h command.Handler) error {
	def, err := e.cache.Definition(h)
	if err != nil {
		return err
	}
	reg := &Registered{Def: def, Handler: h}
	labels := def.Labels()

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, l := range labels {
		if prev, exists := e.labels[l]; exists {
			return &ConflictError{Label: string(l), Existing: prev.Def.Meta.Name.String()}
		}
	}

	entry := platform.Entry{
		Name:        def.Meta.Name.String(),
		Aliases:     def.Meta.Aliases.Strings(),
		Description: def.Meta.Description,
		Permission:  def.Meta.Permission.String(),
		Executor:    &executor{engine: e, reg: reg},
	}
	if err := e.table.Install(entry); err != nil {
		return fmt.Errorf("install %q into command table: %w", def.Meta.Name, err)
	}

	for _, l := range labels {
		e.labels[l] = reg
	}
	e.log.Debug("command registered",
		zap.String("command", def.Meta.Name.String()),
		zap.Strings("aliases", def.Meta.Aliases.Strings()),
		zap.Int("subcommands", def.Subs.Len()),
	)
	return nil
}

// Lookup returns the registered command bound to a label, if any.
func (e *Engine) Lookup(label string) (*Registered, bool) {
	l, err := command.NewLabel(label)
	if err != nil {
		return nil, false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	reg, ok := e.labels[l]
	return reg, ok
}

// Registered returns every distinct registered command, in no particular
// order. Useful for help output.
func (e *Engine) Registered() []*Registered {
	e.mu.RLock()
	defer e.mu.RUnlock()
	seen := make(map[*Registered]bool, len(e.labels))
	out := make([]*Registered, 0, len(e.labels))
	for _, reg := range e.labels {
		if seen[reg] {
			continue
		}
		seen[reg] = true
		out = append(out, reg)
	}
	return out
}
