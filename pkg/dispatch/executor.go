package dispatch

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"commandkit/pkg/command"
	"commandkit/pkg/platform"
)

// executor is the object bound into the platform command table: the dispatch
// orchestrator for one registered command.
type executor struct {
	engine *Engine
	reg    *Registered
}

// OnCommand runs the per-invocation pipeline. It reports handled on every
// branch: the engine never disowns a label it registered.
func (x *executor) OnCommand(sender platform.Sender, label string, args []string) bool {
	x.engine.dispatch(x.reg, sender, label, args)
	return true
}

// OnTabComplete produces suggestions for the current argument position.
func (x *executor) OnTabComplete(sender platform.Sender, label string, args []string) []string {
	return x.engine.suggest(x.reg, sender, label, args)
}

// dispatch decides the outcome of one invocation and acts on it: a message
// for every rejection, a scheduled task for the happy path. Terminal on every
// branch.
func (e *Engine) dispatch(reg *Registered, sender platform.Sender, label string, args []string) {
	def := reg.Def
	d := e.decide(def, sender, args)

	switch d.outcome {
	case outcomeUnknownSubcommand:
		e.log.Debug("unknown subcommand",
			zap.String("command", def.Meta.Name.String()),
			zap.String("sender", sender.Name()),
			zap.String("token", d.token))
		sender.SendMessage(fmt.Sprintf(e.messages.UnknownSubcommand, d.token))

	case outcomePermissionDenied:
		e.log.Debug("permission denied",
			zap.String("command", def.Meta.Name.String()),
			zap.String("sender", sender.Name()),
			zap.String("permission", d.permission.String()))
		sender.SendMessage(fmt.Sprintf(e.messages.PermissionDenied, d.permission.String()))

	case outcomeThrottled:
		e.log.Debug("dispatch throttled",
			zap.String("command", def.Meta.Name.String()),
			zap.String("sender", sender.Name()))
		sender.SendMessage(e.messages.Throttled)

	case outcomeCoolingDown:
		secs := ceilSeconds(d.remaining)
		e.log.Debug("cooldown active",
			zap.String("command", def.Meta.Name.String()),
			zap.String("sender", sender.Name()),
			zap.Int64("seconds_left", secs))
		sender.SendMessage(fmt.Sprintf(e.messages.CooldownActive, secs))

	case outcomeProceed:
		task := e.prepare(reg, d.invoker, sender, label, d.args)
		switch def.Meta.Execution {
		case command.Async:
			e.sched.RunAsync(task)
		default:
			e.sched.RunSync(task)
		}
	}
}

// decide runs target resolution and the gates, in pipeline order. Rejections
// never reach a later gate: unknown subcommand and permission denial are
// decided before the cooldown is even consulted.
func (e *Engine) decide(def *command.Definition, sender platform.Sender, args []string) decision {
	// Target selection: subcommand when the first token resolves, root when
	// there are no subcommands or no arguments.
	var inv *command.Invoker
	targetArgs := args
	if def.Subs.Len() > 0 && len(args) > 0 {
		resolved, ok := def.Subs.Resolve(args[0])
		if !ok {
			return decision{outcome: outcomeUnknownSubcommand, token: args[0]}
		}
		inv = resolved
		targetArgs = args[1:]
	}

	if perm := EffectivePermission(def, inv); perm.Required() && !sender.HasPermission(perm.String()) {
		return decision{outcome: outcomePermissionDenied, permission: perm}
	}

	if e.flood != nil && !e.flood.AllowN(e.clock.Now(), 1) {
		return decision{outcome: outcomeThrottled}
	}

	if def.Meta.Cooldown.Active() {
		if id, ok := senderID(sender); ok {
			if rem := e.cooldowns.Remaining(id, def.Meta.Name.String()); rem > 0 {
				return decision{outcome: outcomeCoolingDown, remaining: rem}
			}
		}
	}

	return decision{outcome: outcomeProceed, invoker: inv, args: targetArgs}
}

// prepare wraps the resolved handler call into a schedulable task. The
// cooldown window is recorded as soon as the call starts, so a handler that
// panics halfway still consumed its window; a call that never started (gated
// earlier) never records one. Panics stop at this boundary: the sender gets a
// sanitized message, the log gets the full story, the host gets nothing.
func (e *Engine) prepare(reg *Registered, inv *command.Invoker, sender platform.Sender, label string, args []string) platform.Task {
	def := reg.Def
	ctx := &command.Context{Sender: sender, Label: label, Args: args}

	return func() {
		defer func() {
			if r := recover(); r != nil {
				sender.SendMessage(e.messages.InternalError)
				e.log.Error("command handler panicked",
					zap.String("command", def.Meta.Name.String()),
					zap.String("sender", sender.Name()),
					zap.Any("panic", r),
					zap.Stack("stack"))
			}
		}()

		if def.Meta.Cooldown.Active() {
			if id, ok := senderID(sender); ok {
				e.cooldowns.Record(id, def.Meta.Name.String(), def.Meta.Cooldown.Duration())
			}
		}

		if inv != nil {
			inv.Call(ctx)
		} else {
			reg.Handler.Execute(ctx)
		}
	}
}

// ceilSeconds rounds a remaining window up to whole seconds, minimum 1.
func ceilSeconds(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	secs := int64((d + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}
