package dispatch

import (
	"commandkit/pkg/command"
	"commandkit/pkg/platform"
)

// EffectivePermission resolves the permission that gates one invocation: for
// root execution (nil invoker) the root permission; for a subcommand its own
// permission when explicitly set — even an explicit "none required" — else
// the root's.
func EffectivePermission(def *command.Definition, inv *command.Invoker) command.Permission {
	if inv != nil {
		if p, ok := inv.Meta.PermissionOverride(); ok {
			return p
		}
	}
	return def.Meta.Permission
}

// permitted applies the permission gate for dispatch and completion alike.
func permitted(sender platform.Sender, def *command.Definition, inv *command.Invoker) bool {
	perm := EffectivePermission(def, inv)
	return !perm.Required() || sender.HasPermission(perm.String())
}

// senderID extracts the cooldown identity of a sender. Anonymous senders
// (console and friends) have none and are never cooldown-gated.
func senderID(sender platform.Sender) (string, bool) {
	if ident, ok := sender.(platform.Identifiable); ok {
		return ident.ID(), true
	}
	return "", false
}
