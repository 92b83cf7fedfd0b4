package dispatch

import (
	"commandkit/pkg/command"
	"commandkit/pkg/platform"
)

// suggest implements tab completion for one registered command, under the
// same permission rules as execution.
//
// No subcommands: delegate entirely to the handler's Suggester capability.
// Subcommands, completing the first token: subcommand names matching the
// prefix, filtered to what the sender may run, in declaration order.
// Subcommands, later tokens: the resolved subcommand's own suggest capability,
// or nothing. A first token that matches nothing yields nothing — the engine
// does not guess.
func (e *Engine) suggest(reg *Registered, sender platform.Sender, label string, args []string) []string {
	def := reg.Def

	if def.Subs.Len() == 0 {
		if s, ok := reg.Handler.(command.Suggester); ok {
			return s.Suggest(&command.Context{Sender: sender, Label: label, Args: args})
		}
		return nil
	}

	if len(args) <= 1 {
		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}
		var out []string
		for _, n := range def.Subs.NamesWithPrefix(prefix) {
			inv, ok := def.Subs.Resolve(n.String())
			if !ok {
				continue
			}
			if permitted(sender, def, inv) {
				out = append(out, n.String())
			}
		}
		return out
	}

	inv, ok := def.Subs.Resolve(args[0])
	if !ok {
		return nil
	}
	if !permitted(sender, def, inv) {
		return nil
	}
	ctx := &command.Context{Sender: sender, Label: label, Args: args[1:]}
	if suggestions, has := inv.Suggestions(ctx); has {
		return suggestions
	}
	return nil
}
