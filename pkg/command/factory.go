package command

import (
	"fmt"
	"reflect"
)

// Build validates a handler's descriptor into an immutable Definition.
//
// Every violation is a *ConfigError: nil handler, blank name, invalid alias,
// negative cooldown, a subcommand with a blank name or nil callback, and
// duplicate subcommand names within one descriptor. The callback signature
// itself (one context in, nothing out) is enforced by the Func type, so shape
// validation reduces to presence.
func Build(h Handler) (*Definition, error) {
	if h == nil {
		return nil, configErr("", "handler is nil")
	}
	handlerName := handlerTypeName(h)

	desc := h.Describe()

	name, err := NewName(desc.Name)
	if err != nil {
		return nil, configErr(handlerName, "%v", err)
	}

	aliases, err := NewAliases(desc.Aliases)
	if err != nil {
		return nil, configErr(handlerName, "%v", err)
	}
	// An alias repeating the primary name binds nothing new.
	filtered := aliases[:0]
	for _, a := range aliases {
		if a != Label(name) {
			filtered = append(filtered, a)
		}
	}
	aliases = filtered

	cooldown, err := NewCooldown(desc.CooldownSeconds)
	if err != nil {
		return nil, configErr(handlerName, "%v", err)
	}

	if desc.Execution != Sync && desc.Execution != Async {
		return nil, configErr(handlerName, "unknown execution type %d", int(desc.Execution))
	}

	subs := &SubCommandMap{byName: make(map[Name]*Invoker, len(desc.SubCommands))}
	for _, sd := range desc.SubCommands {
		subName, err := NewName(sd.Name)
		if err != nil {
			return nil, configErr(handlerName, "subcommand %q: %v", sd.Name, err)
		}
		if _, exists := subs.byName[subName]; exists {
			return nil, configErr(handlerName, "duplicate subcommand %q", subName)
		}
		if sd.Run == nil {
			return nil, configErr(handlerName, "subcommand %q has no callback", subName)
		}
		meta := SubMetadata{Name: subName, Description: sd.Description}
		if sd.Permission != nil {
			meta.permission = Permission(*sd.Permission)
			meta.hasPermission = true
		}
		subs.byName[subName] = &Invoker{Meta: meta, run: sd.Run, suggest: sd.Suggest}
		subs.order = append(subs.order, subName)
	}

	return &Definition{
		Meta: Metadata{
			Name:        name,
			Description: desc.Description,
			Permission:  Permission(desc.Permission),
			Aliases:     aliases,
			Execution:   desc.Execution,
			Cooldown:    cooldown,
		},
		Subs: subs,
	}, nil
}

// handlerTypeName names a handler for error messages, e.g. "*commands.Shop".
func handlerTypeName(h Handler) string {
	t := reflect.TypeOf(h)
	if t == nil {
		return ""
	}
	return fmt.Sprintf("%v", t)
}
