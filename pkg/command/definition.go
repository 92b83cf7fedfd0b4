package command

import "strings"

// Metadata is the validated, immutable form of a Descriptor's root fields.
type Metadata struct {
	Name        Name
	Description string
	Permission  Permission
	Aliases     Aliases
	Execution   ExecutionType
	Cooldown    Cooldown
}

// SubMetadata describes one subcommand. The permission override is tri-state:
// unset (inherit root), or set to any value including the empty "none
// required" permission.
type SubMetadata struct {
	Name        Name
	Description string

	permission    Permission
	hasPermission bool
}

// PermissionOverride returns the subcommand's own permission and whether it
// was explicitly set.
func (m SubMetadata) PermissionOverride() (Permission, bool) {
	return m.permission, m.hasPermission
}

// Invoker binds a subcommand's metadata to its entry point.
type Invoker struct {
	Meta    SubMetadata
	run     Func
	suggest SuggestFunc
}

// Call runs the subcommand entry point.
func (iv *Invoker) Call(ctx *Context) { iv.run(ctx) }

// Suggestions delegates to the subcommand's suggest capability. The second
// return reports whether the capability exists.
func (iv *Invoker) Suggestions(ctx *Context) ([]string, bool) {
	if iv.suggest == nil {
		return nil, false
	}
	return iv.suggest(ctx), true
}

// SubCommandMap is an immutable name -> invoker mapping that preserves
// declaration order for suggestion ranking.
type SubCommandMap struct {
	order  []Name
	byName map[Name]*Invoker
}

// Len returns the number of subcommands.
func (m *SubCommandMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// Resolve looks up a raw token case-insensitively.
func (m *SubCommandMap) Resolve(token string) (*Invoker, bool) {
	if m == nil {
		return nil, false
	}
	iv, ok := m.byName[Name(strings.ToLower(strings.TrimSpace(token)))]
	return iv, ok
}

// Names returns subcommand names in declaration order.
func (m *SubCommandMap) Names() []Name {
	if m == nil {
		return nil
	}
	out := make([]Name, len(m.order))
	copy(out, m.order)
	return out
}

// NamesWithPrefix returns, in declaration order, the subcommand names that
// start with the given prefix (case-insensitive).
func (m *SubCommandMap) NamesWithPrefix(prefix string) []Name {
	if m == nil {
		return nil
	}
	p := strings.ToLower(strings.TrimSpace(prefix))
	var out []Name
	for _, n := range m.order {
		if strings.HasPrefix(string(n), p) {
			out = append(out, n)
		}
	}
	return out
}

// Definition is the complete, cache-stable description of one command family.
type Definition struct {
	Meta Metadata
	Subs *SubCommandMap
}

// Labels returns every label this definition binds: the primary name followed
// by the aliases.
func (d *Definition) Labels() []Label {
	out := make([]Label, 0, 1+len(d.Meta.Aliases))
	out = append(out, Label(d.Meta.Name))
	out = append(out, d.Meta.Aliases...)
	return out
}
