package command

import (
	"fmt"
	"strings"
	"time"
)

// Name is a validated command or subcommand name: non-blank, trimmed,
// lowercased at construction. Two names are equal when their normalized
// values are equal.
type Name string

// NewName validates and normalizes raw into a Name.
func NewName(raw string) (Name, error) {
	n := strings.ToLower(strings.TrimSpace(raw))
	if n == "" {
		return "", fmt.Errorf("command name cannot be blank")
	}
	return Name(n), nil
}

func (n Name) String() string { return string(n) }

// Label is a textual binding in the platform command table: a primary name or
// an alias. Same normalization rules as Name.
type Label string

// NewLabel validates and normalizes raw into a Label.
func NewLabel(raw string) (Label, error) {
	l := strings.ToLower(strings.TrimSpace(raw))
	if l == "" {
		return "", fmt.Errorf("command label cannot be blank")
	}
	return Label(l), nil
}

func (l Label) String() string { return string(l) }

// Aliases is an ordered alias list, deduplicated in first-use order. The empty
// slice is the canonical "no aliases" state.
type Aliases []Label

// NewAliases normalizes every entry and drops repeats, keeping first-use order.
// A blank entry is a validation error, not something to skip silently.
func NewAliases(raw []string) (Aliases, error) {
	if len(raw) == 0 {
		return Aliases{}, nil
	}
	seen := make(map[Label]bool, len(raw))
	out := make(Aliases, 0, len(raw))
	for _, r := range raw {
		l, err := NewLabel(r)
		if err != nil {
			return nil, fmt.Errorf("invalid alias %q: %w", r, err)
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out, nil
}

// Strings returns the aliases as plain strings.
func (a Aliases) Strings() []string {
	out := make([]string, len(a))
	for i, l := range a {
		out[i] = string(l)
	}
	return out
}

// Permission is an optional permission string. The empty value means no
// permission is required; Required is the single source of truth for gating.
type Permission string

// Required reports whether a sender must hold this permission.
func (p Permission) Required() bool { return strings.TrimSpace(string(p)) != "" }

func (p Permission) String() string { return string(p) }

// Cooldown is a per-sender rate limit window in whole seconds. Zero means
// inactive.
type Cooldown int

// NewCooldown validates seconds into a Cooldown.
func NewCooldown(seconds int) (Cooldown, error) {
	if seconds < 0 {
		return 0, fmt.Errorf("cooldown cannot be negative: %d", seconds)
	}
	return Cooldown(seconds), nil
}

// Active reports whether the cooldown gates anything at all.
func (c Cooldown) Active() bool { return c > 0 }

// Duration returns the cooldown window.
func (c Cooldown) Duration() time.Duration { return time.Duration(c) * time.Second }

// ExecutionType declares where a resolved handler call runs: on the host's
// primary execution context or on a background pool.
type ExecutionType int

const (
	// Sync runs on the host's primary execution context. The default.
	Sync ExecutionType = iota
	// Async runs on the host's background pool.
	Async
)

func (t ExecutionType) String() string {
	switch t {
	case Sync:
		return "sync"
	case Async:
		return "async"
	default:
		return fmt.Sprintf("execution(%d)", int(t))
	}
}
