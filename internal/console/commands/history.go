package commands

import (
	"fmt"

	"commandkit/pkg/command"
	"commandkit/pkg/platform"
)

// HistoryEntry mirrors what the host records per dispatched command.
type HistoryEntry struct {
	Command  string
	Line     string
	Datetime string
}

// HistoryReader hands back a user's recorded commands, oldest first.
type HistoryReader func(user string) ([]HistoryEntry, error)

// History shows the caller their own recent commands. Anonymous senders have
// no identity, so nothing is recorded for them.
type History struct {
	Read HistoryReader
}

func (h History) Describe() command.Descriptor {
	return command.Descriptor{
		Name:        "history",
		Description: "Show your recent commands.",
		Aliases:     []string{"hist"},
	}
}

func (h History) Execute(ctx *command.Context) {
	identified, ok := ctx.Sender.(platform.Identifiable)
	if !ok {
		ctx.Sender.SendMessage("No history for anonymous sessions. Log in first.")
		return
	}
	entries, err := h.Read(identified.ID())
	if err != nil {
		ctx.Sender.SendMessage("Could not read history: " + err.Error())
		return
	}
	if len(entries) == 0 {
		ctx.Sender.SendMessage("Nothing yet. Go do something memorable.")
		return
	}
	for _, e := range entries {
		ctx.Sender.SendMessage(fmt.Sprintf("%s  %s", e.Datetime, e.Line))
	}
}
