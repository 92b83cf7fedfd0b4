package commands

import (
	"fmt"
	"time"

	"commandkit/pkg/command"
)

// Scan is marked async: the REPL prompt comes back while it grinds away in
// the background.
type Scan struct{}

func (Scan) Describe() command.Descriptor {
	return command.Descriptor{
		Name:        "scan",
		Description: "Run a slow scan in the background.",
		Execution:   command.Async,
	}
}

func (Scan) Execute(ctx *command.Context) {
	ctx.Sender.SendMessage("Scan started.")
	steps := 3
	for i := 1; i <= steps; i++ {
		time.Sleep(500 * time.Millisecond)
		ctx.Sender.SendMessage(fmt.Sprintf("Scanning... %d/%d", i, steps))
	}
	ctx.Sender.SendMessage("Scan complete. Nothing suspicious. This time.")
}
