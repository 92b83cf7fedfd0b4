package commands

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"commandkit/pkg/command"
)

// Roll rolls a die. Defaults to six sides, takes an optional side count.
type Roll struct{}

func (Roll) Describe() command.Descriptor {
	return command.Descriptor{
		Name:        "roll",
		Description: "Roll a die. Optionally pick the number of sides.",
		Aliases:     []string{"dice"},
	}
}

func (Roll) Execute(ctx *command.Context) {
	sides := 6
	if len(ctx.Args) > 0 {
		n, err := strconv.Atoi(ctx.Args[0])
		if err != nil || n < 2 {
			ctx.Sender.SendMessage("That's not a die I can roll. Give me a number of sides.")
			return
		}
		sides = n
	}
	ctx.Sender.SendMessage(fmt.Sprintf("You rolled a %d (d%d).", rand.IntN(sides)+1, sides))
}

func (Roll) Suggest(ctx *command.Context) []string {
	return []string{"6", "12", "20", "100"}
}
