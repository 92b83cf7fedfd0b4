package commands

import (
	"fmt"
	"strings"

	"commandkit/pkg/command"
)

var shopStock = []string{"whip", "collar", "candle", "blindfold", "rope"}

// Shop is a root-only command with its own argument suggestions.
type Shop struct{}

func (Shop) Describe() command.Descriptor {
	return command.Descriptor{
		Name:        "shop",
		Description: "Browse the shop or inspect an item.",
		Aliases:     []string{"store"},
	}
}

func (Shop) Execute(ctx *command.Context) {
	if len(ctx.Args) == 0 {
		ctx.Sender.SendMessage("In stock: " + strings.Join(shopStock, ", "))
		return
	}
	item := strings.ToLower(ctx.Args[0])
	for _, stocked := range shopStock {
		if stocked == item {
			ctx.Sender.SendMessage(fmt.Sprintf("The %s? Excellent taste.", item))
			return
		}
	}
	ctx.Sender.SendMessage(fmt.Sprintf("No %q here. Look around first.", ctx.Args[0]))
}

func (Shop) Suggest(ctx *command.Context) []string {
	return shopStock
}
