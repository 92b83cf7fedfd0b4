package commands

import "commandkit/pkg/command"

// Heal demonstrates per-sender cooldowns: once used, a logged-in user has to
// wait out the window before it works again.
type Heal struct{}

func (Heal) Describe() command.Descriptor {
	return command.Descriptor{
		Name:            "heal",
		Description:     "Patch yourself up. Not too often.",
		CooldownSeconds: 10,
	}
}

func (Heal) Execute(ctx *command.Context) {
	ctx.Sender.SendMessage("You feel restored. Give it a moment before the next one.")
}
