package commands

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"commandkit/pkg/command"
	"commandkit/pkg/platform"
)

// Admin groups maintenance subcommands. The root requires "admin"; reload is
// locked down further with its own node.
type Admin struct {
	Log *zap.Logger
}

func (a Admin) Describe() command.Descriptor {
	reloadPerm := "admin.reload"
	return command.Descriptor{
		Name:        "admin",
		Description: "Maintenance toolbox.",
		Permission:  "admin",
		Aliases:     []string{"adm"},
		SubCommands: []command.SubDescriptor{
			{
				Name:        "reload",
				Description: "Reload configuration.",
				Permission:  &reloadPerm,
				Run:         a.reload,
			},
			{
				Name:        "backup",
				Description: "Snapshot the data file.",
				Run:         a.backup,
				Suggest:     a.backupSuggest,
			},
			{
				Name:        "restore",
				Description: "Restore the latest snapshot.",
				Run:         a.restore,
			},
		},
	}
}

// Execute never runs: every dispatch goes through a subcommand.
func (a Admin) Execute(ctx *command.Context) {
	ctx.Sender.SendMessage("Pick a subcommand: reload, backup, restore.")
}

func (a Admin) reload(ctx *command.Context) {
	a.logf("config reloaded", ctx.Sender)
	ctx.Sender.SendMessage("Configuration reloaded.")
}

func (a Admin) backup(ctx *command.Context) {
	mode := "full"
	if len(ctx.Args) > 0 {
		mode = strings.ToLower(ctx.Args[0])
	}
	switch mode {
	case "full", "partial":
		a.logf("backup "+mode, ctx.Sender)
		ctx.Sender.SendMessage(fmt.Sprintf("Backup (%s) written.", mode))
	default:
		ctx.Sender.SendMessage("Backup mode must be 'full' or 'partial'.")
	}
}

func (a Admin) backupSuggest(ctx *command.Context) []string {
	return []string{"full", "partial"}
}

func (a Admin) restore(ctx *command.Context) {
	a.logf("restore requested", ctx.Sender)
	ctx.Sender.SendMessage("Latest snapshot restored.")
}

func (a Admin) logf(action string, sender platform.Sender) {
	if a.Log != nil {
		a.Log.Info(action, zap.String("by", sender.Name()))
	}
}
