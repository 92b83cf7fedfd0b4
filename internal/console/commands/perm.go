package commands

import (
	"fmt"
	"strings"

	"commandkit/pkg/command"
)

// Grants is the slice of the store the perm command needs.
type Grants interface {
	Grant(user, permission string) error
	Revoke(user, permission string) error
	Permissions(user string) ([]string, error)
}

// Perm manages user permission grants. Locked behind "perm.manage".
type Perm struct {
	Store Grants
}

func (p Perm) Describe() command.Descriptor {
	return command.Descriptor{
		Name:        "perm",
		Description: "Grant, revoke, and list user permissions.",
		Permission:  "perm.manage",
		SubCommands: []command.SubDescriptor{
			{
				Name:        "grant",
				Description: "Grant a permission: perm grant <user> <node>.",
				Run:         p.grant,
				Suggest:     suggestNodes,
			},
			{
				Name:        "revoke",
				Description: "Revoke a permission: perm revoke <user> <node>.",
				Run:         p.revoke,
				Suggest:     suggestNodes,
			},
			{
				Name:        "list",
				Description: "List a user's permissions: perm list <user>.",
				Run:         p.list,
			},
		},
	}
}

func (p Perm) Execute(ctx *command.Context) {
	ctx.Sender.SendMessage("Pick a subcommand: grant, revoke, list.")
}

func (p Perm) grant(ctx *command.Context) {
	if len(ctx.Args) < 2 {
		ctx.Sender.SendMessage("Usage: perm grant <user> <node>")
		return
	}
	if err := p.Store.Grant(ctx.Args[0], ctx.Args[1]); err != nil {
		ctx.Sender.SendMessage("Could not grant: " + err.Error())
		return
	}
	ctx.Sender.SendMessage(fmt.Sprintf("Granted %q to %s.", ctx.Args[1], ctx.Args[0]))
}

func (p Perm) revoke(ctx *command.Context) {
	if len(ctx.Args) < 2 {
		ctx.Sender.SendMessage("Usage: perm revoke <user> <node>")
		return
	}
	if err := p.Store.Revoke(ctx.Args[0], ctx.Args[1]); err != nil {
		ctx.Sender.SendMessage("Could not revoke: " + err.Error())
		return
	}
	ctx.Sender.SendMessage(fmt.Sprintf("Revoked %q from %s.", ctx.Args[1], ctx.Args[0]))
}

func (p Perm) list(ctx *command.Context) {
	if len(ctx.Args) < 1 {
		ctx.Sender.SendMessage("Usage: perm list <user>")
		return
	}
	perms, err := p.Store.Permissions(ctx.Args[0])
	if err != nil {
		ctx.Sender.SendMessage("Could not read permissions: " + err.Error())
		return
	}
	if len(perms) == 0 {
		ctx.Sender.SendMessage(ctx.Args[0] + " has no permissions.")
		return
	}
	ctx.Sender.SendMessage(ctx.Args[0] + ": " + strings.Join(perms, ", "))
}

// suggestNodes offers the nodes the demo command set actually checks.
func suggestNodes(ctx *command.Context) []string {
	if len(ctx.Args) < 2 {
		return nil
	}
	return []string{"admin", "admin.reload", "perm.manage"}
}
