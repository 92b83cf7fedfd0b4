package console

import "fmt"

// consoleSender is the anonymous operator sitting at the terminal. It has
// every permission and no identity, so cooldowns never apply to it.
type consoleSender struct{}

func (consoleSender) Name() string                   { return "console" }
func (consoleSender) HasPermission(node string) bool { return true }
func (consoleSender) SendMessage(text string)        { fmt.Println(text) }

// userSender is a logged-in user whose grants live in the store.
type userSender struct {
	name  string
	store *Store
}

func (u *userSender) Name() string { return u.name }
func (u *userSender) ID() string   { return u.name }

func (u *userSender) HasPermission(node string) bool {
	return u.store.HasPermission(u.name, node)
}

func (u *userSender) SendMessage(text string) {
	fmt.Println(text)
}
