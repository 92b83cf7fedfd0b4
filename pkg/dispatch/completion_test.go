package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commandkit/pkg/command"
)

func adminHandler() *scriptedHandler {
	return &scriptedHandler{desc: command.Descriptor{
		Name: "admin",
		SubCommands: []command.SubDescriptor{
			{Name: "reload", Permission: strptr("admin.reload"), Run: func(ctx *command.Context) {}},
			{Name: "restore", Run: func(ctx *command.Context) {}},
			{Name: "backup", Run: func(ctx *command.Context) {},
				Suggest: func(ctx *command.Context) []string { return []string{"full", "partial"} }},
		},
	}}
}

// Scenario D: prefix completion respects permissions.
func TestCompleteFirstTokenPrefix(t *testing.T) {
	e, table, _, _ := testEngine()
	require.NoError(t, e.Register(adminHandler()))

	permitted := player("steve", "admin.reload")
	assert.Equal(t, []string{"reload", "restore"}, complete(table, "admin", permitted, "admin", "re"))
	assert.Equal(t, []string{"reload"}, complete(table, "admin", permitted, "admin", "rel"))

	denied := player("alex")
	assert.Equal(t, []string{"restore"}, complete(table, "admin", denied, "admin", "re"))
	assert.Empty(t, complete(table, "admin", denied, "admin", "rel"))
}

func TestCompleteEmptyPrefixListsAllPermitted(t *testing.T) {
	e, table, _, _ := testEngine()
	require.NoError(t, e.Register(adminHandler()))

	sender := player("steve", "admin.reload")
	assert.Equal(t, []string{"reload", "restore", "backup"}, complete(table, "admin", sender, "admin"))

	denied := player("alex")
	assert.Equal(t, []string{"restore", "backup"}, complete(table, "admin", denied, "admin"))
}

func TestCompletePrefixIsCaseInsensitive(t *testing.T) {
	e, table, _, _ := testEngine()
	require.NoError(t, e.Register(adminHandler()))

	sender := player("steve", "admin.reload")
	assert.Equal(t, []string{"reload", "restore"}, complete(table, "admin", sender, "admin", "RE"))
}

func TestCompleteDelegatesToSubcommandSuggester(t *testing.T) {
	e, table, _, _ := testEngine()
	require.NoError(t, e.Register(adminHandler()))

	sender := player("steve")
	assert.Equal(t, []string{"full", "partial"}, complete(table, "admin", sender, "admin", "backup", ""))

	// Subcommand without a suggest capability yields nothing.
	assert.Empty(t, complete(table, "admin", sender, "admin", "restore", ""))

	// Permission gating applies to delegation too.
	assert.Empty(t, complete(table, "admin", player("alex"), "admin", "reload", ""))
}

func TestCompleteUnknownFirstTokenYieldsNothing(t *testing.T) {
	e, table, _, _ := testEngine()
	require.NoError(t, e.Register(adminHandler()))

	assert.Empty(t, complete(table, "admin", player("steve"), "admin", "zzz", "x"))
}

func TestCompleteRootSuggesterDelegation(t *testing.T) {
	e, table, _, _ := testEngine()

	shop := &suggestingHandler{scriptedHandler{
		desc: command.Descriptor{Name: "shop"},
		suggest: func(ctx *command.Context) []string {
			return []string{"sword", "shield"}
		},
	}}
	require.NoError(t, e.Register(shop))

	assert.Equal(t, []string{"sword", "shield"}, complete(table, "shop", player("steve"), "shop", "s"))
}

func TestCompleteNoSuggesterYieldsNothing(t *testing.T) {
	e, table, _, _ := testEngine()

	plain := &scriptedHandler{desc: command.Descriptor{Name: "ping"}}
	require.NoError(t, e.Register(plain))

	assert.Empty(t, complete(table, "ping", player("steve"), "ping", "x"))
}
