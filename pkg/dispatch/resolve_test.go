package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commandkit/pkg/command"
)

func buildDef(t *testing.T, desc command.Descriptor) *command.Definition {
	t.Helper()
	def, err := command.Build(&scriptedHandler{desc: desc})
	require.NoError(t, err)
	return def
}

func TestEffectivePermission(t *testing.T) {
	def := buildDef(t, command.Descriptor{
		Name:       "admin",
		Permission: "admin.use",
		SubCommands: []command.SubDescriptor{
			{Name: "inherit", Run: func(ctx *command.Context) {}},
			{Name: "own", Permission: strptr("admin.own"), Run: func(ctx *command.Context) {}},
			{Name: "open", Permission: strptr(""), Run: func(ctx *command.Context) {}},
		},
	})

	t.Run("root uses root permission", func(t *testing.T) {
		assert.Equal(t, command.Permission("admin.use"), EffectivePermission(def, nil))
	})

	t.Run("unset override inherits root", func(t *testing.T) {
		inv, ok := def.Subs.Resolve("inherit")
		require.True(t, ok)
		assert.Equal(t, command.Permission("admin.use"), EffectivePermission(def, inv))
	})

	t.Run("explicit override wins", func(t *testing.T) {
		inv, ok := def.Subs.Resolve("own")
		require.True(t, ok)
		assert.Equal(t, command.Permission("admin.own"), EffectivePermission(def, inv))
	})

	t.Run("explicit empty override means open, never the root's", func(t *testing.T) {
		inv, ok := def.Subs.Resolve("open")
		require.True(t, ok)
		perm := EffectivePermission(def, inv)
		assert.False(t, perm.Required())
	})
}

func TestSenderID(t *testing.T) {
	id, ok := senderID(player("steve"))
	assert.True(t, ok)
	assert.Equal(t, "steve", id)

	_, ok = senderID(newFakeSender("console", ""))
	assert.False(t, ok)
}
