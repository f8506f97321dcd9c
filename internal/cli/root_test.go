package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRootCommand verifies command registration and the global flags.
func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "translate")
	assert.Contains(t, names, "comments")
	assert.Contains(t, names, "cleanup")

	assert.NotNil(t, root.PersistentFlags().Lookup("json"))
	assert.NotNil(t, root.PersistentFlags().Lookup("verbose"))
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)
}

// TestPipelineCommands_RequireRoot verifies that the pipeline commands
// refuse to run without --root.
func TestPipelineCommands_RequireRoot(t *testing.T) {
	for _, name := range []string{"translate", "comments", "cleanup"} {
		root := NewRootCommand()
		root.SetArgs([]string{name})
		err := root.Execute()
		require.Error(t, err, "%s must require --root", name)
	}
}
