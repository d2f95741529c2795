package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgsQuoting(t *testing.T) {
	args := ParseArgs(`memory add "First day at the lake" "We arrived at noon." importance:4`)
	assert.Equal(t, []string{"memory", "add", "First day at the lake", "We arrived at noon.", "importance:4"}, args)
}

func TestParseArgsCollapsesSpaces(t *testing.T) {
	args := ParseArgs("folder   list  ")
	assert.Equal(t, []string{"folder", "list"}, args)
}

func TestParseArgsQuotedOptionValue(t *testing.T) {
	args := ParseArgs(`plan add tasks:"Write report,Call dentist"`)
	assert.Equal(t, []string{"plan", "add", "tasks:Write report,Call dentist"}, args)
}

func TestParseCommand(t *testing.T) {
	cmd, err := parseCommand([]string{"Memory", "ADD", "Title", "tags:a"})
	require.NoError(t, err)
	assert.Equal(t, "memory", cmd.Scope)
	assert.Equal(t, "add", cmd.Operation)
	assert.Equal(t, []string{"Title", "tags:a"}, cmd.Args)
}

func TestParseCommandScopeOnly(t *testing.T) {
	cmd, err := parseCommand([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help", cmd.Scope)
	assert.Empty(t, cmd.Operation)
	assert.Empty(t, cmd.Args)
}

func TestParseCommandEmpty(t *testing.T) {
	_, err := parseCommand(nil)
	assert.Error(t, err)
}
