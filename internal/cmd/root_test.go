package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "gostrap", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	for _, flag := range []string{"config", "verbose", "timestamps"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %s", flag)
	}

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}
	assert.True(t, subcommands["new"])
	assert.True(t, subcommands["templates"])
	assert.True(t, subcommands["version"])
}

func TestRoot_TemplatesCommand(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"templates"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
}

func TestRoot_VersionCommand(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"version"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
}

func TestGetConfig_FallsBackToDefaults(t *testing.T) {
	loadedConfig = nil

	cfg := GetConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "standard", cfg.Template)
}
