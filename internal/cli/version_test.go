package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVersion(t *testing.T) {
	info := buildVersion()

	assert.Equal(t, appName, info.Name)
	assert.Equal(t, Version, info.GitVersion)
}

func TestVersionCommand(t *testing.T) {
	resetCommands(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, Execute())
	assert.Contains(t, out.String(), Version)
}
