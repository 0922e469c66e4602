package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	rootCmd.SetArgs([]string{"version"})
	err := rootCmd.Execute()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "medium-mcp v")
	assert.Contains(t, out, "Build:")
	assert.Contains(t, out, "Commit:")
}

func TestServe_FailsFastWithoutCredential(t *testing.T) {
	t.Setenv("RAPIDAPI_KEY", "")

	err := runServe(t.Context())
	require.Error(t, err)
	// The startup error names the missing variable; no server was started.
	assert.Contains(t, err.Error(), "RAPIDAPI_KEY")
}
