package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/camview/internal/domain/build"
)

func TestRootCommand_Subcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "media")
	assert.Contains(t, names, "version")
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	assert.Error(t, rootCmd.Args(rootCmd, []string{"extra"}))
}

func TestVersionCommand(t *testing.T) {
	SetBuildInfo(build.Info{Version: "0.3.0", Commit: "deadbeef"})
	t.Cleanup(func() { SetBuildInfo(build.Info{}) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "0.3.0")
	assert.Contains(t, out.String(), "deadbeef")
	assert.Nil(t, GetApp(), "version must not load config")
}
