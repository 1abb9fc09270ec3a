package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestNewApp_Defaults(t *testing.T) {
	isolateConfig(t)

	app, err := NewApp()
	require.NoError(t, err)

	assert.Equal(t, "v4l2src", app.Config.Video.Source)
	assert.NotEmpty(t, app.RunID)
	assert.NotNil(t, app.Theme)
	assert.NotNil(t, app.Ctx())
}

func TestNewApp_InvalidConfig(t *testing.T) {
	dir := isolateConfig(t)
	cfgDir := filepath.Join(dir, "camview")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("[window]\nwidth = -1\n"), 0o644))

	_, err := NewApp()
	assert.Error(t, err)
}

func TestApp_CtxNil(t *testing.T) {
	var app *App
	assert.Equal(t, context.Background(), app.Ctx())
}
