package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/camview/internal/application/port"
)

func TestScanDevices(t *testing.T) {
	dir := t.TempDir()
	open := filepath.Join(dir, "video0")
	locked := filepath.Join(dir, "video1")
	require.NoError(t, os.WriteFile(open, nil, 0o600))
	require.NoError(t, os.WriteFile(locked, nil, 0o000))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "audio0"), nil, 0o600))

	devices := scanDevices(filepath.Join(dir, "video*"))

	require.Len(t, devices, 2)
	assert.Equal(t, port.DeviceStatus{Path: open, Accessible: true}, devices[0])
	assert.Equal(t, locked, devices[1].Path)
	if os.Geteuid() != 0 {
		assert.False(t, devices[1].Accessible)
	}
}

func TestScanDevices_NoMatch(t *testing.T) {
	assert.Empty(t, scanDevices(filepath.Join(t.TempDir(), "video*")))
}

func TestAnyAccessible(t *testing.T) {
	assert.False(t, anyAccessible(nil))
	assert.False(t, anyAccessible([]port.DeviceStatus{{Path: "/dev/video0"}}))
	assert.True(t, anyAccessible([]port.DeviceStatus{{Path: "/dev/video0"}, {Path: "/dev/video1", Accessible: true}}))
}
