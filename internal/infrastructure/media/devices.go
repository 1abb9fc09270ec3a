package media

import (
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/bnema/camview/internal/application/port"
)

const (
	// v4l2Source is the only source factory backed by device nodes.
	v4l2Source      = "v4l2src"
	videoDeviceGlob = "/dev/video*"
)

func scanVideoDevices() []port.DeviceStatus {
	return scanDevices(videoDeviceGlob)
}

// scanDevices lists nodes matching pattern and whether this process may
// open them read-write, which v4l2src needs.
func scanDevices(pattern string) []port.DeviceStatus {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil
	}

	devices := make([]port.DeviceStatus, 0, len(paths))
	for _, path := range paths {
		devices = append(devices, port.DeviceStatus{
			Path:       path,
			Accessible: unix.Access(path, unix.R_OK|unix.W_OK) == nil,
		})
	}
	return devices
}

func anyAccessible(devices []port.DeviceStatus) bool {
	for _, d := range devices {
		if d.Accessible {
			return true
		}
	}
	return false
}
