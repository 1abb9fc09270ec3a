package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/camview/internal/application/port"
	"github.com/bnema/camview/internal/logging"
)

const (
	defaultDRMBase = "/sys/class/drm"
	maxDebugLevel  = 5
)

// EnvManager implements port.GStreamerEnvManager. It prepares the GL
// environment used by gtkglsink and glsinkbin.
type EnvManager struct {
	appliedVars map[string]string
	gpuVendor   port.GPUVendor
	drmBase     string
}

// NewEnvManager creates a new GStreamer environment manager.
func NewEnvManager() *EnvManager {
	return &EnvManager{
		appliedVars: make(map[string]string),
		gpuVendor:   port.GPUVendorUnknown,
		drmBase:     defaultDRMBase,
	}
}

// DetectGPUVendor identifies the primary GPU vendor from system info.
func (e *EnvManager) DetectGPUVendor(ctx context.Context) port.GPUVendor {
	log := logging.FromContext(ctx)

	vendor := e.detectFromDRM()
	e.gpuVendor = vendor
	if vendor == port.GPUVendorUnknown {
		log.Debug().Msg("could not detect GPU vendor, using unknown")
		return vendor
	}

	log.Debug().Str("vendor", string(vendor)).Msg("detected GPU vendor from DRM")
	return vendor
}

// detectFromDRM reads the PCI vendor id of card0, then card1.
func (e *EnvManager) detectFromDRM() port.GPUVendor {
	for _, card := range []string{"card0", "card1"} {
		data, err := os.ReadFile(filepath.Join(e.drmBase, card, "device", "vendor"))
		if err != nil {
			continue
		}

		switch strings.TrimSpace(string(data)) {
		case "0x1002":
			return port.GPUVendorAMD
		case "0x8086":
			return port.GPUVendorIntel
		case "0x10de":
			return port.GPUVendorNVIDIA
		}
	}
	return port.GPUVendorUnknown
}

// ApplyEnvironment sets GStreamer environment variables based on settings and GPU.
// Variables already present in the environment are left untouched.
// Must be called before media.Init.
func (e *EnvManager) ApplyEnvironment(ctx context.Context, settings port.GStreamerEnvSettings) error {
	log := logging.FromContext(ctx)

	e.appliedVars = make(map[string]string)

	if settings.ForceVSync {
		e.setEnv("__GL_SYNC_TO_VBLANK", "1")
		e.setEnv("vblank_mode", "3") // Mesa DRI config: always sync
	}

	switch strings.ToLower(settings.GLAPI) {
	case "gles2":
		e.setEnv("GST_GL_API", "gles2")
	case "gl3":
		e.setEnv("GST_GL_API", "opengl3")
	case "none":
		// gtkglsink fails to make its context, so selection falls back to gtksink.
		e.setEnv("GST_GL_API", "none")
	case "auto", "":
	default:
		return fmt.Errorf("unknown GL API %q", settings.GLAPI)
	}

	if settings.DebugLevel > 0 {
		e.setEnv("GST_DEBUG", fmt.Sprintf("%d", min(settings.DebugLevel, maxDebugLevel)))
	}

	// NVIDIA GL sinks behave better on EGL than GLX.
	if e.gpuVendor == port.GPUVendorNVIDIA {
		e.setEnv("GST_GL_PLATFORM", "egl")
	}

	log.Debug().
		Interface("vars", e.appliedVars).
		Str("gpu", string(e.gpuVendor)).
		Msg("applied gstreamer environment")

	return nil
}

func (e *EnvManager) setEnv(key, value string) {
	if _, set := os.LookupEnv(key); set {
		return
	}
	_ = os.Setenv(key, value) // Error ignored: setenv rarely fails
	e.appliedVars[key] = value
}

// GetAppliedVars returns a copy of the environment variables that were set.
func (e *EnvManager) GetAppliedVars() map[string]string {
	result := make(map[string]string, len(e.appliedVars))
	for k, v := range e.appliedVars {
		result[k] = v
	}
	return result
}

var _ port.GStreamerEnvManager = (*EnvManager)(nil)
