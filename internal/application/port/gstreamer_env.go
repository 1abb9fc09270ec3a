package port

import "context"

// GPUVendor identifies the GPU manufacturer for vendor-specific GL setup.
type GPUVendor string

const (
	// GPUVendorAMD represents AMD/ATI GPUs (vendor ID 0x1002)
	GPUVendorAMD GPUVendor = "amd"
	// GPUVendorIntel represents Intel integrated/discrete GPUs (vendor ID 0x8086)
	GPUVendorIntel GPUVendor = "intel"
	// GPUVendorNVIDIA represents NVIDIA GPUs (vendor ID 0x10de)
	GPUVendorNVIDIA GPUVendor = "nvidia"
	// GPUVendorUnknown represents undetected or unsupported GPUs
	GPUVendorUnknown GPUVendor = "unknown"
)

// GStreamerEnvSettings contains settings for GStreamer environment configuration.
// This is a port-local type to avoid import cycles with config package.
type GStreamerEnvSettings struct {
	// ForceVSync enables vertical sync for GL sinks
	ForceVSync bool
	// GLAPI controls OpenGL API selection: "auto", "gles2", "gl3", "none"
	GLAPI string
	// DebugLevel sets GStreamer debug verbosity (0-5)
	DebugLevel int
}

// GStreamerEnvManager configures GStreamer environment variables.
// Environment variables must be set BEFORE GStreamer initialization.
type GStreamerEnvManager interface {
	// DetectGPUVendor identifies the primary GPU vendor from system info.
	DetectGPUVendor(ctx context.Context) GPUVendor

	// ApplyEnvironment sets GStreamer environment variables based on
	// the provided settings and detected GPU vendor.
	ApplyEnvironment(ctx context.Context, settings GStreamerEnvSettings) error

	// GetAppliedVars returns a map of environment variables that were set.
	GetAppliedVars() map[string]string
}
