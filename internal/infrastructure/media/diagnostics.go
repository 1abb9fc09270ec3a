package media

import (
	"context"
	"fmt"

	"github.com/bnema/camview/internal/application/port"
	"github.com/bnema/camview/internal/logging"
)

// Factory roles reported by diagnostics.
const (
	RoleSource     = "source"
	RoleTestSource = "test source"
	RoleGLSink     = "gl sink"
	RoleGLBin      = "gl bin"
	RoleFallback   = "software sink"
)

// Adapter implements port.MediaDiagnostics using the GStreamer registry.
type Adapter struct {
	init    func(context.Context) error
	lookup  func(string) bool
	devices func() []port.DeviceStatus
}

// New creates a new media diagnostics adapter.
func New() port.MediaDiagnostics {
	return &Adapter{init: Init, lookup: registered, devices: scanVideoDevices}
}

// RunDiagnostics checks which configured element factories are registered.
func (a *Adapter) RunDiagnostics(ctx context.Context, names port.FactoryNames) *port.MediaDiagnosticsResult {
	log := logging.FromContext(ctx)
	result := &port.MediaDiagnosticsResult{}

	if err := a.init(ctx); err != nil {
		log.Warn().Err(err).Msg("gstreamer unavailable, video will not play")
		a.generateWarnings(names, result)
		return result
	}
	result.GStreamerAvailable = true

	check := func(role, factory string) bool {
		ok := factory != "" && a.lookup(factory)
		result.Factories = append(result.Factories, port.FactoryStatus{Role: role, Factory: factory, Available: ok})
		return ok
	}

	source := check(RoleSource, names.Source)
	testSource := check(RoleTestSource, names.TestSource)
	glSink := check(RoleGLSink, names.Sinks.GLSink)
	glBin := check(RoleGLBin, names.Sinks.GLBin)
	fallback := check(RoleFallback, names.Sinks.Fallback)

	result.SourceAvailable = source || (names.Source == "" && testSource)
	result.GLSinkAvailable = glSink
	result.AcceleratedSink = glSink && glBin
	result.SoftwareSink = fallback

	if names.Source == v4l2Source && a.devices != nil {
		result.Devices = a.devices()
	}

	a.generateWarnings(names, result)

	log.Info().
		Bool("source", result.SourceAvailable).
		Bool("accelerated_sink", result.AcceleratedSink).
		Bool("software_sink", result.SoftwareSink).
		Msg("media diagnostics complete")

	return result
}

// generateWarnings creates user-friendly warning messages.
//
//nolint:revive // receiver required for interface consistency
func (a *Adapter) generateWarnings(names port.FactoryNames, r *port.MediaDiagnosticsResult) {
	if !r.GStreamerAvailable {
		r.Warnings = append(r.Warnings,
			"CRITICAL: GStreamer not initialized. The viewer cannot start!",
			"Install: gstreamer gst-plugins-base gst-plugins-good",
		)
		return
	}

	if !r.SourceAvailable {
		if names.Source == "" {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("Test source %q not found. Install gst-plugins-base.", names.TestSource))
		} else {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("Source %q not found. Install gst-plugins-good (v4l2src) or set video.source.", names.Source))
		}
	}

	if r.Devices != nil && r.SourceAvailable && !anyAccessible(r.Devices) {
		r.Warnings = append(r.Warnings,
			"No accessible camera under /dev/video*. Check that one is plugged in and that you are in the video group.")
	}

	switch {
	case r.GLSinkAvailable && !r.AcceleratedSink:
		// The viewer never falls back once the GL sink was made.
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("CRITICAL: %s found but %s missing. The viewer cannot start!",
				names.Sinks.GLSink, names.Sinks.GLBin),
			fmt.Sprintf("Install gst-plugins-base (%s) or set sink.gl_sink to an element that is not installed.",
				names.Sinks.GLBin),
		)
	case !r.GLSinkAvailable:
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("%s not found. Video will use the software sink (higher CPU).", names.Sinks.GLSink),
			"Install gst-plugins-good built with GTK GL support (gtkglsink).",
		)
		if !r.SoftwareSink {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("CRITICAL: no display sink found (%s missing too). The viewer cannot start!",
					names.Sinks.Fallback))
		}
	}
}
