// Package bootstrap prepares the media stack and starts the viewer.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/bnema/camview/internal/application/port"
	"github.com/bnema/camview/internal/application/usecase"
	"github.com/bnema/camview/internal/infrastructure/config"
	"github.com/bnema/camview/internal/infrastructure/media"
	"github.com/bnema/camview/internal/logging"
	"github.com/bnema/camview/internal/ui"
)

// MediaDeps are the media adapters used during startup.
type MediaDeps struct {
	Env         port.GStreamerEnvManager
	Init        func(context.Context) error
	Diagnostics port.MediaDiagnostics
}

// DefaultMediaDeps returns the GStreamer-backed adapters.
func DefaultMediaDeps() MediaDeps {
	return MediaDeps{
		Env:         media.NewEnvManager(),
		Init:        media.Init,
		Diagnostics: media.New(),
	}
}

// PrepareMedia applies the GStreamer environment and initializes GStreamer.
// It must run before GTK starts so GL sinks see the environment.
func PrepareMedia(ctx context.Context, cfg *config.Config, deps MediaDeps, timer *StartupTimer) error {
	ctx = logging.WithComponent(ctx, "media")
	log := logging.FromContext(ctx)

	vendor := deps.Env.DetectGPUVendor(ctx)
	if err := deps.Env.ApplyEnvironment(ctx, cfg.GStreamerEnv()); err != nil {
		return fmt.Errorf("apply gstreamer environment: %w", err)
	}
	timer.Mark("gst_env")

	if err := deps.Init(ctx); err != nil {
		return err
	}
	timer.Mark("gst_init")

	log.Debug().
		Str("gpu_vendor", string(vendor)).
		Interface("env", deps.Env.GetAppliedVars()).
		Msg("media stack ready")
	return nil
}

// CheckMediaRequirements verifies the configured element factories.
// Warnings are logged when media.show_diagnostics is set.
func CheckMediaRequirements(ctx context.Context, cfg *config.Config, diagnostics port.MediaDiagnostics) error {
	ctx = logging.WithComponent(ctx, "media")

	out, err := usecase.NewCheckMediaUseCase(diagnostics).Execute(ctx, usecase.CheckMediaInput{
		Names:           cfg.FactoryNames(),
		ShowDiagnostics: cfg.Media.ShowDiagnosticsOnStartup,
	})
	if err != nil {
		return fmt.Errorf("media check failed: %w", err)
	}
	if !out.CanRender {
		logging.FromContext(ctx).Warn().
			Stringer("sink_path", out.SinkPath).
			Msg("no usable display sink")
	}
	return nil
}

// RunViewer initializes the media stack and runs the GTK application until
// the window is closed. Setup failures are returned before any window exists.
func RunViewer(ctx context.Context, cfg *config.Config) (int, error) {
	return runViewer(ctx, cfg, DefaultMediaDeps())
}

func runViewer(ctx context.Context, cfg *config.Config, deps MediaDeps) (int, error) {
	timer := NewStartupTimer()

	if err := PrepareMedia(ctx, cfg, deps, timer); err != nil {
		return 1, err
	}
	if err := CheckMediaRequirements(ctx, cfg, deps.Diagnostics); err != nil {
		return 1, err
	}
	timer.Mark("media_check")
	timer.LogDebug(ctx)

	uiDeps := &ui.Dependencies{
		Ctx:      ctx,
		Config:   cfg,
		Elements: media.NewElementFactory(),
	}
	return ui.RunWithArgs(ctx, uiDeps), nil
}
