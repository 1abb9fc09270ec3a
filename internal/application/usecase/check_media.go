package usecase

import (
	"context"
	"errors"

	"github.com/bnema/camview/internal/application/port"
	"github.com/bnema/camview/internal/logging"
)

// ErrGStreamerMissing is returned when the media framework is not usable.
var ErrGStreamerMissing = errors.New("GStreamer not available - install gst-plugins-base (glsinkbin) and gst-plugins-good (gtksink, gtkglsink)")

// CheckMediaUseCase reports which configured elements are installed.
type CheckMediaUseCase struct {
	diagnostics port.MediaDiagnostics
}

// NewCheckMediaUseCase creates a new CheckMediaUseCase.
func NewCheckMediaUseCase(diagnostics port.MediaDiagnostics) *CheckMediaUseCase {
	return &CheckMediaUseCase{
		diagnostics: diagnostics,
	}
}

// CheckMediaInput contains options for the media check.
type CheckMediaInput struct {
	Names           port.FactoryNames
	ShowDiagnostics bool // Log diagnostics warnings
}

// CheckMediaOutput contains the result of the media check.
type CheckMediaOutput struct {
	Result *port.MediaDiagnosticsResult
	// SinkPath is the sink the viewer would select right now.
	SinkPath port.SinkKind
	// CanRender is false when neither sink path is available.
	CanRender bool
}

// Execute runs diagnostics. Missing GStreamer is an error; missing
// elements are reported as warnings.
func (uc *CheckMediaUseCase) Execute(ctx context.Context, input CheckMediaInput) (*CheckMediaOutput, error) {
	log := logging.FromContext(ctx)

	result := uc.diagnostics.RunDiagnostics(ctx, input.Names)
	if result == nil || !result.GStreamerAvailable {
		return nil, ErrGStreamerMissing
	}

	if input.ShowDiagnostics {
		for _, warning := range result.Warnings {
			log.Warn().Msg(warning)
		}
	}

	out := &CheckMediaOutput{Result: result}
	// Same rule as sink selection: a present GL sink commits to the
	// accelerated path, which then stands or falls with the GL bin.
	if result.GLSinkAvailable {
		out.SinkPath = port.SinkAccelerated
		out.CanRender = result.AcceleratedSink
	} else {
		out.SinkPath = port.SinkSoftware
		out.CanRender = result.SoftwareSink
	}
	return out, nil
}
