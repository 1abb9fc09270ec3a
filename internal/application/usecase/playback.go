package usecase

import (
	"context"

	"github.com/bnema/camview/internal/application/port"
	"github.com/bnema/camview/internal/logging"
)

// PlaybackUseCase drives pipeline state transitions.
// Playback errors arrive asynchronously on the bus, so a failed
// transition here is logged and never aborts the viewer.
type PlaybackUseCase struct{}

// NewPlaybackUseCase creates a new PlaybackUseCase.
func NewPlaybackUseCase() *PlaybackUseCase {
	return &PlaybackUseCase{}
}

// Start moves the pipeline to Playing and reports whether the transition
// was accepted.
func (*PlaybackUseCase) Start(ctx context.Context, pipeline port.MediaPipeline) bool {
	log := logging.FromContext(ctx)

	if err := pipeline.SetState(port.PipelineStatePlaying); err != nil {
		log.Error().Err(err).Msg("failed to set pipeline to playing")
		return false
	}
	log.Debug().Msg("pipeline playing")
	return true
}

// Stop moves the pipeline back to Null after the main loop has exited.
func (*PlaybackUseCase) Stop(ctx context.Context, pipeline port.MediaPipeline) {
	log := logging.FromContext(ctx)

	if pipeline == nil {
		return
	}
	if err := pipeline.SetState(port.PipelineStateNull); err != nil {
		log.Warn().Err(err).Msg("failed to set pipeline to null")
		return
	}
	log.Debug().Msg("pipeline stopped")
}
