package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/camview/internal/application/port"
	"github.com/bnema/camview/internal/logging"
)

// ErrPipelineLink is returned when the source cannot be added or linked to the sink.
var ErrPipelineLink = errors.New("pipeline assembly failed")

// BuildPipelineUseCase adds the source and sink to a pipeline and links them.
type BuildPipelineUseCase struct{}

// NewBuildPipelineUseCase creates a new BuildPipelineUseCase.
func NewBuildPipelineUseCase() *BuildPipelineUseCase {
	return &BuildPipelineUseCase{}
}

// Execute adds both elements and links source to sink. There is no caps
// negotiation fallback; any failure is fatal for the viewer.
func (*BuildPipelineUseCase) Execute(
	ctx context.Context,
	pipeline port.MediaPipeline,
	source port.MediaElement,
	sink port.VideoSink,
) error {
	log := logging.FromContext(ctx)

	if pipeline == nil || source == nil || sink == nil {
		return fmt.Errorf("%w: missing pipeline, source or sink", ErrPipelineLink)
	}

	sinkElem := sink.Element()
	if err := pipeline.Add(source, sinkElem); err != nil {
		return fmt.Errorf("%w: add elements: %w", ErrPipelineLink, err)
	}
	if err := pipeline.Link(source, sinkElem); err != nil {
		return fmt.Errorf("%w: link %s -> %s: %w", ErrPipelineLink, source.FactoryName(), sinkElem.FactoryName(), err)
	}

	log.Debug().
		Str("source", source.FactoryName()).
		Str("sink", sinkElem.FactoryName()).
		Stringer("sink_kind", sink.Kind()).
		Msg("pipeline linked")
	return nil
}
