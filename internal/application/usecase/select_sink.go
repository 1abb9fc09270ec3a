package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/camview/internal/application/port"
	"github.com/bnema/camview/internal/logging"
)

// ErrSinkUnavailable is returned when no display sink can be built.
var ErrSinkUnavailable = errors.New("video sink unavailable")

const glBinSinkProperty = "sink"

// SelectSinkUseCase picks the GL-accelerated display sink when its factory
// is available and the software sink otherwise.
type SelectSinkUseCase struct {
	factory port.ElementFactory
}

// NewSelectSinkUseCase creates a new SelectSinkUseCase.
func NewSelectSinkUseCase(factory port.ElementFactory) *SelectSinkUseCase {
	return &SelectSinkUseCase{factory: factory}
}

// Execute builds the sink. The accelerated and software paths are mutually
// exclusive: the software path runs only when the GL sink cannot be made.
func (uc *SelectSinkUseCase) Execute(ctx context.Context, names port.SinkFactories) (port.VideoSink, error) {
	log := logging.FromContext(ctx)

	inner, err := uc.factory.Make(ctx, names.GLSink)
	if err == nil {
		log.Info().Msg("Using OpenGL acceleration")
		return uc.accelerated(ctx, names, inner)
	}

	log.Debug().Err(err).Str("factory", names.GLSink).Msg("accelerated sink unavailable")
	log.Info().Msg("Using software fallback")
	return uc.software(ctx, names)
}

func (uc *SelectSinkUseCase) accelerated(
	ctx context.Context,
	names port.SinkFactories,
	inner port.MediaElement,
) (port.VideoSink, error) {
	bin, err := uc.factory.Make(ctx, names.GLBin)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSinkUnavailable, names.GLBin, err)
	}
	if err := bin.SetChild(glBinSinkProperty, inner); err != nil {
		return nil, fmt.Errorf("%w: set %s.%s: %w", ErrSinkUnavailable, names.GLBin, glBinSinkProperty, err)
	}

	// The widget belongs to the inner sink, not the bin.
	surface, err := inner.DisplayHandle()
	if err != nil {
		return nil, fmt.Errorf("%w: %s display: %w", ErrSinkUnavailable, names.GLSink, err)
	}

	logging.FromContext(ctx).Debug().
		Str("bin", bin.Name()).
		Str("inner", inner.Name()).
		Msg("accelerated sink ready")

	return &port.AcceleratedSink{Bin: bin, Inner: inner, Surface: surface}, nil
}

func (uc *SelectSinkUseCase) software(ctx context.Context, names port.SinkFactories) (port.VideoSink, error) {
	sink, err := uc.factory.Make(ctx, names.Fallback)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSinkUnavailable, names.Fallback, err)
	}

	surface, err := sink.DisplayHandle()
	if err != nil {
		return nil, fmt.Errorf("%w: %s display: %w", ErrSinkUnavailable, names.Fallback, err)
	}

	logging.FromContext(ctx).Debug().
		Str("sink", sink.Name()).
		Msg("software sink ready")

	return &port.SoftwareSink{Sink: sink, Surface: surface}, nil
}
