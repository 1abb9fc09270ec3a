package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/tinyzimmer/go-gst/gst"

	"github.com/bnema/camview/internal/application/port"
	"github.com/bnema/camview/internal/logging"
)

// ErrEmptyFactory is returned when an element is requested without a factory name.
var ErrEmptyFactory = errors.New("empty element factory name")

// ElementFactory implements port.ElementFactory on top of the GStreamer registry.
// Init must have succeeded before any method is called.
type ElementFactory struct{}

// NewElementFactory creates a new ElementFactory.
func NewElementFactory() *ElementFactory {
	return &ElementFactory{}
}

// Make creates an element from the named factory.
func (*ElementFactory) Make(ctx context.Context, factory string) (port.MediaElement, error) {
	log := logging.FromContext(ctx)

	if factory == "" {
		return nil, ErrEmptyFactory
	}

	elem, err := gst.NewElement(factory)
	if err != nil {
		log.Debug().Err(err).Str("factory", factory).Msg("element factory unavailable")
		return nil, fmt.Errorf("make %s: %w", factory, err)
	}

	log.Debug().Str("factory", factory).Str("element", elem.GetName()).Msg("element created")
	return newElement(elem, factory), nil
}

// Available reports whether the factory is registered, without creating an element.
func (*ElementFactory) Available(factory string) bool {
	return registered(factory)
}

// NewPipeline creates an empty pipeline.
func (*ElementFactory) NewPipeline(ctx context.Context, name string) (port.MediaPipeline, error) {
	pipeline, err := gst.NewPipeline(name)
	if err != nil {
		return nil, fmt.Errorf("create pipeline %q: %w", name, err)
	}

	logging.FromContext(ctx).Debug().Str("pipeline", pipeline.GetName()).Msg("pipeline created")
	return &Pipeline{pipeline: pipeline}, nil
}

var _ port.ElementFactory = (*ElementFactory)(nil)
