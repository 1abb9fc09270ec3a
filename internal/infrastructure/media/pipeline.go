package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/tinyzimmer/go-gst/gst"

	"github.com/bnema/camview/internal/application/port"
	"github.com/bnema/camview/internal/logging"
)

// ErrBusWatch is returned when a watch cannot be attached to the pipeline bus.
var ErrBusWatch = errors.New("cannot watch pipeline bus")

// Pipeline wraps a *gst.Pipeline as a port.MediaPipeline.
type Pipeline struct {
	pipeline *gst.Pipeline
}

// Add adds elements to the pipeline. The pipeline takes ownership.
func (p *Pipeline) Add(elements ...port.MediaElement) error {
	elems := make([]*gst.Element, 0, len(elements))
	for _, el := range elements {
		e, err := unwrap(el)
		if err != nil {
			return err
		}
		elems = append(elems, e)
	}
	if err := p.pipeline.AddMany(elems...); err != nil {
		return fmt.Errorf("add to %s: %w", p.pipeline.GetName(), err)
	}
	return nil
}

// Link links the src pad of src to the sink pad of dst.
func (*Pipeline) Link(src, dst port.MediaElement) error {
	s, err := unwrap(src)
	if err != nil {
		return err
	}
	d, err := unwrap(dst)
	if err != nil {
		return err
	}
	return s.Link(d)
}

// SetState requests a state change. Errors raised later during playback
// arrive on the bus.
func (p *Pipeline) SetState(state port.PipelineState) error {
	target, err := toGstState(state)
	if err != nil {
		return err
	}
	if err := p.pipeline.SetState(target); err != nil {
		return fmt.Errorf("set %s to %s: %w", p.pipeline.GetName(), state, err)
	}
	return nil
}

// Watch attaches a bus watch dispatched on the default main context, which
// the GTK main loop iterates. The watch removes itself once ctx is done.
func (p *Pipeline) Watch(ctx context.Context) error {
	log := logging.FromContext(ctx)
	name := p.pipeline.GetName()

	bus := p.pipeline.GetPipelineBus()
	ok := bus.AddWatch(func(msg *gst.Message) bool {
		if ctx.Err() != nil {
			return false
		}
		if ev, ok := eventFromMessage(msg, name); ok {
			logBusEvent(log, ev)
		}
		return true
	})
	if !ok {
		return fmt.Errorf("%w: %s", ErrBusWatch, name)
	}
	return nil
}

func toGstState(state port.PipelineState) (gst.State, error) {
	switch state {
	case port.PipelineStateNull:
		return gst.StateNull, nil
	case port.PipelineStatePlaying:
		return gst.StatePlaying, nil
	default:
		return gst.VoidPending, fmt.Errorf("unsupported pipeline state %d", int(state))
	}
}

var _ port.MediaPipeline = (*Pipeline)(nil)
