// Package port defines interfaces for external dependencies.
package port

import (
	"context"
	"unsafe"
)

// PipelineState mirrors the media framework pipeline states camview uses.
type PipelineState int

const (
	PipelineStateNull PipelineState = iota
	PipelineStatePlaying
)

func (s PipelineState) String() string {
	switch s {
	case PipelineStateNull:
		return "null"
	case PipelineStatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// DisplayHandle references the GtkWidget a sink renders into, read from
// its "widget" property. The sink keeps its own reference; the UI takes
// another when embedding it.
type DisplayHandle struct {
	Ptr unsafe.Pointer
}

// Valid reports whether the handle points at an object.
func (h DisplayHandle) Valid() bool {
	return h.Ptr != nil
}

// MediaElement is a single node of a media pipeline.
type MediaElement interface {
	// Name returns the instance name assigned by the framework.
	Name() string
	// FactoryName returns the factory the element was made from.
	FactoryName() string
	// SetChild sets an element-valued property, e.g. a bin's "sink".
	SetChild(property string, child MediaElement) error
	// DisplayHandle returns the rendering surface of a display sink.
	DisplayHandle() (DisplayHandle, error)
}

// MediaPipeline is the container the elements are added to and linked in.
type MediaPipeline interface {
	Add(elements ...MediaElement) error
	Link(src, dst MediaElement) error
	SetState(state PipelineState) error
	// Watch logs bus messages on the default main context until ctx ends.
	Watch(ctx context.Context) error
}

// ElementFactory creates elements and pipelines by factory name.
type ElementFactory interface {
	Make(ctx context.Context, factory string) (MediaElement, error)
	Available(factory string) bool
	NewPipeline(ctx context.Context, name string) (MediaPipeline, error)
}

// FactoryNames lists every element factory the viewer may use.
type FactoryNames struct {
	Source     string
	TestSource string
	Sinks      SinkFactories
}

// FactoryStatus reports the registry state of one factory.
type FactoryStatus struct {
	Role      string
	Factory   string
	Available bool
}

// DeviceStatus reports whether a capture device node can be opened.
type DeviceStatus struct {
	Path       string
	Accessible bool
}

// MediaDiagnosticsResult contains element availability detection results.
type MediaDiagnosticsResult struct {
	GStreamerAvailable bool

	Factories []FactoryStatus
	// Devices is nil unless the source is v4l2src.
	Devices []DeviceStatus

	// Summary
	// GLSinkAvailable alone commits the viewer to the accelerated path;
	// AcceleratedSink additionally needs the GL bin.
	GLSinkAvailable bool
	AcceleratedSink bool
	SoftwareSink    bool
	SourceAvailable bool
	Warnings        []string
}

// MediaDiagnostics provides video playback capability detection.
type MediaDiagnostics interface {
	// RunDiagnostics checks which of the named factories are registered.
	RunDiagnostics(ctx context.Context, names FactoryNames) *MediaDiagnosticsResult
}
