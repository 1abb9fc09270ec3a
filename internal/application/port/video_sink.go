package port

// SinkKind identifies which display path was chosen at startup.
type SinkKind int

const (
	SinkAccelerated SinkKind = iota
	SinkSoftware
)

func (k SinkKind) String() string {
	switch k {
	case SinkAccelerated:
		return "accelerated"
	case SinkSoftware:
		return "software"
	default:
		return "unknown"
	}
}

// SinkFactories names the element factories used for sink selection.
type SinkFactories struct {
	// GLSink is the GL-capable inner sink, e.g. "gtkglsink".
	GLSink string
	// GLBin wraps GLSink for pipeline compatibility, e.g. "glsinkbin".
	GLBin string
	// Fallback is the software sink, e.g. "gtksink".
	Fallback string
}

// VideoSink is the sink chosen at startup. It is closed over two
// implementations: AcceleratedSink and SoftwareSink.
type VideoSink interface {
	Kind() SinkKind
	// Element is the element added to the pipeline.
	Element() MediaElement
	// Display is the surface to embed in the window.
	Display() DisplayHandle

	videoSink()
}

// AcceleratedSink is a GL bin wrapping a GL-capable GTK sink.
type AcceleratedSink struct {
	Bin     MediaElement
	Inner   MediaElement
	Surface DisplayHandle
}

func (*AcceleratedSink) Kind() SinkKind           { return SinkAccelerated }
func (s *AcceleratedSink) Element() MediaElement  { return s.Bin }
func (s *AcceleratedSink) Display() DisplayHandle { return s.Surface }
func (*AcceleratedSink) videoSink()               {}

// SoftwareSink is a plain GTK sink.
type SoftwareSink struct {
	Sink    MediaElement
	Surface DisplayHandle
}

func (*SoftwareSink) Kind() SinkKind           { return SinkSoftware }
func (s *SoftwareSink) Element() MediaElement  { return s.Sink }
func (s *SoftwareSink) Display() DisplayHandle { return s.Surface }
func (*SoftwareSink) videoSink()               {}
