package config

import "github.com/bnema/camview/internal/application/port"

// SinkFactories returns the sink factory names used for sink selection.
func (c *Config) SinkFactories() port.SinkFactories {
	return port.SinkFactories{
		GLSink:   c.Sink.GLSink,
		GLBin:    c.Sink.GLBin,
		Fallback: c.Sink.Fallback,
	}
}

// FactoryNames returns every element factory the viewer may use.
func (c *Config) FactoryNames() port.FactoryNames {
	return port.FactoryNames{
		Source:     c.Video.Source,
		TestSource: c.Video.TestSource,
		Sinks:      c.SinkFactories(),
	}
}

// GStreamerEnv converts the media section to env manager settings.
func (c *Config) GStreamerEnv() port.GStreamerEnvSettings {
	return port.GStreamerEnvSettings{
		ForceVSync: c.Media.ForceVSync,
		GLAPI:      c.Media.GLAPI,
		DebugLevel: c.Media.DebugLevel,
	}
}
