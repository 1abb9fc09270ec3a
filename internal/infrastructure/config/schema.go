package config

// Config represents the complete configuration for camview.
type Config struct {
	// Video selects the source element feeding the pipeline.
	Video VideoConfig `mapstructure:"video" toml:"video"`
	// Sink names the display sink factories tried at startup.
	Sink    SinkConfig    `mapstructure:"sink" toml:"sink"`
	Media   MediaConfig   `mapstructure:"media" toml:"media"`
	Window  WindowConfig  `mapstructure:"window" toml:"window"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging"`
}

// VideoConfig holds the source element factory names.
type VideoConfig struct {
	// Source is the capture element factory, e.g. "v4l2src".
	// When empty, TestSource is used instead.
	Source     string `mapstructure:"source" toml:"source"`
	TestSource string `mapstructure:"test_source" toml:"test_source"`
}

// SinkConfig holds the display sink element factory names.
type SinkConfig struct {
	// GLSink is the GL-capable GTK sink wrapped by GLBin.
	GLSink   string `mapstructure:"gl_sink" toml:"gl_sink"`
	GLBin    string `mapstructure:"gl_bin" toml:"gl_bin"`
	Fallback string `mapstructure:"fallback" toml:"fallback"`
}

// MediaConfig holds GStreamer environment settings applied before init.
type MediaConfig struct {
	// GLAPI selects the OpenGL API for GL sinks: "auto", "gles2", "gl3", "none".
	GLAPI string `mapstructure:"gl_api" toml:"gl_api"`
	// DebugLevel sets GST_DEBUG (0 disables, capped at 5).
	DebugLevel int  `mapstructure:"debug_level" toml:"debug_level"`
	ForceVSync bool `mapstructure:"force_vsync" toml:"force_vsync"`
	// ShowDiagnosticsOnStartup logs media capability warnings at startup
	ShowDiagnosticsOnStartup bool `mapstructure:"show_diagnostics" toml:"show_diagnostics"`
}

// WindowConfig holds the top-level window settings.
type WindowConfig struct {
	Title       string `mapstructure:"title" toml:"title"`
	Width       int    `mapstructure:"width" toml:"width"`
	Height      int    `mapstructure:"height" toml:"height"`
	ButtonLabel string `mapstructure:"button_label" toml:"button_label"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}
