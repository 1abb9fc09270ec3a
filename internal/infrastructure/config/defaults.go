package config

// Default configuration constants
const (
	defaultSource     = "v4l2src"
	defaultTestSource = "videotestsrc"

	defaultGLSink       = "gtkglsink"
	defaultGLBin        = "glsinkbin"
	defaultFallbackSink = "gtksink"

	defaultGLAPI = "auto"

	defaultWindowTitle  = "camview"
	defaultWindowWidth  = 320 // pixels
	defaultWindowHeight = 240 // pixels

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Video: VideoConfig{
			Source:     defaultSource,
			TestSource: defaultTestSource,
		},
		Sink: SinkConfig{
			GLSink:   defaultGLSink,
			GLBin:    defaultGLBin,
			Fallback: defaultFallbackSink,
		},
		Media: MediaConfig{
			GLAPI: defaultGLAPI,
		},
		Window: WindowConfig{
			Title:  defaultWindowTitle,
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// setDefaults registers every key with viper so env overrides apply on Unmarshal.
func (m *Manager) setDefaults() {
	d := DefaultConfig()

	m.viper.SetDefault("video.source", d.Video.Source)
	m.viper.SetDefault("video.test_source", d.Video.TestSource)

	m.viper.SetDefault("sink.gl_sink", d.Sink.GLSink)
	m.viper.SetDefault("sink.gl_bin", d.Sink.GLBin)
	m.viper.SetDefault("sink.fallback", d.Sink.Fallback)

	m.viper.SetDefault("media.gl_api", d.Media.GLAPI)
	m.viper.SetDefault("media.debug_level", d.Media.DebugLevel)
	m.viper.SetDefault("media.force_vsync", d.Media.ForceVSync)
	m.viper.SetDefault("media.show_diagnostics", d.Media.ShowDiagnosticsOnStartup)

	m.viper.SetDefault("window.title", d.Window.Title)
	m.viper.SetDefault("window.width", d.Window.Width)
	m.viper.SetDefault("window.height", d.Window.Height)
	m.viper.SetDefault("window.button_label", d.Window.ButtonLabel)

	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)
}
