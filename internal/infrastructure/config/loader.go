// Package config loads camview settings from TOML and CAMVIEW_* env variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading.
type Manager struct {
	config *Config
	viper  *viper.Viper
	mu     sync.RWMutex
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	return newManager(v)
}

func newManager(v *viper.Viper) (*Manager, error) {
	// CAMVIEW_VIDEO_SOURCE, CAMVIEW_SINK_FALLBACK, CAMVIEW_WINDOW_WIDTH, ...
	v.SetEnvPrefix("CAMVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// CAMVIEW_VIDEO_SOURCE="" selects the test source.
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "CAMVIEW_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind CAMVIEW_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "CAMVIEW_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind CAMVIEW_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is not an error; defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var configFileNotFoundError viper.ConfigFileNotFoundError
	if errors.As(err, &configFileNotFoundError) {
		return nil
	}
	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configFile, _ = GetConfigFile()
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Video.Source = strings.TrimSpace(config.Video.Source)
	config.Video.TestSource = strings.TrimSpace(config.Video.TestSource)
	if config.Video.TestSource == "" {
		config.Video.TestSource = defaultTestSource
	}

	config.Sink.GLSink = strings.TrimSpace(config.Sink.GLSink)
	config.Sink.GLBin = strings.TrimSpace(config.Sink.GLBin)
	config.Sink.Fallback = strings.TrimSpace(config.Sink.Fallback)

	config.Media.GLAPI = strings.ToLower(strings.TrimSpace(config.Media.GLAPI))
	if config.Media.GLAPI == "" {
		config.Media.GLAPI = defaultGLAPI
	}

	if config.Window.Width == 0 {
		config.Window.Width = defaultWindowWidth
	}
	if config.Window.Height == 0 {
		config.Window.Height = defaultWindowHeight
	}
	if strings.TrimSpace(config.Window.Title) == "" {
		config.Window.Title = defaultWindowTitle
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used,
// or an empty string when running on defaults.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// Load is a convenience wrapper that creates a Manager and loads it.
func Load() (*Config, error) {
	m, err := NewManager()
	if err != nil {
		return nil, err
	}
	if err := m.Load(); err != nil {
		return nil, err
	}
	return m.Get(), nil
}
