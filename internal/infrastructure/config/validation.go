package config

import (
	"fmt"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateSink(config)...)
	validationErrors = append(validationErrors, validateMedia(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateSink(config *Config) []string {
	var validationErrors []string
	if config.Sink.GLSink == "" {
		validationErrors = append(validationErrors, "sink.gl_sink cannot be empty")
	}
	if config.Sink.GLBin == "" {
		validationErrors = append(validationErrors, "sink.gl_bin cannot be empty")
	}
	if config.Sink.Fallback == "" {
		validationErrors = append(validationErrors, "sink.fallback cannot be empty")
	}
	return validationErrors
}

func validateMedia(config *Config) []string {
	var validationErrors []string
	switch config.Media.GLAPI {
	case "auto", "gles2", "gl3", "none":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("media.gl_api must be one of auto, gles2, gl3, none (got %q)", config.Media.GLAPI))
	}
	if config.Media.DebugLevel < 0 || config.Media.DebugLevel > 9 {
		validationErrors = append(validationErrors, "media.debug_level must be between 0 and 9")
	}
	return validationErrors
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.Width < 0 {
		validationErrors = append(validationErrors, "window.width must be positive")
	}
	if config.Window.Height < 0 {
		validationErrors = append(validationErrors, "window.height must be positive")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}
