// Package cli wires configuration, logging and styles for the cobra commands.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/camview/internal/cli/styles"
	"github.com/bnema/camview/internal/domain/build"
	"github.com/bnema/camview/internal/infrastructure/config"
	"github.com/bnema/camview/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	ConfigFile string
	Theme      *styles.Theme
	BuildInfo  build.Info
	RunID      string

	// Context with logger
	ctx context.Context
}

// NewApp loads configuration and builds the process logger.
// An invalid config file is an error; a missing one is not.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)
	ctx, runID := logging.WithRunID(ctx)

	logging.FromContext(ctx).Debug().
		Str("config_file", mgr.GetConfigFile()).
		Str("source", cfg.Video.Source).
		Msg("configuration loaded")

	return &App{
		Config:     cfg,
		ConfigFile: mgr.GetConfigFile(),
		Theme:      styles.NewTheme(),
		RunID:      runID,
		ctx:        ctx,
	}, nil
}

// Ctx returns the application context carrying the logger.
func (a *App) Ctx() context.Context {
	if a == nil || a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}
