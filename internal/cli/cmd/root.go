// Package cmd provides Cobra CLI commands for camview.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/camview/internal/bootstrap"
	"github.com/bnema/camview/internal/cli"
	"github.com/bnema/camview/internal/domain/build"
	"github.com/bnema/camview/internal/logging"
)

// exitCode carries the viewer's exit status out of cobra.
var exitCode int

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "camview",
		Short: "Show live camera video in a GTK window",
		Long: `camview opens a window with live video from a V4L2 camera.

The video source and display sink are GStreamer elements chosen from
config (~/.config/camview/config.toml) or CAMVIEW_* environment variables.
An OpenGL sink is used when available, with a software sink as fallback.
Closing the window stops playback and exits.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		RunE: runViewer,
	}
)

func runViewer(_ *cobra.Command, _ []string) error {
	ctx := app.Ctx()
	log := logging.FromContext(ctx)

	code, err := bootstrap.RunViewer(ctx, app.Config)
	if err != nil {
		log.Error().Err(err).Msg("viewer failed to start")
		return err
	}
	exitCode = code
	return nil
}

// Execute runs the root command and exits with the viewer's status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
