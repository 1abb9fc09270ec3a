package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v3"

	"github.com/bnema/camview/internal/application/port"
	"github.com/bnema/camview/internal/application/usecase"
	"github.com/bnema/camview/internal/domain/entity"
	"github.com/bnema/camview/internal/infrastructure/config"
	"github.com/bnema/camview/internal/logging"
	"github.com/bnema/camview/internal/ui/layout"
	"github.com/bnema/camview/internal/ui/window"
)

const (
	// AppID is the application identifier for GTK.
	AppID = "com.github.bnema.camview"

	pipelineName = "camview-pipeline"
)

// App wraps the GTK Application and owns the pipeline for the lifetime
// of the main loop.
type App struct {
	deps       *Dependencies
	gtkApp     *gtk.Application
	mainWindow *window.MainWindow
	pipeline   port.MediaPipeline
	lifecycle  *entity.Lifecycle

	// exitCode is set when activation fails; it overrides GTK's status.
	exitCode int

	cancel context.CancelCauseFunc
}

// New creates a new App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	deps.withDefaults()

	return &App{deps: deps}, nil
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating GTK application")

	ctx, a.cancel = context.WithCancelCause(ctx)

	a.gtkApp = gtk.NewApplication(AppID, gio.ApplicationFlagsNone)
	if a.gtkApp == nil {
		log.Error().Msg("failed to create GTK application")
		return 1
	}

	a.gtkApp.ConnectActivate(func() {
		a.onActivate(ctx)
	})
	a.gtkApp.ConnectShutdown(func() {
		a.onShutdown(ctx)
	})

	log.Info().Msg("starting GTK main loop")
	code := a.gtkApp.Run(args)

	// The close handler leaves the pipeline alone; release it here.
	a.deps.PlaybackUC.Stop(ctx, a.pipeline)

	if a.exitCode != 0 {
		return a.exitCode
	}
	return code
}

// onActivate is called when the GTK application is activated.
func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application activated")

	// A second launch activates the running instance.
	if a.mainWindow != nil {
		a.mainWindow.Show()
		return
	}

	if err := a.start(ctx, layout.NewGtkWidgetFactory(a.gtkApp), a.Quit); err != nil {
		log.Error().Err(err).Msg("failed to start viewer")
		a.exitCode = 1
		a.Quit()
	}
}

// start builds the pipeline, then the window, then starts playback.
// Every fatal error is returned before a window exists.
func (a *App) start(ctx context.Context, widgets layout.WidgetFactory, quit func()) error {
	ctx = logging.WithComponent(ctx, "ui")
	cfg := a.deps.Config

	pipeline, err := a.deps.Elements.NewPipeline(ctx, pipelineName)
	if err != nil {
		return err
	}

	source, err := a.deps.CreateSourceUC.Execute(ctx, usecase.CreateSourceInput{
		Source:     cfg.Video.Source,
		TestSource: cfg.Video.TestSource,
	})
	if err != nil {
		return err
	}

	sink, err := a.deps.SelectSinkUC.Execute(ctx, cfg.SinkFactories())
	if err != nil {
		return err
	}

	if err := a.deps.BuildPipelineUC.Execute(ctx, pipeline, source, sink); err != nil {
		return err
	}
	a.pipeline = pipeline

	if err := pipeline.Watch(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("bus messages will not be logged")
	}

	mw, err := window.New(ctx, widgets, sink.Display(), windowConfig(cfg))
	if err != nil {
		return fmt.Errorf("create main window: %w", err)
	}
	a.mainWindow = mw

	mw.Show()
	a.lifecycle = entity.NewLifecycle(quit)

	a.deps.PlaybackUC.Start(ctx, pipeline)

	mw.OnClose(func() {
		a.dispatch(ctx, entity.MessageQuit)
	})
	return nil
}

func (a *App) dispatch(ctx context.Context, msg entity.AppMessage) {
	log := logging.FromContext(ctx)

	if !a.lifecycle.Dispatch(msg) {
		log.Debug().Stringer("message", msg).Msg("message ignored")
		return
	}
	log.Debug().
		Stringer("message", msg).
		Stringer("state", a.lifecycle.State()).
		Msg("lifecycle transition")
}

// onShutdown is called when the GTK application is shutting down.
func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application shutting down")

	// Cancel context so the bus watch detaches
	if a.cancel != nil {
		a.cancel(errors.New("application shutdown"))
	}

	log.Info().Msg("application shutdown complete")
}

// MainWindow returns the main window.
func (a *App) MainWindow() *window.MainWindow {
	return a.mainWindow
}

// Quit requests the application to quit.
func (a *App) Quit() {
	if a.gtkApp != nil {
		a.gtkApp.Quit()
	}
}

func windowConfig(cfg *config.Config) window.Config {
	return window.Config{
		Title:       cfg.Window.Title,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		ButtonLabel: cfg.Window.ButtonLabel,
	}
}

// RunWithArgs is a convenience function that creates and runs an App.
func RunWithArgs(ctx context.Context, deps *Dependencies) int {
	app, err := New(deps)
	if err != nil {
		log := logging.FromContext(ctx)
		log.Error().Err(err).Msg("failed to create application")
		return 1
	}
	return app.Run(ctx, os.Args[:1])
}
