// Package window provides the viewer window.
package window

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/camview/internal/application/port"
	"github.com/bnema/camview/internal/logging"
	"github.com/bnema/camview/internal/ui/layout"
)

const (
	defaultWidth  = 320
	defaultHeight = 240
	windowTitle   = "camview"
)

// Config holds the window settings.
type Config struct {
	Title       string
	Width       int
	Height      int
	ButtonLabel string
}

// MainWindow is the top-level viewer window: the video surface above a
// single control button.
type MainWindow struct {
	window  layout.WindowWidget
	rootBox layout.BoxWidget // Vertical: video + button
	video   layout.Widget
	button  layout.ButtonWidget

	logger zerolog.Logger
}

// New creates the window and embeds the display surface. It does not show it.
func New(ctx context.Context, factory layout.WidgetFactory, display port.DisplayHandle, cfg Config) (*MainWindow, error) {
	mw := &MainWindow{
		logger: *logging.FromContext(ctx),
	}

	mw.window = factory.NewWindow()
	if mw.window == nil {
		return nil, ErrWindowCreationFailed
	}

	title := cfg.Title
	if title == "" {
		title = windowTitle
	}
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	mw.window.SetTitle(title)
	mw.window.SetDefaultSize(width, height)

	mw.rootBox = factory.NewBox(layout.OrientationVertical, 0)
	if mw.rootBox == nil {
		return nil, ErrWidgetCreationFailed("rootBox")
	}

	video, err := factory.WrapDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWidgetCreationFailed("video"), err)
	}
	mw.video = video
	mw.video.SetHExpand(true)
	mw.video.SetVExpand(true)

	// Placeholder control, no click handler.
	mw.button = factory.NewButton()
	if mw.button == nil {
		return nil, ErrWidgetCreationFailed("button")
	}
	if cfg.ButtonLabel != "" {
		mw.button.SetLabel(cfg.ButtonLabel)
	}

	mw.rootBox.PackStart(mw.video, true)
	mw.rootBox.PackStart(mw.button, false)
	mw.window.Add(mw.rootBox)

	mw.logger.Debug().
		Int("width", width).
		Int("height", height).
		Msg("window layout assembled")

	return mw, nil
}

// Show makes the window and its children visible.
func (mw *MainWindow) Show() {
	mw.window.ShowAll()
}

// OnClose registers fn to run each time the user asks to close the window.
// GTK then proceeds with the close.
func (mw *MainWindow) OnClose(fn func()) {
	mw.window.ConnectDeleteEvent(func() bool {
		mw.logger.Debug().Msg("close requested")
		fn()
		return false
	})
}

// WindowError represents a window-related error.
type WindowError struct {
	Message string
}

func (e WindowError) Error() string {
	return e.Message
}

// Error constants.
var (
	ErrWindowCreationFailed = WindowError{Message: "failed to create application window"}
)

// ErrWidgetCreationFailed creates an error for widget creation failure.
func ErrWidgetCreationFailed(name string) error {
	return WindowError{Message: "failed to create widget: " + name}
}
