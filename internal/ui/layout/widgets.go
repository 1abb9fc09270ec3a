// Package layout provides GTK widget abstractions for the viewer window.
// It defines interfaces that wrap GTK types, enabling unit testing without GTK runtime.
//
// The widgets are GTK3: the gtkglsink and gtksink display widgets are
// GTK3 widgets and can only be embedded in a GTK3 widget tree.
package layout

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v3"

	"github.com/bnema/camview/internal/application/port"
)

// Orientation represents the orientation for layout widgets.
type Orientation = gtk.Orientation

// Orientation constants matching GTK values.
const (
	OrientationHorizontal = gtk.OrientationHorizontal
	OrientationVertical   = gtk.OrientationVertical
)

// Widget is the base interface that all GTK widgets implement.
type Widget interface {
	SetHExpand(expand bool)
	SetVExpand(expand bool)

	// GTK interop - returns the underlying GTK widget for embedding
	GtkWidget() gtk.Widgetter
}

// BoxWidget wraps gtk.Box for linear layouts.
type BoxWidget interface {
	Widget

	// PackStart appends child; expand also makes it fill the extra space.
	PackStart(child Widget, expand bool)
}

// ButtonWidget wraps gtk.Button.
type ButtonWidget interface {
	Widget

	SetLabel(label string)
}

// WindowWidget wraps gtk.ApplicationWindow.
type WindowWidget interface {
	SetTitle(title string)
	SetDefaultSize(width, height int)
	Add(child Widget)
	ShowAll()
	// ConnectDeleteEvent registers a delete-event handler. Returning
	// false lets GTK destroy the window.
	ConnectDeleteEvent(callback func() bool)
}

// WidgetFactory creates widgets. This abstraction enables testing
// the window without a GTK display.
type WidgetFactory interface {
	NewWindow() WindowWidget
	NewBox(orientation Orientation, spacing int) BoxWidget
	NewButton() ButtonWidget
	// WrapDisplay embeds a video sink's widget.
	WrapDisplay(handle port.DisplayHandle) (Widget, error)
}
