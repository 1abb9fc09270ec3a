package layout

import (
	"errors"
	"fmt"

	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gdk/v3"
	"github.com/diamondburned/gotk4/pkg/gtk/v3"

	"github.com/bnema/camview/internal/application/port"
)

// ErrInvalidDisplay is returned when a display handle cannot be embedded.
var ErrInvalidDisplay = errors.New("invalid display handle")

// Ensure implementations satisfy interfaces at compile time.
var (
	_ Widget        = (*gtkWidget)(nil)
	_ BoxWidget     = (*gtkBox)(nil)
	_ ButtonWidget  = (*gtkButton)(nil)
	_ WindowWidget  = (*gtkWindow)(nil)
	_ WidgetFactory = (*GtkWidgetFactory)(nil)
)

// gtkWidget wraps any gtk.Widgetter to implement the Widget interface.
type gtkWidget struct {
	inner gtk.Widgetter
}

func (w *gtkWidget) SetHExpand(expand bool)   { gtk.BaseWidget(w.inner).SetHExpand(expand) }
func (w *gtkWidget) SetVExpand(expand bool)   { gtk.BaseWidget(w.inner).SetVExpand(expand) }
func (w *gtkWidget) GtkWidget() gtk.Widgetter { return w.inner }

// gtkBox wraps gtk.Box to implement the BoxWidget interface.
type gtkBox struct {
	gtkWidget
	inner *gtk.Box
}

func (b *gtkBox) PackStart(child Widget, expand bool) {
	if child == nil {
		return
	}
	b.inner.PackStart(child.GtkWidget(), expand, expand, 0)
}

// gtkButton wraps gtk.Button to implement the ButtonWidget interface.
type gtkButton struct {
	gtkWidget
	inner *gtk.Button
}

func (b *gtkButton) SetLabel(label string) { b.inner.SetLabel(label) }

// gtkWindow wraps gtk.ApplicationWindow to implement the WindowWidget interface.
type gtkWindow struct {
	inner *gtk.ApplicationWindow
}

func (w *gtkWindow) SetTitle(title string)            { w.inner.SetTitle(title) }
func (w *gtkWindow) SetDefaultSize(width, height int) { w.inner.SetDefaultSize(width, height) }
func (w *gtkWindow) ShowAll()                         { w.inner.ShowAll() }

func (w *gtkWindow) Add(child Widget) {
	if child == nil {
		return
	}
	w.inner.Add(child.GtkWidget())
}

func (w *gtkWindow) ConnectDeleteEvent(callback func() bool) {
	w.inner.ConnectDeleteEvent(func(*gdk.Event) bool {
		return callback()
	})
}

// GtkWidgetFactory creates real GTK widgets bound to an application.
type GtkWidgetFactory struct {
	app *gtk.Application
}

// NewGtkWidgetFactory creates a new GTK widget factory.
func NewGtkWidgetFactory(app *gtk.Application) *GtkWidgetFactory {
	return &GtkWidgetFactory{app: app}
}

func (*GtkWidgetFactory) NewBox(orientation Orientation, spacing int) BoxWidget {
	box := gtk.NewBox(orientation, spacing)
	return &gtkBox{gtkWidget: gtkWidget{inner: box}, inner: box}
}

func (*GtkWidgetFactory) NewButton() ButtonWidget {
	button := gtk.NewButton()
	return &gtkButton{gtkWidget: gtkWidget{inner: button}, inner: button}
}

func (f *GtkWidgetFactory) NewWindow() WindowWidget {
	return &gtkWindow{inner: gtk.NewApplicationWindow(f.app)}
}

// WrapDisplay takes a new reference on the sink's widget. The sink's
// concrete class is unknown to the bindings, so Cast resolves the nearest
// known ancestor.
func (*GtkWidgetFactory) WrapDisplay(handle port.DisplayHandle) (Widget, error) {
	if !handle.Valid() {
		return nil, ErrInvalidDisplay
	}

	obj := glib.Take(handle.Ptr)
	widget, ok := obj.Cast().(gtk.Widgetter)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a GtkWidget", ErrInvalidDisplay, obj.TypeFromInstance().Name())
	}
	return &gtkWidget{inner: widget}, nil
}
