package media

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/tinyzimmer/go-gst/gst"

	"github.com/bnema/camview/internal/application/port"
)

var (
	// ErrNoDisplayHandle is returned when a sink has no "widget" property or it is unset.
	ErrNoDisplayHandle = errors.New("sink has no display handle")
	// ErrForeignElement is returned when an element was not made by this package.
	ErrForeignElement = errors.New("element not created by the gstreamer factory")
)

// displayProperty is the GtkWidget property of gtksink and gtkglsink.
const displayProperty = "widget"

// Element wraps a *gst.Element as a port.MediaElement.
type Element struct {
	elem    *gst.Element
	factory string
	// display keeps the Go wrapper of the display object alive so its
	// reference outlives the handle given to the UI.
	display interface{}
}

func newElement(elem *gst.Element, factory string) *Element {
	return &Element{elem: elem, factory: factory}
}

// Name returns the instance name assigned by GStreamer.
func (e *Element) Name() string {
	return e.elem.GetName()
}

// FactoryName returns the factory the element was made from.
func (e *Element) FactoryName() string {
	return e.factory
}

// SetChild sets an element-valued property such as glsinkbin's "sink".
func (e *Element) SetChild(property string, child port.MediaElement) error {
	c, err := unwrap(child)
	if err != nil {
		return err
	}
	if err := e.elem.SetProperty(property, c); err != nil {
		return fmt.Errorf("set %s.%s: %w", e.factory, property, err)
	}
	return nil
}

// DisplayHandle reads the rendering surface of a GTK sink.
func (e *Element) DisplayHandle() (port.DisplayHandle, error) {
	if _, err := e.elem.GetPropertyType(displayProperty); err != nil {
		return port.DisplayHandle{}, fmt.Errorf("%w: %s", ErrNoDisplayHandle, e.factory)
	}

	value, err := e.elem.GetProperty(displayProperty)
	if err != nil {
		return port.DisplayHandle{}, fmt.Errorf("read %s.%s: %w", e.factory, displayProperty, err)
	}
	ptr := objectPointer(value)
	if ptr == nil {
		return port.DisplayHandle{}, fmt.Errorf("%w: %s.%s is unset", ErrNoDisplayHandle, e.factory, displayProperty)
	}

	e.display = value
	return port.DisplayHandle{Ptr: ptr}, nil
}

// unsafeObject is satisfied by go-glib object wrappers.
type unsafeObject interface {
	Unsafe() unsafe.Pointer
}

// objectPointer extracts the GObject pointer from a property value.
func objectPointer(value interface{}) unsafe.Pointer {
	obj, ok := value.(unsafeObject)
	if !ok {
		return nil
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil
	}
	return obj.Unsafe()
}

func unwrap(el port.MediaElement) (*gst.Element, error) {
	e, ok := el.(*Element)
	if !ok || e == nil || e.elem == nil {
		return nil, fmt.Errorf("%w: %T", ErrForeignElement, el)
	}
	return e.elem, nil
}

var _ port.MediaElement = (*Element)(nil)
