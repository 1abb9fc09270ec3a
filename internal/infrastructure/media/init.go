// Package media adapts GStreamer (go-gst) to the camview media ports.
package media

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tinyzimmer/go-gst/gst"

	"github.com/bnema/camview/internal/logging"
)

// ErrInitFailed is returned when GStreamer cannot be initialized.
var ErrInitFailed = errors.New("gstreamer initialization failed")

// coreElement ships with the core plugin set; if it cannot be found the
// registry is unusable.
const coreElement = "fakesink"

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes GStreamer once per process. Later calls return the
// first result.
func Init(ctx context.Context) error {
	initOnce.Do(func() {
		initErr = initGStreamer(ctx)
	})
	return initErr
}

func initGStreamer(ctx context.Context) (err error) {
	log := logging.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInitFailed, r)
		}
	}()

	gst.Init(nil)

	if !registered(coreElement) {
		return fmt.Errorf("%w: core element %q not registered", ErrInitFailed, coreElement)
	}

	log.Debug().Msg("gstreamer initialized")
	return nil
}

// registered reports whether factory is known to the GStreamer registry.
func registered(factory string) bool {
	if factory == "" {
		return false
	}
	return gst.Find(factory) != nil
}
