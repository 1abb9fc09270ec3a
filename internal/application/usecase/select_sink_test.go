package usecase

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/camview/internal/application/port"
	"github.com/bnema/camview/internal/application/port/mocks"
)

var defaultSinks = port.SinkFactories{
	GLSink:   "gtkglsink",
	GLBin:    "glsinkbin",
	Fallback: "gtksink",
}

var errNoFactory = errors.New("no such element factory")

func testHandle() port.DisplayHandle {
	var anchor int
	return port.DisplayHandle{Ptr: unsafe.Pointer(&anchor)}
}

func TestSelectSink_AcceleratedPath(t *testing.T) {
	ctx, buf := captureContext()
	factory := mocks.NewMockElementFactory(t)
	inner := mocks.NewMockMediaElement(t)
	bin := mocks.NewMockMediaElement(t)
	handle := testHandle()

	factory.EXPECT().Make(mock.Anything, "gtkglsink").Return(inner, nil).Once()
	factory.EXPECT().Make(mock.Anything, "glsinkbin").Return(bin, nil).Once()
	bin.EXPECT().SetChild("sink", inner).Return(nil).Once()
	inner.EXPECT().DisplayHandle().Return(handle, nil).Once()
	inner.EXPECT().Name().Return("gtkglsink0").Maybe()
	bin.EXPECT().Name().Return("glsinkbin0").Maybe()

	sink, err := NewSelectSinkUseCase(factory).Execute(ctx, defaultSinks)
	require.NoError(t, err)

	accelerated, ok := sink.(*port.AcceleratedSink)
	require.True(t, ok, "expected accelerated sink, got %T", sink)
	assert.Equal(t, port.SinkAccelerated, sink.Kind())
	assert.Same(t, bin, accelerated.Element())
	assert.Same(t, inner, accelerated.Inner)
	assert.Equal(t, handle, sink.Display())

	infos := messagesAt(t, buf, "info")
	assert.Contains(t, infos, "Using OpenGL acceleration")
	assert.NotContains(t, infos, "Using software fallback")
}

func TestSelectSink_SoftwareFallback(t *testing.T) {
	ctx, buf := captureContext()
	factory := mocks.NewMockElementFactory(t)
	sw := mocks.NewMockMediaElement(t)
	handle := testHandle()

	factory.EXPECT().Make(mock.Anything, "gtkglsink").Return(nil, errNoFactory).Once()
	factory.EXPECT().Make(mock.Anything, "gtksink").Return(sw, nil).Once()
	sw.EXPECT().DisplayHandle().Return(handle, nil).Once()
	sw.EXPECT().Name().Return("gtksink0").Maybe()

	sink, err := NewSelectSinkUseCase(factory).Execute(ctx, defaultSinks)
	require.NoError(t, err)

	software, ok := sink.(*port.SoftwareSink)
	require.True(t, ok, "expected software sink, got %T", sink)
	assert.Equal(t, port.SinkSoftware, sink.Kind())
	assert.Same(t, sw, software.Element())
	assert.Equal(t, handle, sink.Display())

	infos := messagesAt(t, buf, "info")
	assert.Contains(t, infos, "Using software fallback")
	assert.NotContains(t, infos, "Using OpenGL acceleration")
}

func TestSelectSink_NoSinkAvailable(t *testing.T) {
	ctx, buf := captureContext()
	factory := mocks.NewMockElementFactory(t)

	factory.EXPECT().Make(mock.Anything, "gtkglsink").Return(nil, errNoFactory).Once()
	factory.EXPECT().Make(mock.Anything, "gtksink").Return(nil, errNoFactory).Once()

	sink, err := NewSelectSinkUseCase(factory).Execute(ctx, defaultSinks)

	require.Error(t, err)
	assert.Nil(t, sink)
	assert.ErrorIs(t, err, ErrSinkUnavailable)
	assert.ErrorIs(t, err, errNoFactory)
	assert.Contains(t, err.Error(), "gtksink")
	assert.Contains(t, messagesAt(t, buf, "info"), "Using software fallback")
}

func TestSelectSink_GLBinMissingIsFatal(t *testing.T) {
	ctx, _ := captureContext()
	factory := mocks.NewMockElementFactory(t)
	inner := mocks.NewMockMediaElement(t)

	factory.EXPECT().Make(mock.Anything, "gtkglsink").Return(inner, nil).Once()
	factory.EXPECT().Make(mock.Anything, "glsinkbin").Return(nil, errNoFactory).Once()

	sink, err := NewSelectSinkUseCase(factory).Execute(ctx, defaultSinks)

	require.Error(t, err)
	assert.Nil(t, sink)
	assert.ErrorIs(t, err, ErrSinkUnavailable)
	assert.Contains(t, err.Error(), "glsinkbin")
}

func TestSelectSink_SetChildFailure(t *testing.T) {
	ctx, _ := captureContext()
	factory := mocks.NewMockElementFactory(t)
	inner := mocks.NewMockMediaElement(t)
	bin := mocks.NewMockMediaElement(t)
	setErr := errors.New("property not writable")

	factory.EXPECT().Make(mock.Anything, "gtkglsink").Return(inner, nil).Once()
	factory.EXPECT().Make(mock.Anything, "glsinkbin").Return(bin, nil).Once()
	bin.EXPECT().SetChild("sink", inner).Return(setErr).Once()

	_, err := NewSelectSinkUseCase(factory).Execute(ctx, defaultSinks)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSinkUnavailable)
	assert.ErrorIs(t, err, setErr)
}

func TestSelectSink_FallbackWithoutDisplay(t *testing.T) {
	ctx, _ := captureContext()
	factory := mocks.NewMockElementFactory(t)
	sw := mocks.NewMockMediaElement(t)
	noDisplay := errors.New("no widget property")

	factory.EXPECT().Make(mock.Anything, "gtkglsink").Return(nil, errNoFactory).Once()
	factory.EXPECT().Make(mock.Anything, "gtksink").Return(sw, nil).Once()
	sw.EXPECT().DisplayHandle().Return(port.DisplayHandle{}, noDisplay).Once()

	_, err := NewSelectSinkUseCase(factory).Execute(ctx, defaultSinks)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSinkUnavailable)
	assert.ErrorIs(t, err, noDisplay)
}
