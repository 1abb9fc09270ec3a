package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"unsafe"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/camview/internal/application/port"
	portmocks "github.com/bnema/camview/internal/application/port/mocks"
	"github.com/bnema/camview/internal/application/usecase"
	"github.com/bnema/camview/internal/domain/entity"
	"github.com/bnema/camview/internal/infrastructure/config"
	"github.com/bnema/camview/internal/logging"
	"github.com/bnema/camview/internal/ui/layout"
	layoutmocks "github.com/bnema/camview/internal/ui/layout/mocks"
)

var errNoFactory = errors.New("no such element factory")

type viewerMocks struct {
	elements *portmocks.MockElementFactory
	pipeline *portmocks.MockMediaPipeline
	source   *portmocks.MockMediaElement
	sink     *portmocks.MockMediaElement

	widgets *layoutmocks.MockWidgetFactory
	window  *layoutmocks.MockWindowWidget
	box     *layoutmocks.MockBoxWidget
	video   *layoutmocks.MockWidget
	button  *layoutmocks.MockButtonWidget

	display port.DisplayHandle
	events  []string
}

func newViewerMocks(t *testing.T) *viewerMocks {
	var anchor int
	return &viewerMocks{
		elements: portmocks.NewMockElementFactory(t),
		pipeline: portmocks.NewMockMediaPipeline(t),
		source:   portmocks.NewMockMediaElement(t),
		sink:     portmocks.NewMockMediaElement(t),
		widgets:  layoutmocks.NewMockWidgetFactory(t),
		window:   layoutmocks.NewMockWindowWidget(t),
		box:      layoutmocks.NewMockBoxWidget(t),
		video:    layoutmocks.NewMockWidget(t),
		button:   layoutmocks.NewMockButtonWidget(t),
		display:  port.DisplayHandle{Ptr: unsafe.Pointer(&anchor)},
	}
}

func (m *viewerMocks) record(event string) func() {
	return func() { m.events = append(m.events, event) }
}

// expectSoftwarePipeline wires a pipeline that falls back to the software sink.
func (m *viewerMocks) expectSoftwarePipeline(sourceFactory string) {
	m.elements.EXPECT().NewPipeline(mock.Anything, pipelineName).Return(m.pipeline, nil).Once()
	m.elements.EXPECT().Make(mock.Anything, sourceFactory).Return(m.source, nil).Once()
	m.elements.EXPECT().Make(mock.Anything, "gtkglsink").Return(nil, errNoFactory).Once()
	m.elements.EXPECT().Make(mock.Anything, "gtksink").Return(m.sink, nil).Once()

	m.source.EXPECT().Name().Return(sourceFactory + "0").Maybe()
	m.source.EXPECT().FactoryName().Return(sourceFactory).Maybe()
	m.sink.EXPECT().Name().Return("gtksink0").Maybe()
	m.sink.EXPECT().FactoryName().Return("gtksink").Maybe()
	m.sink.EXPECT().DisplayHandle().Return(m.display, nil).Once()

	m.pipeline.EXPECT().Add(m.source, m.sink).Return(nil).Once()
	m.pipeline.EXPECT().Link(m.source, m.sink).Return(nil).Once()
	m.pipeline.EXPECT().Watch(mock.Anything).Return(nil).Once()
}

func (m *viewerMocks) expectWindow() {
	m.widgets.EXPECT().NewWindow().Return(m.window).Once()
	m.widgets.EXPECT().NewBox(layout.OrientationVertical, 0).Return(m.box).Once()
	m.widgets.EXPECT().WrapDisplay(m.display).Return(m.video, nil).Once()
	m.widgets.EXPECT().NewButton().Return(m.button).Once()

	m.video.EXPECT().SetHExpand(true).Once()
	m.video.EXPECT().SetVExpand(true).Once()
	m.box.EXPECT().PackStart(mock.Anything, mock.Anything).Times(2)

	m.window.EXPECT().SetTitle("camview").Once()
	m.window.EXPECT().SetDefaultSize(320, 240).Once()
	m.window.EXPECT().Add(m.box).Once()
	m.window.EXPECT().ShowAll().Run(m.record("present")).Once()
}

func (m *viewerMocks) captureClose() *func() bool {
	var handler func() bool
	m.window.EXPECT().ConnectDeleteEvent(mock.Anything).Run(func(cb func() bool) {
		m.events = append(m.events, "close-handler")
		handler = cb
	}).Once()
	return &handler
}

func newTestApp(t *testing.T, cfg *config.Config, elements port.ElementFactory) *App {
	t.Helper()
	app, err := New(&Dependencies{
		Ctx:      context.Background(),
		Config:   cfg,
		Elements: elements,
	})
	require.NoError(t, err)
	return app
}

func TestStart_ShowsWindowThenPlays(t *testing.T) {
	m := newViewerMocks(t)
	m.expectSoftwarePipeline("v4l2src")
	m.expectWindow()
	m.pipeline.EXPECT().SetState(port.PipelineStatePlaying).Return(nil).Run(func(port.PipelineState) {
		m.events = append(m.events, "playing")
	}).Once()
	handler := m.captureClose()

	app := newTestApp(t, config.DefaultConfig(), m.elements)
	quits := 0

	err := app.start(context.Background(), m.widgets, func() { quits++ })
	require.NoError(t, err)

	assert.Equal(t, []string{"present", "playing", "close-handler"}, m.events)
	assert.NotNil(t, app.MainWindow())
	assert.Equal(t, entity.AppStateRunning, app.lifecycle.State())

	require.NotNil(t, *handler)
	assert.False(t, (*handler)())
	assert.Equal(t, 1, quits)
	assert.Equal(t, entity.AppStateShuttingDown, app.lifecycle.State())

	// Later close events are ignored.
	(*handler)()
	assert.Equal(t, 1, quits)
}

func TestStart_EmptySourceUsesTestSource(t *testing.T) {
	m := newViewerMocks(t)
	m.expectSoftwarePipeline("videotestsrc")
	m.expectWindow()
	m.pipeline.EXPECT().SetState(port.PipelineStatePlaying).Return(nil).Once()
	m.captureClose()

	cfg := config.DefaultConfig()
	cfg.Video.Source = ""

	require.NoError(t, newTestApp(t, cfg, m.elements).start(context.Background(), m.widgets, func() {}))
}

func TestStart_PlayingFailureIsNotFatal(t *testing.T) {
	m := newViewerMocks(t)
	m.expectSoftwarePipeline("v4l2src")
	m.expectWindow()
	m.pipeline.EXPECT().SetState(port.PipelineStatePlaying).Return(errors.New("state change failed")).Once()
	handler := m.captureClose()

	app := newTestApp(t, config.DefaultConfig(), m.elements)

	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf))

	require.NoError(t, app.start(ctx, m.widgets, func() {}))
	assert.NotNil(t, *handler)

	out := buf.String()
	assert.Contains(t, out, `"message":"failed to set pipeline to playing"`)
	assert.Contains(t, out, `"component":"ui"`)
	// One component field per line, no nested duplicates.
	assert.Equal(t, strings.Count(out, "\n"), strings.Count(out, `"component"`))
}

func TestStart_NoSinkIsFatalBeforeAnyWindow(t *testing.T) {
	m := newViewerMocks(t)
	m.elements.EXPECT().NewPipeline(mock.Anything, pipelineName).Return(m.pipeline, nil).Once()
	m.elements.EXPECT().Make(mock.Anything, "v4l2src").Return(m.source, nil).Once()
	m.elements.EXPECT().Make(mock.Anything, "gtkglsink").Return(nil, errNoFactory).Once()
	m.elements.EXPECT().Make(mock.Anything, "gtksink").Return(nil, errNoFactory).Once()
	m.source.EXPECT().Name().Return("v4l2src0").Maybe()

	app := newTestApp(t, config.DefaultConfig(), m.elements)

	err := app.start(context.Background(), m.widgets, func() { t.Fatal("quit must not be requested by start") })

	require.ErrorIs(t, err, usecase.ErrSinkUnavailable)
	assert.Nil(t, app.MainWindow())
	m.widgets.AssertNotCalled(t, "NewWindow")
}

func TestStart_SourceFailureIsFatal(t *testing.T) {
	m := newViewerMocks(t)
	m.elements.EXPECT().NewPipeline(mock.Anything, pipelineName).Return(m.pipeline, nil).Once()
	m.elements.EXPECT().Make(mock.Anything, "v4l2src").Return(nil, errNoFactory).Once()

	app := newTestApp(t, config.DefaultConfig(), m.elements)

	err := app.start(context.Background(), m.widgets, func() {})

	require.ErrorIs(t, err, usecase.ErrSourceUnavailable)
	assert.Nil(t, app.MainWindow())
}

func TestStart_LinkFailureIsFatal(t *testing.T) {
	m := newViewerMocks(t)
	m.elements.EXPECT().NewPipeline(mock.Anything, pipelineName).Return(m.pipeline, nil).Once()
	m.elements.EXPECT().Make(mock.Anything, "v4l2src").Return(m.source, nil).Once()
	m.elements.EXPECT().Make(mock.Anything, "gtkglsink").Return(nil, errNoFactory).Once()
	m.elements.EXPECT().Make(mock.Anything, "gtksink").Return(m.sink, nil).Once()
	m.source.EXPECT().Name().Return("v4l2src0").Maybe()
	m.source.EXPECT().FactoryName().Return("v4l2src").Maybe()
	m.sink.EXPECT().Name().Return("gtksink0").Maybe()
	m.sink.EXPECT().FactoryName().Return("gtksink").Maybe()
	m.sink.EXPECT().DisplayHandle().Return(m.display, nil).Once()
	m.pipeline.EXPECT().Add(m.source, m.sink).Return(nil).Once()
	m.pipeline.EXPECT().Link(m.source, m.sink).Return(errors.New("caps not compatible")).Once()

	app := newTestApp(t, config.DefaultConfig(), m.elements)

	err := app.start(context.Background(), m.widgets, func() {})

	require.ErrorIs(t, err, usecase.ErrPipelineLink)
	assert.Nil(t, app.MainWindow())
}

func TestNew_ValidatesDependencies(t *testing.T) {
	elements := portmocks.NewMockElementFactory(t)

	tests := []struct {
		name string
		deps *Dependencies
		want string
	}{
		{name: "ctx", deps: &Dependencies{Config: config.DefaultConfig(), Elements: elements}, want: "Ctx"},
		{name: "config", deps: &Dependencies{Ctx: context.Background(), Elements: elements}, want: "Config"},
		{name: "elements", deps: &Dependencies{Ctx: context.Background(), Config: config.DefaultConfig()}, want: "Elements"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.deps)

			var depErr DependencyError
			require.ErrorAs(t, err, &depErr)
			assert.Equal(t, tt.want, depErr.Name)
		})
	}
}

func TestNew_DefaultsUseCases(t *testing.T) {
	app := newTestApp(t, config.DefaultConfig(), portmocks.NewMockElementFactory(t))

	assert.NotNil(t, app.deps.CreateSourceUC)
	assert.NotNil(t, app.deps.SelectSinkUC)
	assert.NotNil(t, app.deps.BuildPipelineUC)
	assert.NotNil(t, app.deps.PlaybackUC)
}
