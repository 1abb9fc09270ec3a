package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/camview/internal/application/port"
	"github.com/bnema/camview/internal/application/port/mocks"
)

func TestCheckMedia_MissingGStreamer(t *testing.T) {
	ctx, _ := captureContext()
	diag := mocks.NewMockMediaDiagnostics(t)

	diag.EXPECT().RunDiagnostics(mock.Anything, mock.Anything).
		Return(&port.MediaDiagnosticsResult{GStreamerAvailable: false}).Once()

	out, err := NewCheckMediaUseCase(diag).Execute(ctx, CheckMediaInput{})

	require.ErrorIs(t, err, ErrGStreamerMissing)
	assert.Nil(t, out)
}

func TestCheckMedia_NilResult(t *testing.T) {
	ctx, _ := captureContext()
	diag := mocks.NewMockMediaDiagnostics(t)

	diag.EXPECT().RunDiagnostics(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := NewCheckMediaUseCase(diag).Execute(ctx, CheckMediaInput{})

	require.ErrorIs(t, err, ErrGStreamerMissing)
}

func TestCheckMedia_SinkPath(t *testing.T) {
	tests := []struct {
		name      string
		result    port.MediaDiagnosticsResult
		wantPath  port.SinkKind
		canRender bool
	}{
		{
			name:      "accelerated preferred",
			result:    port.MediaDiagnosticsResult{GStreamerAvailable: true, GLSinkAvailable: true, AcceleratedSink: true, SoftwareSink: true},
			wantPath:  port.SinkAccelerated,
			canRender: true,
		},
		{
			name:      "software only",
			result:    port.MediaDiagnosticsResult{GStreamerAvailable: true, SoftwareSink: true},
			wantPath:  port.SinkSoftware,
			canRender: true,
		},
		{
			name:      "gl sink without gl bin is fatal even with a software sink",
			result:    port.MediaDiagnosticsResult{GStreamerAvailable: true, GLSinkAvailable: true, SoftwareSink: true},
			wantPath:  port.SinkAccelerated,
			canRender: false,
		},
		{
			name:      "nothing to render with",
			result:    port.MediaDiagnosticsResult{GStreamerAvailable: true},
			wantPath:  port.SinkSoftware,
			canRender: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := captureContext()
			diag := mocks.NewMockMediaDiagnostics(t)
			result := tt.result
			diag.EXPECT().RunDiagnostics(mock.Anything, mock.Anything).Return(&result).Once()

			out, err := NewCheckMediaUseCase(diag).Execute(ctx, CheckMediaInput{})

			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, out.SinkPath)
			assert.Equal(t, tt.canRender, out.CanRender)
			assert.Same(t, &result, out.Result)
		})
	}
}

func TestCheckMedia_LogsWarningsWhenAsked(t *testing.T) {
	names := port.FactoryNames{Source: "v4l2src", Sinks: defaultSinks}
	result := &port.MediaDiagnosticsResult{
		GStreamerAvailable: true,
		SoftwareSink:       true,
		Warnings:           []string{"gtkglsink not found"},
	}

	ctx, buf := captureContext()
	diag := mocks.NewMockMediaDiagnostics(t)
	diag.EXPECT().RunDiagnostics(mock.Anything, names).Return(result).Twice()

	uc := NewCheckMediaUseCase(diag)

	_, err := uc.Execute(ctx, CheckMediaInput{Names: names})
	require.NoError(t, err)
	assert.Empty(t, messagesAt(t, buf, "warn"))

	_, err = uc.Execute(ctx, CheckMediaInput{Names: names, ShowDiagnostics: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"gtkglsink not found"}, messagesAt(t, buf, "warn"))
}

func TestErrGStreamerMissing_NamesPluginPackages(t *testing.T) {
	msg := ErrGStreamerMissing.Error()

	assert.Contains(t, msg, "gst-plugins-good (gtksink, gtkglsink)")
	assert.Contains(t, msg, "gst-plugins-base (glsinkbin)")
	assert.NotContains(t, msg, "gst-plugins-bad")
}
