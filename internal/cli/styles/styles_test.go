package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/camview/internal/application/port"
	"github.com/bnema/camview/internal/application/usecase"
	"github.com/bnema/camview/internal/domain/build"
)

func TestNewTheme_UsesDarkPalette(t *testing.T) {
	theme := NewTheme()

	p := DefaultDarkPalette()
	assert.Equal(t, p.Accent, string(theme.Accent))
	assert.Equal(t, theme.Accent, theme.Success)
}

func TestMediaRenderer_Render(t *testing.T) {
	out := &usecase.CheckMediaOutput{
		Result: &port.MediaDiagnosticsResult{
			GStreamerAvailable: true,
			Factories: []port.FactoryStatus{
				{Role: "source", Factory: "v4l2src", Available: false},
				{Role: "gl sink", Factory: "gtkglsink", Available: true},
			},
			Devices:  []port.DeviceStatus{{Path: "/dev/video0", Accessible: true}},
			Warnings: []string{"v4l2src not found"},
		},
		SinkPath:  port.SinkAccelerated,
		CanRender: true,
	}

	text := NewMediaRenderer(NewTheme()).Render(out)

	assert.Contains(t, text, "v4l2src")
	assert.Contains(t, text, "gtkglsink")
	assert.Contains(t, text, "/dev/video0")
	assert.Contains(t, text, "OpenGL acceleration")
	assert.Contains(t, text, "v4l2src not found")
}

func TestMediaRenderer_SinkLine(t *testing.T) {
	r := NewMediaRenderer(NewTheme())

	tests := []struct {
		name string
		out  *usecase.CheckMediaOutput
		want string
	}{
		{
			name: "software",
			out:  &usecase.CheckMediaOutput{SinkPath: port.SinkSoftware, CanRender: true},
			want: "software fallback",
		},
		{
			name: "none",
			out:  &usecase.CheckMediaOutput{CanRender: false},
			want: "No usable display sink",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, r.sinkLine(tt.out), tt.want)
		})
	}
}

func TestVersionRenderer_Render(t *testing.T) {
	r := NewVersionRenderer(NewTheme())

	text := r.Render(build.Info{Version: "1.2.0", Commit: "abc123", GoVersion: "go1.25.3"})
	assert.Contains(t, text, "1.2.0")
	assert.Contains(t, text, "abc123")
	assert.Contains(t, text, "go1.25.3")
	assert.NotContains(t, text, "built")

	assert.Contains(t, r.Render(build.Info{}), "dev")
}
