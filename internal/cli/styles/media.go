package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/camview/internal/application/port"
	"github.com/bnema/camview/internal/application/usecase"
)

const separatorWidth = 40

// MediaRenderer renders the output of `camview media`.
type MediaRenderer struct {
	theme *Theme
}

// NewMediaRenderer creates a MediaRenderer.
func NewMediaRenderer(theme *Theme) *MediaRenderer {
	return &MediaRenderer{theme: theme}
}

// Render formats a media check result.
func (r *MediaRenderer) Render(out *usecase.CheckMediaOutput) string {
	t := r.theme
	var b strings.Builder

	b.WriteString(t.Highlight.Render(IconVideo + "  Media elements"))
	b.WriteString("\n")
	b.WriteString(t.Subtle.Render(strings.Repeat("─", separatorWidth)))
	b.WriteString("\n")

	rows := make([]string, 0, len(out.Result.Factories))
	for _, f := range out.Result.Factories {
		rows = append(rows, r.factoryRow(f))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n")

	for _, d := range out.Result.Devices {
		b.WriteString(r.deviceRow(d))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(r.sinkLine(out))
	b.WriteString("\n")

	if len(out.Result.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range out.Result.Warnings {
			b.WriteString(t.WarningStyle.Render(IconWarning + " " + w))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (r *MediaRenderer) factoryRow(f port.FactoryStatus) string {
	t := r.theme
	status := t.SuccessStyle.Render(IconCheck)
	if !f.Available {
		status = t.ErrorStyle.Render(IconX)
	}
	role := t.Subtle.Width(14).Render(f.Role)
	return fmt.Sprintf("%s %s %s", status, role, t.Title.Render(f.Factory))
}

func (r *MediaRenderer) deviceRow(d port.DeviceStatus) string {
	t := r.theme
	status := t.SuccessStyle.Render(IconCheck)
	if !d.Accessible {
		status = t.ErrorStyle.Render(IconX)
	}
	return fmt.Sprintf("%s %s %s", status, t.Subtle.Width(14).Render("camera"), t.Title.Render(d.Path))
}

func (r *MediaRenderer) sinkLine(out *usecase.CheckMediaOutput) string {
	t := r.theme
	if !out.CanRender {
		return t.ErrorStyle.Render("No usable display sink; the viewer will not start")
	}
	if out.SinkPath == port.SinkAccelerated {
		return t.SuccessStyle.Render("Sink path: OpenGL acceleration")
	}
	return t.WarningStyle.Render("Sink path: software fallback")
}
