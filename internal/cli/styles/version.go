package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/camview/internal/domain/build"
)

// VersionRenderer renders build information.
type VersionRenderer struct {
	theme *Theme
}

// NewVersionRenderer creates a VersionRenderer.
func NewVersionRenderer(theme *Theme) *VersionRenderer {
	return &VersionRenderer{theme: theme}
}

// Render formats build info as a bordered box.
func (r *VersionRenderer) Render(info build.Info) string {
	t := r.theme
	version := info.Version
	if version == "" {
		version = "dev"
	}

	lines := []string{
		t.Highlight.Render(IconVideo + "  camview"),
		t.Subtle.Render(IconVersion+" version ") + t.Title.Render(version),
	}
	if info.Commit != "" {
		lines = append(lines, t.Subtle.Render("  commit  ")+info.Commit)
	}
	if info.BuildDate != "" {
		lines = append(lines, t.Subtle.Render("  built   ")+info.BuildDate)
	}
	if info.GoVersion != "" {
		lines = append(lines, t.Subtle.Render(IconGo+" go      ")+info.GoVersion)
	}
	lines = append(lines, t.Subtle.Render(build.RepoURL()))

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
