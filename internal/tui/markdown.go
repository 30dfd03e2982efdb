package tui

import "github.com/charmbracelet/glamour"

// renderMarkdown renders task notes for the detail modal. Falls back to the
// raw text when the renderer cannot be built (e.g. terminal detection fails).
func renderMarkdown(src string, width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return src
	}
	out, err := r.Render(src)
	if err != nil {
		return src
	}
	return out
}
