package tui

import (
	"github.com/charmbracelet/glamour"

	"todoview/internal/hooks"
	"todoview/internal/todos"
)

// detailMarkdown is the record description plus any renderTodoDetail output.
func detailMarkdown(r todos.Record, env *hooks.Env) string {
	md := todos.DetailMarkdown(r)
	if extra, ok := env.RenderDetail(r); ok {
		md += "\n## Notes\n\n" + extra + "\n"
	}
	return md
}

// renderMarkdown falls back to the raw text when glamour fails.
func renderMarkdown(md string, width int) string {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
