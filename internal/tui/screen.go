package tui

import (
	"todoview/internal/pagination"
	"todoview/internal/todos"
)

// screen receives what the viewer pushes. The model copies it into the
// bubbles table on the next update.
type screen struct {
	rows     []todos.Record
	controls pagination.Controls
	warning  string
	dirty    bool
}

func (s *screen) RenderTable(rows []todos.Record) {
	s.rows = rows
	s.dirty = true
}

func (s *screen) RenderPagination(c pagination.Controls) { s.controls = c }

func (s *screen) ShowWarning(msg string) { s.warning = msg }
