package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"todoview/internal/config"
	"todoview/internal/todos"
)

// LoadFunc fetches the dataset once.
type LoadFunc func(ctx context.Context) ([]todos.Record, error)

type recordsLoadedMsg struct{ records []todos.Record }

type loadFailedMsg struct{ err error }

type exportDoneMsg struct {
	path  string
	count int
	err   error
}

type clearStatusMsg struct{ id int }

func loadCmd(ctx context.Context, load LoadFunc) tea.Cmd {
	return func() tea.Msg {
		if load == nil {
			return loadFailedMsg{err: fmt.Errorf("no todo source configured")}
		}
		records, err := load(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return recordsLoadedMsg{records: records}
	}
}

// exportPath names a timestamped markdown file under dir ("." when empty).
func exportPath(dir string, at time.Time) string {
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, fmt.Sprintf("todos-%s.md", at.Format("20060102-150405")))
}

func exportCmd(path, heading string, records []todos.Record) tea.Cmd {
	return func() tea.Msg {
		if err := config.EnsureDir(filepath.Dir(path)); err != nil {
			return exportDoneMsg{path: path, err: err}
		}
		err := todos.ExportMarkdown(path, heading, records)
		return exportDoneMsg{path: path, count: len(records), err: err}
	}
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg { return clearStatusMsg{id: id} })
}
