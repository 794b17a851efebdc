// Package render turns todo rows and pagination controls into text.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"todoview/internal/hooks"
	"todoview/internal/pagination"
	"todoview/internal/todos"
)

var Headers = []string{"ID", "Title", "Completed"}

// Columns maps table columns to sortable record fields.
var Columns = []string{todos.ColumnID, todos.ColumnTitle, todos.ColumnCompleted}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Cells returns the display cells of r. Titles are flattened to one line and
// cut to titleWidth runes when titleWidth > 0; a renderTodoRow hook may
// override the title and completed cells.
func Cells(r todos.Record, env *hooks.Env, titleWidth int) []string {
	title := r.Title
	completed := r.CompletedText()
	if row, ok := env.RenderRow(r); ok {
		if row.Title != "" {
			title = row.Title
		}
		if row.Completed != "" {
			completed = row.Completed
		}
	}
	title, _ = todos.CleanOneLine(title, titleWidth)
	return []string{strconv.Itoa(r.ID), title, completed}
}

// HeaderLabel decorates the header of the sorted column with an arrow.
func HeaderLabel(col int, spec todos.SortSpec, sorting bool) string {
	label := Headers[col]
	if sorting && Columns[col] == spec.Column {
		if spec.Ascending {
			return label + " ▲"
		}
		return label + " ▼"
	}
	return label
}

// PagerLine draws the pagination controls on one line, e.g.
// "« ‹ 1 [2] 3 › »  page 2/3". Hidden controls render as "".
func PagerLine(c pagination.Controls) string {
	if c.Hidden {
		return ""
	}
	var parts []string
	parts = append(parts, button("«", c.FirstDisabled), button("‹", c.PrevDisabled))
	if len(c.Pages) > 0 && c.Pages[0] > 1 {
		parts = append(parts, "…")
	}
	for _, p := range c.Pages {
		if c.IsCurrent(p) {
			parts = append(parts, "["+strconv.Itoa(p)+"]")
		} else {
			parts = append(parts, strconv.Itoa(p))
		}
	}
	if len(c.Pages) > 0 && c.Pages[len(c.Pages)-1] < c.TotalPages {
		parts = append(parts, "…")
	}
	parts = append(parts, button("›", c.NextDisabled), button("»", c.LastDisabled))
	return strings.Join(parts, " ") + fmt.Sprintf("  page %d/%d", c.CurrentPage, c.TotalPages)
}

func button(label string, disabled bool) string {
	if disabled {
		return dimStyle.Render(label)
	}
	return label
}

func StatsLine(records []todos.Record) string {
	st := todos.Summarize(records)
	return fmt.Sprintf("%d todos · %d done · %d pending", st.Total(), st.Done, st.Pending)
}

func Warning(msg string) string {
	if msg == "" {
		return ""
	}
	return warningStyle.Render("! " + msg)
}

// Plain collects what a Viewer pushes and prints it on demand. It
// implements viewer.TableView, viewer.PagerView and viewer.WarningView.
type Plain struct {
	Hooks      *hooks.Env
	TitleWidth int
	Sort       todos.SortSpec
	Sorting    bool

	rows     []todos.Record
	controls pagination.Controls
	warning  string
}

func (p *Plain) RenderTable(rows []todos.Record)        { p.rows = rows }
func (p *Plain) RenderPagination(c pagination.Controls) { p.controls = c }
func (p *Plain) ShowWarning(msg string)                 { p.warning = msg }

func (p *Plain) Table() string {
	headers := make([]string, len(Headers))
	for i := range Headers {
		headers[i] = HeaderLabel(i, p.Sort, p.Sorting)
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 0 {
				return cellStyle.Align(lipgloss.Right)
			}
			return cellStyle
		})
	for _, r := range p.rows {
		t.Row(Cells(r, p.Hooks, p.TitleWidth)...)
	}
	return t.String()
}

func (p *Plain) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	if p.warning != "" {
		b.WriteString(Warning(p.warning))
		b.WriteString("\n")
	}
	b.WriteString(p.Table())
	b.WriteString("\n")
	if line := PagerLine(p.controls); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
