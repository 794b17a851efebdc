// Package viewer coordinates the todo dataset, search term, sort order and
// page, and pushes the result to view sinks after every change.
package viewer

import (
	"todoview/internal/logging"
	"todoview/internal/pagination"
	"todoview/internal/todos"
)

// Warning texts shown by the warning sink.
const (
	WarnNoResults   = "No search results found."
	WarnFetchFailed = "Failed to fetch todos."
)

// TableView receives the rows of the visible page.
type TableView interface {
	RenderTable(rows []todos.Record)
}

// PagerView receives the pagination controls.
type PagerView interface {
	RenderPagination(c pagination.Controls)
}

// WarningView shows a single warning line; "" clears it.
type WarningView interface {
	ShowWarning(msg string)
}

// Phase is the coarse state of a Viewer.
type Phase int

const (
	Idle Phase = iota
	Loaded
	Filtered
	Error
)

func (p Phase) String() string {
	switch p {
	case Loaded:
		return "loaded"
	case Filtered:
		return "filtered"
	case Error:
		return "error"
	}
	return "idle"
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithSorting enables SetSort and the sort step of the pipeline.
func WithSorting() Option {
	return func(v *Viewer) { v.sorting = true }
}

// WithPagination enables paging. Without it every row of the view
// collection is rendered.
func WithPagination(pager PagerView, pageSize, windowSize int) Option {
	return func(v *Viewer) {
		v.pager = pager
		v.state = pagination.NewState(pageSize, windowSize, v.notifyPager)
	}
}

// Viewer owns the canonical dataset and derives the view collection from it.
// It is not safe for concurrent use; the TUI calls it from its update loop.
type Viewer struct {
	table TableView
	warn  WarningView
	pager PagerView
	state *pagination.State

	sorting bool
	spec    todos.SortSpec
	term    string

	dataset []todos.Record
	view    []todos.Record
	rows    []todos.Record

	loaded  bool
	failed  bool
	warning string
}

// New builds a Viewer in the Idle phase. Nil sinks are allowed.
func New(table TableView, warn WarningView, opts ...Option) *Viewer {
	v := &Viewer{table: table, warn: warn, spec: todos.DefaultSort()}
	for _, o := range opts {
		o(v)
	}
	if v.state != nil {
		v.notifyPager(v.state.Controls())
	}
	return v
}

// SetDataset replaces the canonical dataset and shows page 1.
func (v *Viewer) SetDataset(records []todos.Record) {
	v.dataset = records
	v.loaded = true
	v.refresh(1)
}

// SetSearchTerm stores the lowercased term and shows page 1.
func (v *Viewer) SetSearchTerm(raw string) {
	v.term = todos.NormalizeTerm(raw)
	v.refresh(1)
}

// SetSort applies a header click on column. It keeps the current page.
func (v *Viewer) SetSort(column string) {
	if !v.sorting {
		return
	}
	v.spec = v.spec.Toggle(column)
	v.refresh(v.CurrentPage())
}

// SetPage moves to page, clamped to the available pages.
func (v *Viewer) SetPage(page int) {
	if v.state == nil {
		return
	}
	v.refresh(page)
}

// FetchFailed records a failed load. The dataset stays empty and the
// failure warning stays up for the rest of the session.
func (v *Viewer) FetchFailed(err error) {
	logging.Error("fetch todos", "err", err)
	v.failed = true
	v.dataset = nil
	v.refresh(1)
}

func (v *Viewer) refresh(target int) {
	filtered := todos.Filter(v.dataset, v.term)
	if v.sorting {
		filtered = todos.Sort(filtered, v.spec)
	}
	v.view = filtered

	if v.state != nil {
		total := pagination.TotalPages(len(v.view), v.state.PageSize())
		target = min(max(target, 1), max(total, 1))
		v.state.Update(len(v.view), target)
		lo, hi := v.state.Bounds(len(v.view))
		v.rows = v.view[lo:hi]
	} else {
		v.rows = v.view
	}

	if v.table != nil {
		v.table.RenderTable(v.rows)
	}
	v.setWarning(v.currentWarning())
	logging.Debug("view refreshed", "term", v.term, "sort", v.spec.String(), "rows", len(v.rows), "matches", len(v.view))
}

func (v *Viewer) currentWarning() string {
	switch {
	case v.failed:
		return WarnFetchFailed
	case v.term != "" && len(v.view) == 0:
		return WarnNoResults
	}
	return ""
}

func (v *Viewer) setWarning(msg string) {
	if msg == v.warning {
		return
	}
	v.warning = msg
	if v.warn != nil {
		v.warn.ShowWarning(msg)
	}
}

func (v *Viewer) notifyPager(c pagination.Controls) {
	if v.pager != nil {
		v.pager.RenderPagination(c)
	}
}

// Phase reports the coarse state. A failed fetch or a search without
// matches is Error.
func (v *Viewer) Phase() Phase {
	switch {
	case v.failed:
		return Error
	case !v.loaded:
		return Idle
	case v.term != "" && len(v.view) == 0:
		return Error
	case v.term != "":
		return Filtered
	}
	return Loaded
}

// ViewCollection is the filtered and sorted collection, before paging.
func (v *Viewer) ViewCollection() []todos.Record { return v.view }

// PageRows is what the table sink last received.
func (v *Viewer) PageRows() []todos.Record { return v.rows }

func (v *Viewer) SearchTerm() string   { return v.term }
func (v *Viewer) Sort() todos.SortSpec { return v.spec }
func (v *Viewer) Warning() string      { return v.warning }
func (v *Viewer) Sorting() bool        { return v.sorting }
func (v *Viewer) Paginated() bool      { return v.state != nil }

// CurrentPage is 1 when pagination is disabled.
func (v *Viewer) CurrentPage() int {
	if v.state == nil {
		return 1
	}
	return v.state.CurrentPage()
}

// Controls returns the last computed pagination controls. Without
// pagination the controls are Hidden.
func (v *Viewer) Controls() pagination.Controls {
	if v.state == nil {
		return pagination.Controls{CurrentPage: 1, Hidden: true}
	}
	return v.state.Controls()
}
