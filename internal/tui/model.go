// Package tui is the interactive todo table: a Bubble Tea program whose
// screen is fed by a viewer.Viewer and whose keys drive it.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todoview/internal/config"
	"todoview/internal/debounce"
	"todoview/internal/hooks"
	"todoview/internal/logging"
	"todoview/internal/pagination"
	"todoview/internal/render"
	"todoview/internal/todos"
	"todoview/internal/viewer"
)

type mode int

const (
	modeTable mode = iota
	modeSearch
	modeGoto
	modeDetail
)

const (
	idWidth        = 6
	completedWidth = 11
	// header, search, warning, pager, status and help lines
	chromeHeight = 9
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#B0B7C3"})
)

// Options wires a Model. Load is called once from Init.
type Options struct {
	Config config.Config
	Load   LoadFunc
	Hooks  *hooks.Env
}

type Model struct {
	cfg    config.Config
	load   LoadFunc
	ctx    context.Context
	cancel context.CancelFunc
	hooks  *hooks.Env

	view   *viewer.Viewer
	screen *screen

	table     table.Model
	search    textinput.Model
	gotoInput textinput.Model
	spin      spinner.Model
	vp        viewport.Model
	help      help.Model
	debounce  debounce.Debouncer

	mode     mode
	loading  bool
	status   string
	statusID int
	detail   *todos.Record
	width    int
	height   int
}

func New(opts Options) Model {
	cfg := opts.Config
	scr := &screen{}
	var vopts []viewer.Option
	if cfg.Sorting {
		vopts = append(vopts, viewer.WithSorting())
	}
	if cfg.Pagination {
		vopts = append(vopts, viewer.WithPagination(scr, cfg.PageSize, cfg.WindowSize))
	}

	tbl := table.New(table.WithFocused(true), table.WithHeight(cfg.PageSize+1))
	ts := table.DefaultStyles()
	ts.Header = ts.Header.Bold(true)
	tbl.SetStyles(ts)

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "filter by title..."
	search.CharLimit = 200

	gotoInput := textinput.New()
	gotoInput.Prompt = "page: "
	gotoInput.CharLimit = 9

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		cfg:       cfg,
		load:      opts.Load,
		ctx:       ctx,
		cancel:    cancel,
		hooks:     opts.Hooks,
		view:      viewer.New(scr, scr, vopts...),
		screen:    scr,
		table:     tbl,
		search:    search,
		gotoInput: gotoInput,
		spin:      sp,
		help:      help.New(),
		debounce:  debounce.New(cfg.DebounceDelay()),
		loading:   true,
	}
	m.syncColumns()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(loadCmd(m.ctx, m.load), m.spin.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.syncColumns()
		if h := m.height - chromeHeight; h > 2 {
			m.table.SetHeight(min(h, m.rowCapacity()))
		}
		if m.mode == modeDetail {
			m.openDetail()
		}
	case recordsLoadedMsg:
		m.loading = false
		m.view.SetDataset(msg.records)
		logging.Info("todos loaded", "count", len(msg.records))
		cmd = m.setStatus(fmt.Sprintf("%d todos loaded", len(msg.records)), 3*time.Second)
	case loadFailedMsg:
		m.loading = false
		m.view.FetchFailed(msg.err)
	case spinner.TickMsg:
		if m.loading {
			m.spin, cmd = m.spin.Update(msg)
		}
	case debounce.Msg:
		if m.debounce.Fired(msg) {
			m.view.SetSearchTerm(m.search.Value())
		}
	case exportDoneMsg:
		if msg.err != nil {
			logging.Error("export failed", "path", msg.path, "err", msg.err)
			cmd = m.setStatus("export failed: "+msg.err.Error(), 5*time.Second)
		} else {
			if abs, err := filepath.Abs(msg.path); err == nil {
				msg.path = abs
			}
			logging.Info("exported todos", "path", msg.path, "count", msg.count)
			cmd = m.setStatus(fmt.Sprintf("exported %d todos to %s", msg.count, msg.path), 5*time.Second)
		}
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
	case tea.KeyMsg:
		var quit bool
		cmd, quit = m.handleKey(msg)
		if quit {
			m.cancel()
			return m, tea.Quit
		}
	}
	m.syncRows()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.Type == tea.KeyCtrlC {
		return nil, true
	}
	switch m.mode {
	case modeSearch:
		return m.updateSearch(msg), false
	case modeGoto:
		return m.updateGoto(msg), false
	case modeDetail:
		if key.Matches(msg, keys.back) {
			m.mode = modeTable
			m.detail = nil
			return nil, false
		}
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return cmd, false
	}

	if m.loading {
		return nil, key.Matches(msg, keys.quit)
	}
	switch {
	case key.Matches(msg, keys.quit):
		return nil, true
	case key.Matches(msg, keys.search):
		m.mode = modeSearch
		return m.search.Focus(), false
	case key.Matches(msg, keys.clear):
		if m.search.Value() != "" || m.view.SearchTerm() != "" {
			m.debounce.Cancel()
			m.search.SetValue("")
			m.view.SetSearchTerm("")
		}
	case key.Matches(msg, keys.sortID):
		m.view.SetSort(todos.ColumnID)
	case key.Matches(msg, keys.sortTitle):
		m.view.SetSort(todos.ColumnTitle)
	case key.Matches(msg, keys.sortDone):
		m.view.SetSort(todos.ColumnCompleted)
	case key.Matches(msg, keys.prevPage):
		m.view.SetPage(m.view.Controls().PrevPage)
	case key.Matches(msg, keys.nextPage):
		m.view.SetPage(m.view.Controls().NextPage)
	case key.Matches(msg, keys.firstPage):
		m.view.SetPage(1)
	case key.Matches(msg, keys.lastPage):
		m.view.SetPage(m.view.Controls().TotalPages)
	case key.Matches(msg, keys.gotoPage):
		if m.view.Paginated() {
			m.mode = modeGoto
			m.gotoInput.SetValue("")
			return m.gotoInput.Focus(), false
		}
	case key.Matches(msg, keys.open):
		if r, ok := m.selected(); ok {
			m.detail = &r
			m.mode = modeDetail
			m.openDetail()
		}
	case key.Matches(msg, keys.export):
		records := m.view.ViewCollection()
		path := exportPath(m.cfg.ExportDir, time.Now())
		statusCmd := m.setStatus("exporting...", 10*time.Second)
		return tea.Batch(statusCmd, exportCmd(path, m.exportHeading(), records)), false
	case key.Matches(msg, keys.help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return cmd, false
	}
	return nil, false
}

// updateSearch edits the search field. Every edit restarts the debounce
// timer; enter applies the term at once, esc leaves the field as typed.
func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		m.debounce.Cancel()
		m.view.SetSearchTerm(m.search.Value())
		m.search.Blur()
		m.mode = modeTable
		return nil
	case tea.KeyEsc:
		m.search.Blur()
		m.mode = modeTable
		return nil
	}
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		return tea.Batch(cmd, m.debounce.Trigger())
	}
	return cmd
}

// updateGoto reads a page number. Input that is not a page number is
// dropped without a message.
func (m *Model) updateGoto(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		if page, err := pagination.ParsePage(m.gotoInput.Value()); err == nil {
			m.view.SetPage(page)
		} else {
			logging.Debug("ignored page input", "input", m.gotoInput.Value(), "err", err)
		}
		m.gotoInput.Blur()
		m.mode = modeTable
		return nil
	case tea.KeyEsc:
		m.gotoInput.Blur()
		m.mode = modeTable
		return nil
	}
	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return cmd
}

func (m *Model) setStatus(s string, ttl time.Duration) tea.Cmd {
	m.status = s
	m.statusID++
	return clearStatusCmd(m.statusID, ttl)
}

func (m Model) selected() (todos.Record, bool) {
	rows := m.screen.rows
	i := m.table.Cursor()
	if i < 0 || i >= len(rows) {
		return todos.Record{}, false
	}
	return rows[i], true
}

func (m *Model) openDetail() {
	if m.detail == nil {
		return
	}
	w, h := m.width, m.height-3
	if w <= 0 {
		w = 80
	}
	m.vp = viewport.New(w, max(3, h))
	m.vp.SetContent(renderMarkdown(detailMarkdown(*m.detail, m.hooks), w-2))
}

func (m Model) exportHeading() string {
	if term := m.view.SearchTerm(); term != "" {
		return fmt.Sprintf("Todos matching %q", term)
	}
	return "Todos"
}

func (m Model) titleWidth() int {
	w := m.width - idWidth - completedWidth - 8
	if w < 20 {
		w = 50
	}
	return w
}

func (m Model) rowCapacity() int {
	if m.view.Paginated() {
		return m.cfg.PageSize + 1
	}
	return max(len(m.screen.rows)+1, 2)
}

func (m *Model) syncColumns() {
	sorting := m.view.Sorting()
	spec := m.view.Sort()
	m.table.SetColumns([]table.Column{
		{Title: render.HeaderLabel(0, spec, sorting), Width: idWidth},
		{Title: render.HeaderLabel(1, spec, sorting), Width: m.titleWidth()},
		{Title: render.HeaderLabel(2, spec, sorting), Width: completedWidth},
	})
}

// syncRows copies freshly pushed rows into the table.
func (m *Model) syncRows() {
	if !m.screen.dirty {
		return
	}
	m.screen.dirty = false
	m.syncColumns()
	rows := make([]table.Row, 0, len(m.screen.rows))
	for _, r := range m.screen.rows {
		rows = append(rows, table.Row(render.Cells(r, m.hooks, m.titleWidth())))
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(0, len(rows)-1))
	}
}

func (m Model) View() string {
	if m.mode == modeDetail {
		return subtleStyle.Render("(esc) back  ↑/↓ scroll") + "\n\n" + m.vp.View()
	}
	if m.loading {
		return fmt.Sprintf("%s Loading todos...", m.spin.View())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Todos"))
	b.WriteString("  ")
	b.WriteString(subtleStyle.Render(render.StatsLine(m.view.ViewCollection())))
	if m.view.Sorting() {
		b.WriteString(subtleStyle.Render("  [sort:" + m.view.Sort().String() + "]"))
	}
	if len(m.hooks.Loaded()) > 0 {
		b.WriteString(subtleStyle.Render("  [hooks]"))
	}
	b.WriteString("\n")

	switch {
	case m.mode == modeSearch:
		b.WriteString(m.search.View() + "\n")
	case m.view.SearchTerm() != "":
		b.WriteString(subtleStyle.Render("filter: "+m.view.SearchTerm()) + "\n")
	}
	if w := render.Warning(m.screen.warning); w != "" {
		b.WriteString(w + "\n")
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")
	if line := render.PagerLine(m.screen.controls); line != "" && m.view.Paginated() {
		b.WriteString(line + "\n")
	}
	if m.mode == modeGoto {
		b.WriteString(m.gotoInput.View() + "\n")
	}
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(m.help.View(keys))
	return b.String()
}
