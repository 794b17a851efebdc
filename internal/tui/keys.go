package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	search    key.Binding
	clear     key.Binding
	sortID    key.Binding
	sortTitle key.Binding
	sortDone  key.Binding
	prevPage  key.Binding
	nextPage  key.Binding
	firstPage key.Binding
	lastPage  key.Binding
	gotoPage  key.Binding
	open      key.Binding
	back      key.Binding
	export    key.Binding
	help      key.Binding
	quit      key.Binding
}

func newKeymap() keymap {
	return keymap{
		search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		sortID:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "sort id")),
		sortTitle: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "sort title")),
		sortDone:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "sort completed")),
		prevPage:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		nextPage:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		firstPage: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first page")),
		lastPage:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last page")),
		gotoPage:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "go to page")),
		open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		back:      key.NewBinding(key.WithKeys("esc", "q", "backspace"), key.WithHelp("esc", "back")),
		export:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var keys = newKeymap()

// ShortHelp and FullHelp satisfy help.KeyMap.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.search, k.prevPage, k.nextPage, k.open, k.help, k.quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.search, k.clear, k.open, k.export},
		{k.sortID, k.sortTitle, k.sortDone},
		{k.prevPage, k.nextPage, k.firstPage, k.lastPage, k.gotoPage},
		{k.help, k.quit},
	}
}
