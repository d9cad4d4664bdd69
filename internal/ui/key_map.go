package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	search   key.Binding
	filter   key.Binding
	create   key.Binding
	edit     key.Binding
	del      key.Binding
	refresh  key.Binding
	prevPage key.Binding
	nextPage key.Binding
	first    key.Binding
	last     key.Binding
	fewer    key.Binding
	more     key.Binding
	enter    key.Binding
	back     key.Binding
	yes      key.Binding
	no       key.Binding
	toggle   key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		filter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter status")),
		create:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new task")),
		edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		del:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		prevPage: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		nextPage: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		first:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "first page")),
		last:     key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "last page")),
		fewer:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "fewer per page")),
		more:     key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "more per page")),
		enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		yes:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		no:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		toggle:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.search, k.create, k.toggle, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.search, k.filter},
		{k.create, k.edit, k.del, k.refresh},
		{k.prevPage, k.nextPage, k.first, k.last},
		{k.fewer, k.more, k.quit},
	}
}
