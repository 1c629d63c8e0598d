package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	QuitList  key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Blur      key.Binding
	Submit    key.Binding

	Up      key.Binding
	Down    key.Binding
	Swipe   key.Binding
	Delete  key.Binding
	NewTask key.Binding
	Search  key.Binding
	Help    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		QuitList:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab")),
		Blur:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "list")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),

		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Swipe:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "swipe away")),
		Delete:  key.NewBinding(key.WithKeys("d", "delete", "x"), key.WithHelp("d", "delete")),
		NewTask: key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "new task")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

// listHelp is the footer shown while the list has focus.
type listHelp keyMap

func (k listHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Swipe, k.Delete, k.NewTask, k.Search, k.Help, k.QuitList}
}

func (k listHelp) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// inputHelp is the footer shown while a text field has focus.
type inputHelp keyMap

func (k inputHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextFocus, k.Blur, k.Quit}
}

func (k inputHelp) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
