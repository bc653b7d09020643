package update

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Add      key.Binding
	Toggle   key.Binding
	Delete   key.Binding
	ClearDue key.Binding
	Reset    key.Binding
	Palette  key.Binding
	History  key.Binding
	Help     key.Binding
	Close    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "move up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "move down")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose plant")),
		Add:      key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "add task")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle done")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete task")),
		ClearDue: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear due")),
		Reset:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "new garden")),
		Palette:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
		History:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpKeyMap adapts a screen's bindings to bubbles/help.
type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) screenBindings() helpKeyMap {
	k := m.keys
	switch m.Screen {
	case ScreenSelect:
		short := []key.Binding{k.Up, k.Down, k.Select, k.Help, k.Quit}
		return helpKeyMap{short: short, full: [][]key.Binding{short}}
	default:
		tasks := []key.Binding{k.Add, k.Toggle, k.Delete, k.ClearDue, k.Up, k.Down}
		app := []key.Binding{k.Palette, k.History, k.Help, k.Reset, k.Close, k.Quit}
		return helpKeyMap{short: []key.Binding{k.Add, k.Toggle, k.Palette, k.Help, k.Quit}, full: [][]key.Binding{tasks, app}}
	}
}
