package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings for both focus modes. inputFocused selects
// which set the help view shows.
type keyMap struct {
	Submit    key.Binding
	SwitchTab key.Binding
	Blur      key.Binding
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	Add       key.Binding
	Clear     key.Binding
	All       key.Binding
	Active    key.Binding
	Completed key.Binding
	Cycle     key.Binding
	Edit      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	inputFocused bool
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task")),
		SwitchTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
		Blur:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "to list")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "toggle")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add typed text")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear completed")),
		All:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		Active:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		Completed: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		Cycle:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "next filter")),
		Edit:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "type")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	if k.inputFocused {
		return []key.Binding{k.Submit, k.SwitchTab, k.ForceQuit}
	}
	return []key.Binding{k.Toggle, k.Delete, k.Cycle, k.SwitchTab, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	if k.inputFocused {
		return [][]key.Binding{
			{k.Submit, k.SwitchTab, k.Blur},
			{k.ForceQuit},
		}
	}
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Delete},
		{k.Add, k.Clear, k.Edit, k.SwitchTab},
		{k.All, k.Active, k.Completed, k.Cycle},
		{k.Help, k.Quit},
	}
}
