package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Draw     key.Binding
	Move     key.Binding
	Delete   key.Binding
	Recolor  key.Binding
	Rename   key.Binding
	Line     key.Binding
	Rect     key.Binding
	Ellipse  key.Binding
	Group    key.Binding
	Snapshot key.Binding
	Widgets  key.Binding
	Color    key.Binding
	Name     key.Binding
	EditText key.Binding
	Copy     key.Binding
	Save     key.Binding
	Reload   key.Binding
	Trace    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Draw:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "draw")),
		Move:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
		Delete:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Recolor:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "recolor")),
		Rename:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "rename")),
		Line:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "line")),
		Rect:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "rect")),
		Ellipse:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "ellipse")),
		Group:    key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "group")),
		Snapshot: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "make group")),
		Widgets:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "widgets")),
		Color:    key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "set color")),
		Name:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "set name")),
		EditText: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "edit text")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Save:     key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "save")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Trace:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "trace")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Draw, k.Move, k.Delete, k.Recolor, k.Rename, k.Save, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Draw, k.Move, k.Delete, k.Recolor, k.Rename},
		{k.Line, k.Rect, k.Ellipse, k.Group, k.Snapshot},
		{k.Widgets, k.Color, k.Name, k.EditText, k.Trace},
		{k.Copy, k.Save, k.Reload, k.Help, k.Quit},
	}
}
