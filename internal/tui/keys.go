package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	Parent       key.Binding
	Fold         key.Binding
	FoldAll      key.Binding
	Mark         key.Binding
	Unmark       key.Binding
	UnmarkAll    key.Binding
	ToggleMark   key.Binding
	Filter       key.Binding
	Clear        key.Binding
	SortTitle    key.Binding
	SortDone     key.Binding
	Reverse      key.Binding
	MoveUp       key.Binding
	MoveDown     key.Binding
	Indent       key.Binding
	Outdent      key.Binding
	Add          key.Binding
	AddChild     key.Binding
	Edit         key.Binding
	Done         key.Binding
	Delete       key.Binding
	DeleteMarked key.Binding
	Copy         key.Binding
	Preview      key.Binding
	Save         key.Binding
	Reload       key.Binding
	Help         key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Top:          key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first")),
		Bottom:       key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last")),
		Parent:       key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "parent")),
		Fold:         key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "fold")),
		FoldAll:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-tab", "fold all")),
		Mark:         key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mark")),
		Unmark:       key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unmark")),
		UnmarkAll:    key.NewBinding(key.WithKeys("U"), key.WithHelp("U", "unmark all")),
		ToggleMark:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle mark")),
		Filter:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Clear:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
		SortTitle:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort by title")),
		SortDone:     key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "sort by done")),
		Reverse:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reverse")),
		MoveUp:       key.NewBinding(key.WithKeys("alt+up", "shift+up", "ctrl+k"), key.WithHelp("alt+↑", "move up")),
		MoveDown:     key.NewBinding(key.WithKeys("alt+down", "shift+down", "ctrl+j"), key.WithHelp("alt+↓", "move down")),
		Indent:       key.NewBinding(key.WithKeys(">", "alt+right"), key.WithHelp(">", "indent")),
		Outdent:      key.NewBinding(key.WithKeys("<", "alt+left"), key.WithHelp("<", "outdent")),
		Add:          key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		AddChild:     key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "add child")),
		Edit:         key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit title")),
		Done:         key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "toggle done")),
		Delete:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		DeleteMarked: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete marked")),
		Copy:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Preview:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),
		Save:         key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("C-s", "save")),
		Reload:       key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("C-r", "reload")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:    key.NewBinding(key.WithKeys("Q", "ctrl+c"), key.WithHelp("Q", "quit without saving")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Fold, k.Mark, k.Filter, k.Add, k.Save, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.Parent, k.Fold, k.FoldAll},
		{k.Mark, k.Unmark, k.UnmarkAll, k.ToggleMark, k.Filter, k.Clear},
		{k.SortTitle, k.SortDone, k.Reverse, k.MoveUp, k.MoveDown, k.Indent, k.Outdent},
		{k.Add, k.AddChild, k.Edit, k.Done, k.Delete, k.DeleteMarked, k.Copy},
		{k.Preview, k.Save, k.Reload, k.Help, k.Quit, k.ForceQuit},
	}
}
