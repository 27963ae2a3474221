package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	newItem  key.Binding
	edit     key.Binding
	delete   key.Binding
	preview  key.Binding
	write    key.Binding
	copy     key.Binding
	template key.Binding
	yes      key.Binding
	no       key.Binding
	save     key.Binding
	discard  key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e", "enter")),
	delete:   key.NewBinding(key.WithKeys("d")),
	preview:  key.NewBinding(key.WithKeys("p")),
	write:    key.NewBinding(key.WithKeys("w", "ctrl+s")),
	copy:     key.NewBinding(key.WithKeys("c")),
	template: key.NewBinding(key.WithKeys("t")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
	save:     key.NewBinding(key.WithKeys("s")),
	discard:  key.NewBinding(key.WithKeys("d")),
}
