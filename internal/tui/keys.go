package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Quit      key.Binding
	Interrupt key.Binding
	NextTab   key.Binding
	Tab1      key.Binding
	Tab2      key.Binding

	Draw    key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Open    key.Binding
	Retry   key.Binding
	Pick1   key.Binding
	Pick2   key.Binding
	Pick3   key.Binding
	Choose  key.Binding
	Regen   key.Binding
	Paint   key.Binding
	Erase   key.Binding
	Color   key.Binding
	Clear   key.Binding
	Done    key.Binding
	Post    key.Binding
	Discard key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Tab1:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "draw")),
		Tab2:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "how to play")),

		Draw:    key.NewBinding(key.WithKeys("enter", "d"), key.WithHelp("enter", "DRAW WORD")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "right")),
		Open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open post")),
		Retry:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Pick1:   key.NewBinding(key.WithKeys("1")),
		Pick2:   key.NewBinding(key.WithKeys("2")),
		Pick3:   key.NewBinding(key.WithKeys("3")),
		Choose:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick")),
		Regen:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new words")),
		Paint:   key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "paint")),
		Erase:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "erase")),
		Color:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "color")),
		Clear:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		Done:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Post:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "POST")),
		Discard: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard")),
	}
}

// hints renders "[key] desc" pairs for a footer line.
func hints(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return strings.Join(parts, "  ")
}
