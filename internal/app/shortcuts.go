package app

import (
	"unicode"

	"golang.org/x/mobile/event/key"
)

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// Binding pairs an action name with its keys, for help output.
type Binding struct {
	Action string
	Keys   []KeyShortcut
	Help   string
}

// Bindings lists the window's key bindings in display order.
func Bindings() []Binding {
	return []Binding{
		{"save", []KeyShortcut{{Rune: 's'}}, "save the drawing as PNG in save_dir"},
		{"pdf", []KeyShortcut{{Rune: 'p'}}, "save the drawing as PDF in save_dir"},
		{"copy", []KeyShortcut{{Rune: 'c'}}, "copy the drawing to the clipboard"},
		{"clear", []KeyShortcut{{Rune: 'x'}}, "erase all ink"},
		{"quit", []KeyShortcut{{Rune: 'q'}, {Code: key.CodeEscape}}, "close the window"},
	}
}

func (b Binding) KeyboardShortcuts() []KeyShortcut { return b.Keys }

// String renders a shortcut such as "Ctrl+S" or "Esc".
func (k KeyShortcut) String() string {
	s := ""
	if k.Modifiers&key.ModControl != 0 {
		s += "Ctrl+"
	}
	if k.Modifiers&key.ModAlt != 0 {
		s += "Alt+"
	}
	if k.Modifiers&key.ModShift != 0 {
		s += "Shift+"
	}
	switch {
	case k.Rune > 0:
		s += string(unicode.ToUpper(k.Rune))
	case k.Code == key.CodeEscape:
		s += "Esc"
	default:
		s += k.Code.String()
	}
	return s
}

func shortcutFor(e key.Event) KeyShortcut {
	// Shift changes the rune itself; ignore it so 'S' and 's' match.
	mods := e.Modifiers &^ key.ModShift
	r := unicode.ToLower(e.Rune)
	if r > 0 {
		return KeyShortcut{Rune: r, Modifiers: mods}
	}
	return KeyShortcut{Code: e.Code, Modifiers: mods}
}
