// Package tui provides the terminal user interface for TodayView.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"todayview/internal/tui/store"
)

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains all key bindings for the application.
type Keymap struct {
	// Navigation
	Up     Key
	Down   Key
	Top    Key
	Bottom Key

	// Actions
	Select  Key
	Back    Key
	Quit    Key
	Help    Key
	Refresh Key

	// Task actions
	AddTask      Key
	EditTask     Key
	DeleteTask   Key
	CompleteTask Key
	UndoComplete Key
	ToggleSelect Key
	Schedule     Key
	Yank         Key
	MoveDown     Key
	MoveUp       Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Up:     Key{Key: "k", Help: "up"},
		Down:   Key{Key: "j", Help: "down"},
		Top:    Key{Key: "g", Help: "top"},
		Bottom: Key{Key: "G", Help: "bottom"},

		Select:  Key{Key: "enter", Help: "open details"},
		Back:    Key{Key: "esc", Help: "back/close"},
		Quit:    Key{Key: "q", Help: "quit"},
		Help:    Key{Key: "?", Help: "help"},
		Refresh: Key{Key: "r", Help: "refresh"},

		AddTask:      Key{Key: "a", Help: "quick add"},
		EditTask:     Key{Key: "e", Help: "edit details"},
		DeleteTask:   Key{Key: "d", Help: "delete"},
		CompleteTask: Key{Key: "x", Help: "complete"},
		UndoComplete: Key{Key: "u", Help: "undo complete"},
		ToggleSelect: Key{Key: "space", Help: "toggle select"},
		Schedule:     Key{Key: "s", Help: "schedule"},
		Yank:         Key{Key: "y", Help: "yank to clipboard"},
		MoveDown:     Key{Key: "J", Help: "move task down"},
		MoveUp:       Key{Key: "K", Help: "move task up"},
	}
}

// StoreCommand maps a key event to a store dispatcher command, CmdNone when
// the key is not one of the dispatcher's commands.
func (k Keymap) StoreCommand(msg tea.KeyMsg) store.Command {
	switch msg.String() {
	case k.Down.Key, "down":
		return store.CmdNextItem
	case k.Up.Key, "up":
		return store.CmdPrevItem
	case k.EditTask.Key, k.Select.Key:
		return store.CmdEdit
	case k.AddTask.Key:
		return store.CmdFocusQuickInput
	case k.Back.Key:
		return store.CmdCloseModal
	}
	return store.CmdNone
}

// HelpItems returns the keybindings grouped for the help overlay.
func (k Keymap) HelpItems() [][]string {
	return [][]string{
		{k.Down.Key + "/" + k.Up.Key, "move focus down/up"},
		{k.Top.Key + "/" + k.Bottom.Key, "jump to first/last"},
		{k.Select.Key, k.Select.Help},
		{k.AddTask.Key, k.AddTask.Help},
		{k.CompleteTask.Key, k.CompleteTask.Help},
		{k.UndoComplete.Key, k.UndoComplete.Help},
		{k.DeleteTask.Key, k.DeleteTask.Help},
		{k.ToggleSelect.Key, k.ToggleSelect.Help},
		{k.Schedule.Key, k.Schedule.Help},
		{k.Yank.Key, k.Yank.Help},
		{k.MoveDown.Key + "/" + k.MoveUp.Key, "reorder task down/up"},
		{k.Refresh.Key, k.Refresh.Help},
		{k.Back.Key, k.Back.Help},
		{k.Quit.Key, k.Quit.Help},
	}
}
