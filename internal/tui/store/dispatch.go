package store

// Command is a keyboard command the dispatcher understands. The mapping from
// raw key events to commands lives with the host's keymap; the dispatcher
// only deals in commands.
type Command int

const (
	CmdNone Command = iota
	CmdNextItem
	CmdPrevItem
	CmdEdit
	CmdFocusQuickInput
	CmdCloseModal
)

// Dispatcher translates commands into store mutations. It is deliberately
// stateless: all state lives in the store, so the dispatcher needs no
// lifecycle beyond being handed a store at construction.
type Dispatcher[T Identifiable] struct {
	store *Store[T]
}

// NewDispatcher creates a Dispatcher bound to st.
func NewDispatcher[T Identifiable](st *Store[T]) *Dispatcher[T] {
	return &Dispatcher[T]{store: st}
}

// Dispatch applies cmd against the current snapshot, using display for
// navigation index arithmetic. inputActive reports whether an editable text
// input currently has focus; while an input or a modal is active every
// command except CmdCloseModal is ignored without side effects.
//
// Reports whether the command was handled.
func (d *Dispatcher[T]) Dispatch(cmd Command, display []DisplayItem[T], inputActive bool) bool {
	snap := d.store.Snapshot()

	if inputActive || snap.ModalOpen() {
		if cmd != CmdCloseModal {
			return false
		}
		if snap.SecondaryOpen() {
			d.store.CloseSecondaryTarget()
			return true
		}
		if snap.DetailOpen() {
			d.store.CloseDetailTarget()
			return true
		}
		return false
	}

	switch cmd {
	case CmdNextItem:
		if len(display) == 0 {
			return false
		}
		idx := displayIndexOf(display, snap.FocusedID)
		switch {
		case idx < 0:
			d.store.SetFocusedID(display[0].Item.ItemID())
		case idx < len(display)-1:
			d.store.SetFocusedID(display[idx+1].Item.ItemID())
		}
		return true

	case CmdPrevItem:
		if len(display) == 0 {
			return false
		}
		idx := displayIndexOf(display, snap.FocusedID)
		switch {
		case idx < 0:
			d.store.SetFocusedID(display[len(display)-1].Item.ItemID())
		case idx > 0:
			d.store.SetFocusedID(display[idx-1].Item.ItemID())
		}
		return true

	case CmdEdit:
		if snap.FocusedID != "" {
			d.store.OpenDetailTarget(snap.FocusedID)
			return true
		}
		if len(display) > 0 {
			d.store.OpenDetailTarget(display[0].Item.ItemID())
			return true
		}
		return false

	case CmdFocusQuickInput:
		// Unconditional: the flag was reset on the previous blur or submit,
		// so this is always an observable false→true edge.
		d.store.SetQuickInputWantsFocus(true)
		return true
	}

	return false
}

// displayIndexOf returns the position of id in the display list, or -1.
func displayIndexOf[T Identifiable](display []DisplayItem[T], id string) int {
	if id == "" {
		return -1
	}
	for i := range display {
		if display[i].Item.ItemID() == id {
			return i
		}
	}
	return -1
}
