// Package store holds the view state for a task list view: the mirrored
// item collection, keyboard focus, multi-selection, and modal targets.
//
// A Store is constructed per view instance and injected into the projector
// and dispatcher; it owns the only mutable copy of the state. Every mutator
// produces a fresh immutable Snapshot and notifies subscribers, so consumers
// can rely on reference comparisons to detect change.
package store

// Identifiable is implemented by any item type a Store can hold.
// The ID must be stable for the lifetime of the item.
type Identifiable interface {
	ItemID() string
}

// Snapshot is one immutable view of the store's state. Fields are never
// mutated in place after a Snapshot has been published; mutators copy.
type Snapshot[T Identifiable] struct {
	// Items mirrors the remote collection. Order is significant: it drives
	// both rendering order and keyboard navigation.
	Items []T

	// FocusedID is the item targeted by keyboard navigation, or "" for none.
	FocusedID string

	// SelectedIDs marks items for batch actions. Members may reference
	// since-removed items; acting on those is inert, not an error.
	SelectedIDs map[string]bool

	// QuickInputWantsFocus is true exactly while the UI has been asked to
	// move focus into the quick-entry field. The host must reset it on blur
	// or submit so a repeated request is observable as a false→true edge.
	QuickInputWantsFocus bool

	// DetailTargetID and SecondaryTargetID identify which item a modal is
	// open for. "" means closed; open/closed is always derived from the
	// target id, never tracked as a separate boolean.
	DetailTargetID    string
	SecondaryTargetID string
}

// DetailOpen reports whether the detail modal is open.
func (s Snapshot[T]) DetailOpen() bool { return s.DetailTargetID != "" }

// SecondaryOpen reports whether the secondary modal is open.
func (s Snapshot[T]) SecondaryOpen() bool { return s.SecondaryTargetID != "" }

// ModalOpen reports whether any modal is open.
func (s Snapshot[T]) ModalOpen() bool { return s.DetailOpen() || s.SecondaryOpen() }

// ItemByID returns the item with the given id, if present.
func (s Snapshot[T]) ItemByID(id string) (T, bool) {
	for _, it := range s.Items {
		if it.ItemID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// indexOf returns the position of id in Items, or -1.
func (s Snapshot[T]) indexOf(id string) int {
	for i, it := range s.Items {
		if it.ItemID() == id {
			return i
		}
	}
	return -1
}

// Store owns a Snapshot and exposes mutators over it. All methods are
// synchronous and total: well-typed input never causes an error, and
// operations referencing unknown ids degrade to no-ops.
//
// Store is not safe for concurrent use; like the rest of the TUI it runs
// on the single bubbletea update goroutine.
type Store[T Identifiable] struct {
	snap        Snapshot[T]
	subscribers []func(Snapshot[T])
}

// New creates an empty Store: no items, nothing focused or selected,
// all flags off.
func New[T Identifiable]() *Store[T] {
	return &Store[T]{
		snap: Snapshot[T]{SelectedIDs: make(map[string]bool)},
	}
}

// Snapshot returns the current state snapshot.
func (st *Store[T]) Snapshot() Snapshot[T] { return st.snap }

// Subscribe registers fn to be called with every new snapshot.
// Mutations that do not change the snapshot do not notify.
func (st *Store[T]) Subscribe(fn func(Snapshot[T])) {
	st.subscribers = append(st.subscribers, fn)
}

// commit publishes next as the current snapshot and notifies subscribers.
func (st *Store[T]) commit(next Snapshot[T]) {
	st.snap = next
	for _, fn := range st.subscribers {
		fn(next)
	}
}

// copySelected returns a fresh copy of the selected-id set.
func (st *Store[T]) copySelected() map[string]bool {
	out := make(map[string]bool, len(st.snap.SelectedIDs))
	for id := range st.snap.SelectedIDs {
		out[id] = true
	}
	return out
}

// SetItems replaces the item mirror verbatim. It performs no validation and
// does not touch focus or selection; keeping the mirror valid is the
// reconciliation routines' job (see reconcile.go).
func (st *Store[T]) SetItems(items []T) {
	next := st.snap
	next.Items = items
	st.commit(next)
}

// SetFocusedID replaces the focused-item id verbatim, "" for none. No
// existence check: the store may represent transiently-invalid states
// between a mirror update and the next reconciliation pass.
func (st *Store[T]) SetFocusedID(id string) {
	if st.snap.FocusedID == id {
		return
	}
	next := st.snap
	next.FocusedID = id
	st.commit(next)
}

// ToggleSelected adds id to the selection if absent, removes it if present.
func (st *Store[T]) ToggleSelected(id string) {
	next := st.snap
	next.SelectedIDs = st.copySelected()
	if next.SelectedIDs[id] {
		delete(next.SelectedIDs, id)
	} else {
		next.SelectedIDs[id] = true
	}
	st.commit(next)
}

// AddSelected adds id to the selection.
func (st *Store[T]) AddSelected(id string) {
	if st.snap.SelectedIDs[id] {
		return
	}
	next := st.snap
	next.SelectedIDs = st.copySelected()
	next.SelectedIDs[id] = true
	st.commit(next)
}

// RemoveSelected removes id from the selection.
func (st *Store[T]) RemoveSelected(id string) {
	if !st.snap.SelectedIDs[id] {
		return
	}
	next := st.snap
	next.SelectedIDs = st.copySelected()
	delete(next.SelectedIDs, id)
	st.commit(next)
}

// ClearSelected empties the selection.
func (st *Store[T]) ClearSelected() {
	if len(st.snap.SelectedIDs) == 0 {
		return
	}
	next := st.snap
	next.SelectedIDs = make(map[string]bool)
	st.commit(next)
}

// SetQuickInputWantsFocus replaces the quick-input focus flag verbatim.
func (st *Store[T]) SetQuickInputWantsFocus(v bool) {
	if st.snap.QuickInputWantsFocus == v {
		return
	}
	next := st.snap
	next.QuickInputWantsFocus = v
	st.commit(next)
}

// OpenDetailTarget opens the detail modal for id.
func (st *Store[T]) OpenDetailTarget(id string) {
	if st.snap.DetailTargetID == id {
		return
	}
	next := st.snap
	next.DetailTargetID = id
	st.commit(next)
}

// CloseDetailTarget closes the detail modal.
func (st *Store[T]) CloseDetailTarget() {
	if st.snap.DetailTargetID == "" {
		return
	}
	next := st.snap
	next.DetailTargetID = ""
	st.commit(next)
}

// OpenSecondaryTarget opens the secondary modal for id.
func (st *Store[T]) OpenSecondaryTarget(id string) {
	if st.snap.SecondaryTargetID == id {
		return
	}
	next := st.snap
	next.SecondaryTargetID = id
	st.commit(next)
}

// CloseSecondaryTarget closes the secondary modal.
func (st *Store[T]) CloseSecondaryTarget() {
	if st.snap.SecondaryTargetID == "" {
		return
	}
	next := st.snap
	next.SecondaryTargetID = ""
	st.commit(next)
}

// ReorderItems removes the item with id movedID and reinserts it at the
// position referenceID occupies at call time. The reference index is taken
// before the removal: removing the moved item can shift the reference into
// the vacated slot, and resolving the index afterwards would make a
// one-slot downward move reproduce the original order. Unknown or equal ids
// degrade to a no-op: a failed drag must never crash the view.
func (st *Store[T]) ReorderItems(movedID, referenceID string) {
	if movedID == referenceID {
		return
	}
	from := st.snap.indexOf(movedID)
	to := st.snap.indexOf(referenceID)
	if from < 0 || to < 0 {
		return
	}

	items := make([]T, 0, len(st.snap.Items))
	moved := st.snap.Items[from]
	items = append(items, st.snap.Items[:from]...)
	items = append(items, st.snap.Items[from+1:]...)

	items = append(items, moved)
	copy(items[to+1:], items[to:])
	items[to] = moved

	next := st.snap
	next.Items = items
	st.commit(next)
}
