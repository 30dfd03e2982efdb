package store

// Callbacks supplies the side-effecting handlers the projector binds to each
// display item. The handlers receive the item id; the projector itself never
// calls them and performs no side effects or remote calls.
type Callbacks struct {
	Edit          func(id string)
	ToggleSelect  func(id string)
	Complete      func(id string)
	Delete        func(id string)
	SecondaryFlow func(id string)
}

// Actions is the per-item bundle of bound callbacks carried by a DisplayItem.
// Each closure captures one item id and delegates to the Callbacks handler.
type Actions struct {
	Edit          func()
	ToggleSelect  func()
	Complete      func()
	Delete        func()
	SecondaryFlow func()
}

// DisplayItem is the presentation record the rendering layer consumes:
// the underlying item plus derived focus/selection flags and bound actions.
type DisplayItem[T Identifiable] struct {
	Item       T
	IsFocused  bool
	IsSelected bool
	Actions    Actions
}

// Projector derives the ordered display list from a snapshot. Output order
// equals snapshot item order; nothing is resorted or filtered.
//
// The projection is memoized: when items (by slice identity — the store
// replaces the slice wholesale and never mutates it in place), focused id,
// selected-set content, and the callback bundle are all unchanged, Project
// returns the previous output slice untouched. Action bundles are cached
// per item id so rows untouched by a focus or selection change stay
// shallow-equal across recomputations.
type Projector[T Identifiable] struct {
	lastItems     []T
	lastFocused   string
	lastSelected  map[string]bool
	lastCallbacks *Callbacks
	lastOut       []DisplayItem[T]
	haveLast      bool

	actions map[string]Actions
}

// NewProjector creates a Projector with an empty memo.
func NewProjector[T Identifiable]() *Projector[T] {
	return &Projector[T]{actions: make(map[string]Actions)}
}

// Project derives display items from snap, binding cb to each row.
func (p *Projector[T]) Project(snap Snapshot[T], cb *Callbacks) []DisplayItem[T] {
	if p.haveLast &&
		sameSlice(p.lastItems, snap.Items) &&
		p.lastFocused == snap.FocusedID &&
		p.lastCallbacks == cb &&
		sameIDSet(p.lastSelected, snap.SelectedIDs) {
		return p.lastOut
	}

	if p.lastCallbacks != cb {
		// Rebind everything against the new handlers.
		p.actions = make(map[string]Actions)
	}

	// Rebuilding the cache keyed off the previous one keeps bindings stable
	// for surviving ids and drops entries for removed ones, so the cache
	// never outgrows the mirror.
	actions := make(map[string]Actions, len(snap.Items))
	out := make([]DisplayItem[T], len(snap.Items))
	for i, it := range snap.Items {
		id := it.ItemID()
		acts, ok := p.actions[id]
		if !ok {
			acts = bindActions(cb, id)
		}
		actions[id] = acts
		out[i] = DisplayItem[T]{
			Item:       it,
			IsFocused:  id == snap.FocusedID,
			IsSelected: snap.SelectedIDs[id],
			Actions:    acts,
		}
	}
	p.actions = actions

	p.lastItems = snap.Items
	p.lastFocused = snap.FocusedID
	p.lastSelected = snap.SelectedIDs
	p.lastCallbacks = cb
	p.lastOut = out
	p.haveLast = true
	return out
}

// bindActions closes each handler over id. Nil handlers bind to nil.
func bindActions(cb *Callbacks, id string) Actions {
	var acts Actions
	if cb == nil {
		return acts
	}
	if cb.Edit != nil {
		acts.Edit = func() { cb.Edit(id) }
	}
	if cb.ToggleSelect != nil {
		acts.ToggleSelect = func() { cb.ToggleSelect(id) }
	}
	if cb.Complete != nil {
		acts.Complete = func() { cb.Complete(id) }
	}
	if cb.Delete != nil {
		acts.Delete = func() { cb.Delete(id) }
	}
	if cb.SecondaryFlow != nil {
		acts.SecondaryFlow = func() { cb.SecondaryFlow(id) }
	}
	return acts
}

// sameSlice reports whether two slices share length and backing array.
func sameSlice[T Identifiable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

// sameIDSet reports whether two id sets have equal content.
func sameIDSet(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if !b[id] {
			return false
		}
	}
	return true
}
