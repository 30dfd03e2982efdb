package store

// SyncItems mirrors a remote collection into the store, gated on content
// equality. Remote fetch layers routinely hand back a fresh slice for
// logically-unchanged data; writing that through unconditionally turns every
// poll into a publish, and a publish that retriggers the fetch is how
// "maximum update depth" loops are born. Comparing id sequences breaks the
// cycle at its source instead of hiding the mutator from the reactive path.
//
// Reports whether the mirror actually changed.
func (st *Store[T]) SyncItems(remote []T) bool {
	if sameIDOrder(st.snap.Items, remote) {
		return false
	}
	st.SetItems(remote)
	return true
}

// sameIDOrder reports whether two collections carry the same ids in the
// same order. Length is checked first; empty-to-empty matches trivially.
func sameIDOrder[T Identifiable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ItemID() != b[i].ItemID() {
			return false
		}
	}
	return true
}

// ReconcileFocus re-points FocusedID at a live item after the mirror or the
// focus changed: an empty mirror clears focus, an unset or dangling focus
// falls back to the first item. It reads the store's own mirror — the same
// collection the projector and dispatcher use — so focus assignment and
// navigation index arithmetic can never disagree about what exists.
//
// Reports whether the focus was reassigned.
func (st *Store[T]) ReconcileFocus() bool {
	snap := st.snap
	if len(snap.Items) == 0 {
		if snap.FocusedID != "" {
			st.SetFocusedID("")
			return true
		}
		return false
	}
	if snap.FocusedID == "" {
		st.SetFocusedID(snap.Items[0].ItemID())
		return true
	}
	if snap.indexOf(snap.FocusedID) < 0 {
		st.SetFocusedID(snap.Items[0].ItemID())
		return true
	}
	return false
}
