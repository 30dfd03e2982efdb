package store

import "testing"

func dispatcherWith(ids ...string) (*Store[item], *Dispatcher[item], []DisplayItem[item]) {
	st := New[item]()
	st.SetItems(items(ids...))
	p := NewProjector[item]()
	display := p.Project(st.Snapshot(), nil)
	return st, NewDispatcher(st), display
}

func TestDispatchNextPrevScenario(t *testing.T) {
	st, d, display := dispatcherWith("a", "b", "c")
	st.SetFocusedID("a")

	steps := []struct {
		cmd  Command
		want string
	}{
		{CmdNextItem, "b"},
		{CmdNextItem, "c"},
		{CmdNextItem, "c"}, // already last
		{CmdPrevItem, "b"},
		{CmdPrevItem, "a"},
		{CmdPrevItem, "a"}, // already first
	}
	for i, s := range steps {
		d.Dispatch(s.cmd, display, false)
		if got := st.Snapshot().FocusedID; got != s.want {
			t.Fatalf("step %d: FocusedID = %q, want %q", i, got, s.want)
		}
	}
}

func TestDispatchNavigationFallbacks(t *testing.T) {
	t.Run("next with no focus lands on first", func(t *testing.T) {
		st, d, display := dispatcherWith("a", "b", "c")
		d.Dispatch(CmdNextItem, display, false)
		if got := st.Snapshot().FocusedID; got != "a" {
			t.Errorf("FocusedID = %q, want %q", got, "a")
		}
	})

	t.Run("prev with no focus lands on last", func(t *testing.T) {
		st, d, display := dispatcherWith("a", "b", "c")
		d.Dispatch(CmdPrevItem, display, false)
		if got := st.Snapshot().FocusedID; got != "c" {
			t.Errorf("FocusedID = %q, want %q", got, "c")
		}
	})

	t.Run("empty display is a no-op", func(t *testing.T) {
		st, d, display := dispatcherWith()
		d.Dispatch(CmdNextItem, display, false)
		d.Dispatch(CmdPrevItem, display, false)
		if got := st.Snapshot().FocusedID; got != "" {
			t.Errorf("FocusedID = %q, want none", got)
		}
	})
}

func TestDispatchEdit(t *testing.T) {
	t.Run("opens detail on focused item", func(t *testing.T) {
		st, d, display := dispatcherWith("a", "b")
		st.SetFocusedID("b")
		d.Dispatch(CmdEdit, display, false)
		if got := st.Snapshot().DetailTargetID; got != "b" {
			t.Errorf("DetailTargetID = %q, want %q", got, "b")
		}
	})

	t.Run("falls back to first item without focus", func(t *testing.T) {
		st, d, display := dispatcherWith("a", "b")
		d.Dispatch(CmdEdit, display, false)
		if got := st.Snapshot().DetailTargetID; got != "a" {
			t.Errorf("DetailTargetID = %q, want %q", got, "a")
		}
	})
}

func TestDispatchGuardedWhileInputOrModalActive(t *testing.T) {
	st, d, display := dispatcherWith("a", "b")
	st.SetFocusedID("a")

	// Text input focused: everything but close is swallowed.
	if d.Dispatch(CmdNextItem, display, true) {
		t.Error("navigation should be ignored while an input is focused")
	}
	if got := st.Snapshot().FocusedID; got != "a" {
		t.Errorf("FocusedID moved to %q while input focused", got)
	}

	// Modal open: same guard, close command still works.
	st.OpenDetailTarget("a")
	if d.Dispatch(CmdNextItem, display, false) {
		t.Error("navigation should be ignored while a modal is open")
	}
	if !d.Dispatch(CmdCloseModal, display, false) {
		t.Error("close should be handled while a modal is open")
	}
	if st.Snapshot().DetailOpen() {
		t.Error("detail modal should be closed")
	}
}

func TestDispatchCloseModalOrder(t *testing.T) {
	// The secondary modal stacks on top of detail and closes first.
	st, d, display := dispatcherWith("a")
	st.OpenDetailTarget("a")
	st.OpenSecondaryTarget("a")

	d.Dispatch(CmdCloseModal, display, false)
	snap := st.Snapshot()
	if snap.SecondaryOpen() {
		t.Error("secondary modal should close first")
	}
	if !snap.DetailOpen() {
		t.Error("detail modal should remain open after closing secondary")
	}

	d.Dispatch(CmdCloseModal, display, false)
	if st.Snapshot().ModalOpen() {
		t.Error("both modals should be closed")
	}
}

func TestDispatchFocusQuickInput(t *testing.T) {
	st, d, display := dispatcherWith("a")

	d.Dispatch(CmdFocusQuickInput, display, false)
	if !st.Snapshot().QuickInputWantsFocus {
		t.Fatal("quick-input flag should be set")
	}

	// Host resets on blur; the next request is a fresh observable edge.
	st.SetQuickInputWantsFocus(false)
	edges := 0
	st.Subscribe(func(s Snapshot[item]) {
		if s.QuickInputWantsFocus {
			edges++
		}
	})
	d.Dispatch(CmdFocusQuickInput, display, false)
	if edges != 1 {
		t.Errorf("expected one observable focus request, got %d", edges)
	}
}
