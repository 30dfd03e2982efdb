package store

import (
	"testing"
)

type item struct {
	id    string
	title string
}

func (i item) ItemID() string { return i.id }

func items(ids ...string) []item {
	out := make([]item, len(ids))
	for i, id := range ids {
		out[i] = item{id: id}
	}
	return out
}

func idsOf(ts []item) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.id
	}
	return out
}

func assertOrder(t *testing.T, got []item, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d (%v)", len(want), len(got), idsOf(got))
	}
	for i, id := range want {
		if got[i].id != id {
			t.Errorf("at index %d: expected %q, got %q", i, id, got[i].id)
		}
	}
}

func TestNewStoreIsEmpty(t *testing.T) {
	st := New[item]()
	snap := st.Snapshot()

	if len(snap.Items) != 0 {
		t.Errorf("expected no items, got %d", len(snap.Items))
	}
	if snap.FocusedID != "" {
		t.Errorf("expected no focus, got %q", snap.FocusedID)
	}
	if len(snap.SelectedIDs) != 0 {
		t.Errorf("expected empty selection, got %v", snap.SelectedIDs)
	}
	if snap.QuickInputWantsFocus {
		t.Error("expected quick-input flag off")
	}
	if snap.ModalOpen() {
		t.Error("expected no modal open")
	}
}

func TestSubscribersSeeEverySnapshot(t *testing.T) {
	st := New[item]()

	var seen []Snapshot[item]
	st.Subscribe(func(s Snapshot[item]) { seen = append(seen, s) })

	st.SetItems(items("a", "b"))
	st.SetFocusedID("a")
	st.SetFocusedID("a") // no change, no notify
	st.ToggleSelected("b")

	if len(seen) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(seen))
	}
	if seen[1].FocusedID != "a" {
		t.Errorf("expected focus notification for %q, got %q", "a", seen[1].FocusedID)
	}
	if !seen[2].SelectedIDs["b"] {
		t.Error("expected final notification to carry selection of b")
	}
}

func TestSnapshotsAreImmutable(t *testing.T) {
	st := New[item]()
	st.SetItems(items("a"))
	st.AddSelected("a")

	before := st.Snapshot()
	st.AddSelected("b")
	st.RemoveSelected("a")

	if !before.SelectedIDs["a"] || before.SelectedIDs["b"] {
		t.Error("earlier snapshot was mutated by later selection changes")
	}
}

func TestSelectionMutators(t *testing.T) {
	st := New[item]()
	st.SetItems(items("a", "b", "c"))

	st.ToggleSelected("a")
	st.ToggleSelected("b")
	st.ToggleSelected("a")
	if st.Snapshot().SelectedIDs["a"] {
		t.Error("toggle twice should deselect a")
	}
	if !st.Snapshot().SelectedIDs["b"] {
		t.Error("b should remain selected")
	}

	// Selecting a since-removed item is inert, not an error.
	st.AddSelected("ghost")
	if !st.Snapshot().SelectedIDs["ghost"] {
		t.Error("selection may reference ids absent from items")
	}

	st.ClearSelected()
	if len(st.Snapshot().SelectedIDs) != 0 {
		t.Errorf("expected empty selection, got %v", st.Snapshot().SelectedIDs)
	}
}

func TestModalStateIsDerivedFromTarget(t *testing.T) {
	st := New[item]()
	st.SetItems(items("a", "b"))

	st.OpenDetailTarget("a")
	if !st.Snapshot().DetailOpen() {
		t.Error("detail modal should be open for target a")
	}
	st.CloseDetailTarget()
	if st.Snapshot().DetailOpen() {
		t.Error("detail modal should be closed")
	}

	st.OpenSecondaryTarget("b")
	if !st.Snapshot().SecondaryOpen() || !st.Snapshot().ModalOpen() {
		t.Error("secondary modal should be open for target b")
	}
	st.CloseSecondaryTarget()
	if st.Snapshot().ModalOpen() {
		t.Error("no modal should remain open")
	}
}

func TestQuickInputFlagRoundTrip(t *testing.T) {
	st := New[item]()

	var edges []bool
	prev := false
	st.Subscribe(func(s Snapshot[item]) {
		if s.QuickInputWantsFocus != prev {
			edges = append(edges, s.QuickInputWantsFocus)
			prev = s.QuickInputWantsFocus
		}
	})

	st.SetQuickInputWantsFocus(true)
	// Simulated blur: the host resets the flag once the field loses focus.
	st.SetQuickInputWantsFocus(false)
	if st.Snapshot().QuickInputWantsFocus {
		t.Fatal("flag should be false after blur")
	}
	// The repeated request must be observable as a fresh false→true edge.
	st.SetQuickInputWantsFocus(true)

	want := []bool{true, false, true}
	if len(edges) != len(want) {
		t.Fatalf("expected %d flag edges, got %d (%v)", len(want), len(edges), edges)
	}
	for i, v := range want {
		if edges[i] != v {
			t.Errorf("edge %d: expected %v, got %v", i, v, edges[i])
		}
	}
}

func TestReorderItems(t *testing.T) {
	tests := []struct {
		name      string
		start     []string
		moved     string
		reference string
		want      []string
	}{
		{"last to first", []string{"a", "b", "c"}, "c", "a", []string{"c", "a", "b"}},
		{"first to last position", []string{"a", "b", "c"}, "a", "c", []string{"b", "c", "a"}},
		{"adjacent swap down", []string{"a", "b", "c"}, "b", "c", []string{"a", "c", "b"}},
		{"adjacent swap up", []string{"a", "b", "c"}, "b", "a", []string{"b", "a", "c"}},
		{"into the middle", []string{"a", "b", "c", "d"}, "d", "b", []string{"a", "d", "b", "c"}},
		{"same id is a no-op", []string{"a", "b", "c"}, "b", "b", []string{"a", "b", "c"}},
		{"unknown moved id is a no-op", []string{"a", "b", "c"}, "zz", "a", []string{"a", "b", "c"}},
		{"unknown reference id is a no-op", []string{"a", "b", "c"}, "a", "zz", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := New[item]()
			st.SetItems(items(tt.start...))
			st.ReorderItems(tt.moved, tt.reference)
			assertOrder(t, st.Snapshot().Items, tt.want...)
		})
	}
}

func TestReorderDoesNotNotifyOnNoOp(t *testing.T) {
	st := New[item]()
	st.SetItems(items("a", "b"))

	calls := 0
	st.Subscribe(func(Snapshot[item]) { calls++ })

	st.ReorderItems("a", "a")
	st.ReorderItems("nope", "b")
	if calls != 0 {
		t.Errorf("no-op reorders must not publish snapshots, got %d notifications", calls)
	}
}
