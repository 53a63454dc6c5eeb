package store

import (
	"context"
	"testing"

	"projectpad/internal/model"
)

func testStore(t *testing.T) Store {
	t.Helper()
	return Store{Dir: t.TempDir()}
}

func TestKV_RoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent", ok, err)
	}
	if err := s.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := s.Get(ctx, "k")
	if err != nil || !ok || v != "v1" {
		t.Fatalf("Get after Set = (%q, %v, %v)", v, ok, err)
	}

	// Second Set replaces, never duplicates.
	if err := s.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("Set replace: %v", err)
	}
	v, _, _ = s.Get(ctx, "k")
	if v != "v2" {
		t.Fatalf("value after replace = %q, want v2", v)
	}
}

func TestLoadTree_FreshStoreGetsDefault(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	tr, repaired, err := s.LoadTree(ctx)
	if err != nil {
		t.Fatalf("LoadTree: %v", err)
	}
	if !repaired {
		t.Fatalf("fresh store did not report a repaired (seeded) tree")
	}
	if len(tr) != 1 || tr[0].Title != "My first project" {
		t.Fatalf("fresh tree = %+v", tr)
	}
	if tr[0].ID == "" {
		t.Fatalf("seeded node left without an id")
	}
}

func TestLoadTree_MalformedValueFallsBack(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, KeyTree, "{not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	tr, repaired, err := s.LoadTree(ctx)
	if err != nil {
		t.Fatalf("LoadTree: %v", err)
	}
	if !repaired {
		t.Fatalf("malformed value not flagged for re-persist")
	}
	if len(tr) != 1 || tr[0].Title != "My first project" {
		t.Fatalf("fallback tree = %+v", tr)
	}
}

func TestTree_SaveLoadNormalizes(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	// One node without an id, two sharing one. Load must hand back unique,
	// non-empty ids everywhere.
	in := []model.Node{
		{Title: "no id"},
		{ID: "dup", Title: "first"},
		{ID: "dup", Title: "second", Children: []model.Node{{ID: "leaf", Title: "leaf"}}},
	}
	if err := s.SaveTree(ctx, in); err != nil {
		t.Fatalf("SaveTree: %v", err)
	}

	tr, repaired, err := s.LoadTree(ctx)
	if err != nil {
		t.Fatalf("LoadTree: %v", err)
	}
	if !repaired {
		t.Fatalf("load did not report the id repairs")
	}
	seen := map[string]bool{}
	var walk func(ns []model.Node)
	walk = func(ns []model.Node) {
		for _, n := range ns {
			if n.ID == "" || seen[n.ID] {
				t.Fatalf("bad id %q on %q after load", n.ID, n.Title)
			}
			seen[n.ID] = true
			walk(n.Children)
		}
	}
	walk(tr)
	if tr[1].ID != "dup" {
		t.Fatalf("first occurrence lost its id: %q", tr[1].ID)
	}
	if tr[2].ID == "dup" {
		t.Fatalf("duplicate id survived")
	}
	if tr[0].Title != "no id" || tr[2].Children[0].ID != "leaf" {
		t.Fatalf("structure changed during normalization: %+v", tr)
	}
}

func TestTree_ValidTreeRoundTripsUntouched(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	in := []model.Node{
		{ID: "a", Title: "Alpha", IsOpen: true, Children: []model.Node{
			{ID: "a1", Title: "Une idée"},
			{ID: "a2", Title: "Two"},
		}},
		{ID: "b", Title: "Beta"},
	}
	if err := s.SaveTree(ctx, in); err != nil {
		t.Fatalf("SaveTree: %v", err)
	}
	out, repaired, err := s.LoadTree(ctx)
	if err != nil {
		t.Fatalf("LoadTree: %v", err)
	}
	if repaired {
		t.Fatalf("valid tree flagged as repaired")
	}
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "b" {
		t.Fatalf("root order changed: %+v", out)
	}
	if out[0].Children[0].Title != "Une idée" || out[0].Children[1].ID != "a2" {
		t.Fatalf("child data changed: %+v", out[0].Children)
	}
	if !out[0].IsOpen || out[1].IsOpen {
		t.Fatalf("open flags changed")
	}
}

func TestSettings_DefaultsAndRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	st, err := s.LoadSettings(ctx)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if st != DefaultSettings() {
		t.Fatalf("fresh settings = %+v, want defaults", st)
	}

	want := Settings{DecayEnabled: true, DecayAfter: 5}
	if err := s.SaveSettings(ctx, want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	st, err = s.LoadSettings(ctx)
	if err != nil || st != want {
		t.Fatalf("settings after save = (%+v, %v)", st, err)
	}

	// Garbage falls back silently.
	if err := s.Set(ctx, KeySettings, "???"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	st, err = s.LoadSettings(ctx)
	if err != nil || st != DefaultSettings() {
		t.Fatalf("settings after corruption = (%+v, %v), want defaults", st, err)
	}
}

func TestUIState_BestEffort(t *testing.T) {
	s := testStore(t)

	st, err := s.LoadUIState()
	if err != nil || st == nil || st.Version != 1 {
		t.Fatalf("fresh ui state = (%+v, %v)", st, err)
	}

	st.SelectedID = "proj-abc"
	st.Scroll = 4
	if err := s.SaveUIState(st); err != nil {
		t.Fatalf("SaveUIState: %v", err)
	}
	got, err := s.LoadUIState()
	if err != nil {
		t.Fatalf("LoadUIState: %v", err)
	}
	if got.SelectedID != "proj-abc" || got.Scroll != 4 {
		t.Fatalf("ui state after save = %+v", got)
	}
}

func TestDoctor_RepairsAndReports(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	in := []model.Node{
		{Title: "a"},
		{ID: "x", Title: "b", Children: []model.Node{{ID: "x", Title: "dup child"}}},
	}
	if err := s.SaveTree(ctx, in); err != nil {
		t.Fatalf("SaveTree: %v", err)
	}

	rep, err := s.Doctor(ctx)
	if err != nil {
		t.Fatalf("Doctor: %v", err)
	}
	if rep.Nodes != 3 || !rep.Repaired {
		t.Fatalf("report = %+v, want 3 nodes repaired", rep)
	}

	// Doctor wrote the cleaned snapshot; a second pass finds nothing to fix.
	rep, err = s.Doctor(ctx)
	if err != nil {
		t.Fatalf("Doctor second pass: %v", err)
	}
	if rep.Repaired {
		t.Fatalf("second pass still repairing")
	}
}
