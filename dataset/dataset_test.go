package dataset

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func newTestDataset(t *testing.T) *ArrayDataset {
	t.Helper()

	m := mat.NewDense(4, 3, []float64{
		1, 10, 100,
		2, 20, 200,
		3, 30, 300,
		4, 40, 400,
	})
	roles := map[string]Role{
		"a": {Type: "numeric"},
		"b": {Type: "numeric", ForceInput: true},
		"c": {Type: "numeric"},
	}

	ds, err := FromDense([]string{"a", "b", "c"}, roles, m)
	if err != nil {
		t.Fatalf("FromDense failed: %v", err)
	}
	return ds
}

func TestArrayDataset_Basics(t *testing.T) {
	t.Parallel()
	ds := newTestDataset(t)

	if got := ds.Rows(); got != 4 {
		t.Errorf("Rows() = %d, want 4", got)
	}

	features := ds.Features()
	want := []string{"a", "b", "c"}
	if len(features) != len(want) {
		t.Fatalf("Features() = %v, want %v", features, want)
	}
	for i := range want {
		if features[i] != want[i] {
			t.Errorf("Features()[%d] = %q, want %q", i, features[i], want[i])
		}
	}

	if !ds.Roles()["b"].ForceInput {
		t.Error("role b should carry ForceInput")
	}

	col, err := ds.Column("b")
	if err != nil {
		t.Fatalf("Column(b) failed: %v", err)
	}
	if got := col.AtVec(2); got != 30 {
		t.Errorf("Column(b)[2] = %v, want 30", got)
	}

	if _, err := ds.Column("missing"); err == nil {
		t.Error("Column(missing) should fail")
	}
}

func TestArrayDataset_Validation(t *testing.T) {
	t.Parallel()

	v := mat.NewVecDense(2, []float64{1, 2})
	short := mat.NewVecDense(1, []float64{1})

	if _, err := NewArrayDataset([]string{"a"}, nil, nil); err == nil {
		t.Error("mismatched names/columns should fail")
	}
	if _, err := NewArrayDataset([]string{"a", "a"}, nil, []*mat.VecDense{v, v}); err == nil {
		t.Error("duplicate feature names should fail")
	}
	if _, err := NewArrayDataset([]string{"a", "b"}, nil, []*mat.VecDense{v, short}); err == nil {
		t.Error("ragged columns should fail")
	}
}

func TestArrayDataset_Project(t *testing.T) {
	t.Parallel()
	ds := newTestDataset(t)

	view, err := ds.Project([]string{"c", "a"})
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	features := view.Features()
	if len(features) != 2 || features[0] != "c" || features[1] != "a" {
		t.Errorf("projected features = %v, want [c a]", features)
	}

	// Projection shares storage with the source.
	col, err := view.(Columnar).Column("c")
	if err != nil {
		t.Fatalf("Column(c) failed: %v", err)
	}
	if got := col.AtVec(0); got != 100 {
		t.Errorf("projected column c[0] = %v, want 100", got)
	}

	// Source is untouched.
	if got := ds.Features(); len(got) != 3 {
		t.Errorf("source features changed: %v", got)
	}

	if _, err := ds.Project([]string{"a", "zzz"}); err == nil {
		t.Error("projecting onto an unknown feature should fail")
	}
}

func TestArrayDataset_SliceRows(t *testing.T) {
	t.Parallel()
	ds := newTestDataset(t)

	head, err := ds.SliceRows(0, 3)
	if err != nil {
		t.Fatalf("SliceRows failed: %v", err)
	}
	if got := head.Rows(); got != 3 {
		t.Errorf("sliced rows = %d, want 3", got)
	}

	tail, err := ds.SliceRows(3, 4)
	if err != nil {
		t.Fatalf("SliceRows failed: %v", err)
	}
	col, err := tail.(Columnar).Column("a")
	if err != nil {
		t.Fatalf("Column(a) failed: %v", err)
	}
	if got := col.AtVec(0); got != 4 {
		t.Errorf("tail a[0] = %v, want 4", got)
	}

	if _, err := ds.SliceRows(2, 9); err == nil {
		t.Error("out-of-range slice should fail")
	}
}

func TestArrayDataset_WithColumn(t *testing.T) {
	t.Parallel()
	ds := newTestDataset(t)

	replaced, err := ds.WithColumn("a", mat.NewVecDense(4, []float64{9, 9, 9, 9}))
	if err != nil {
		t.Fatalf("WithColumn failed: %v", err)
	}

	col, _ := replaced.Column("a")
	if got := col.AtVec(0); got != 9 {
		t.Errorf("replaced a[0] = %v, want 9", got)
	}

	orig, _ := ds.Column("a")
	if got := orig.AtVec(0); got != 1 {
		t.Errorf("source a[0] changed to %v", got)
	}

	if _, err := ds.WithColumn("zzz", mat.NewVecDense(4, nil)); err == nil {
		t.Error("replacing an unknown column should fail")
	}
	if _, err := ds.WithColumn("a", mat.NewVecDense(2, nil)); err == nil {
		t.Error("replacing with a short column should fail")
	}
}
