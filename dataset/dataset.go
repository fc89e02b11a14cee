// Package dataset defines the column-oriented dataset contract consumed by
// the feature-selection layer, plus an in-memory implementation backed by
// gonum vectors. Projections produced by selection share column storage with
// their source dataset; callers must not assume exclusive ownership of a
// projected view.
package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Role describes per-feature metadata relevant to selection.
type Role struct {
	Type string // semantic type of the column, e.g. "numeric" or "category"

	// ForceInput marks a feature that must survive selection regardless of
	// the selector's decision.
	ForceInput bool
}

// Dataset is an ordered, named collection of feature columns with per-feature
// roles. Implementations must keep the feature axis unique at any point in
// time and must never be mutated by selection.
type Dataset interface {
	// Features returns the ordered feature names.
	Features() []string

	// Roles returns the role attached to each feature name.
	Roles() map[string]Role

	// Rows returns the number of rows in every column.
	Rows() int

	// Project returns a view of the dataset restricted to the given feature
	// names, in the given order. The source dataset is left untouched.
	Project(features []string) (Dataset, error)
}

// Columnar is implemented by datasets that expose direct column access.
type Columnar interface {
	Column(name string) (mat.Vector, error)
}

// RowSlicer is implemented by datasets that support row-range views. It is
// used by fold iterators to carve train/valid partitions without copying.
type RowSlicer interface {
	SliceRows(from, to int) (Dataset, error)
}

// ArrayDataset is an in-memory Dataset whose columns are gonum vectors.
// Projections and row slices are views over the same storage.
type ArrayDataset struct {
	names []string
	index map[string]int
	roles map[string]Role
	cols  []*mat.VecDense
	rows  int
}

// NewArrayDataset builds a dataset from named columns. All columns must have
// the same length and names must be unique.
func NewArrayDataset(names []string, roles map[string]Role, cols []*mat.VecDense) (*ArrayDataset, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("dataset: %d names for %d columns", len(names), len(cols))
	}

	rows := 0
	if len(cols) > 0 {
		rows = cols[0].Len()
	}

	index := make(map[string]int, len(names))
	for i, name := range names {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("dataset: duplicate feature %q", name)
		}
		if cols[i].Len() != rows {
			return nil, fmt.Errorf("dataset: column %q has %d rows, want %d", name, cols[i].Len(), rows)
		}
		index[name] = i
	}

	if roles == nil {
		roles = map[string]Role{}
	}

	return &ArrayDataset{
		names: append([]string(nil), names...),
		index: index,
		roles: roles,
		cols:  cols,
		rows:  rows,
	}, nil
}

// FromDense builds a dataset from the columns of a dense matrix. Column j of
// the matrix becomes the feature names[j]; the dataset shares the matrix
// storage.
func FromDense(names []string, roles map[string]Role, m *mat.Dense) (*ArrayDataset, error) {
	_, c := m.Dims()
	if c != len(names) {
		return nil, fmt.Errorf("dataset: matrix has %d columns for %d names", c, len(names))
	}

	cols := make([]*mat.VecDense, c)
	for j := 0; j < c; j++ {
		cols[j] = m.ColView(j).(*mat.VecDense)
	}
	return NewArrayDataset(names, roles, cols)
}

// Features returns a copy of the ordered feature names.
func (d *ArrayDataset) Features() []string {
	return append([]string(nil), d.names...)
}

// Roles returns the per-feature roles.
func (d *ArrayDataset) Roles() map[string]Role {
	return d.roles
}

// Rows returns the row count.
func (d *ArrayDataset) Rows() int {
	return d.rows
}

// Column returns the named column as a vector view.
func (d *ArrayDataset) Column(name string) (mat.Vector, error) {
	i, ok := d.index[name]
	if !ok {
		return nil, fmt.Errorf("dataset: unknown feature %q", name)
	}
	return d.cols[i], nil
}

// Project returns a view restricted to the given features, in the given
// order. Column storage is shared with the receiver.
func (d *ArrayDataset) Project(features []string) (Dataset, error) {
	cols := make([]*mat.VecDense, len(features))
	roles := make(map[string]Role, len(features))
	for i, name := range features {
		j, ok := d.index[name]
		if !ok {
			return nil, fmt.Errorf("dataset: unknown feature %q", name)
		}
		cols[i] = d.cols[j]
		if role, ok := d.roles[name]; ok {
			roles[name] = role
		}
	}
	return NewArrayDataset(features, roles, cols)
}

// WithColumn returns a view with the named column replaced. The remaining
// columns are shared with the receiver.
func (d *ArrayDataset) WithColumn(name string, col *mat.VecDense) (*ArrayDataset, error) {
	if _, ok := d.index[name]; !ok {
		return nil, fmt.Errorf("dataset: unknown feature %q", name)
	}
	if col.Len() != d.rows {
		return nil, fmt.Errorf("dataset: column %q has %d rows, want %d", name, col.Len(), d.rows)
	}

	cols := make([]*mat.VecDense, len(d.cols))
	copy(cols, d.cols)
	cols[d.index[name]] = col
	return NewArrayDataset(d.names, d.roles, cols)
}

// SliceRows returns a view over rows [from, to).
func (d *ArrayDataset) SliceRows(from, to int) (Dataset, error) {
	if from < 0 || to > d.rows || from > to {
		return nil, fmt.Errorf("dataset: row slice [%d:%d) out of range 0..%d", from, to, d.rows)
	}

	cols := make([]*mat.VecDense, len(d.cols))
	for i, col := range d.cols {
		cols[i] = col.SliceVec(from, to).(*mat.VecDense)
	}
	return NewArrayDataset(d.names, d.roles, cols)
}
