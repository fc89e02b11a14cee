package selection

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/OlgaCeban/LightAutoML/dataset"
	"github.com/OlgaCeban/LightAutoML/mlalgo"
	"github.com/OlgaCeban/LightAutoML/validation"
)

func makeDataset(t *testing.T, rows int, roles map[string]dataset.Role, names ...string) *dataset.ArrayDataset {
	t.Helper()

	cols := make([]*mat.VecDense, len(names))
	for j := range names {
		data := make([]float64, rows)
		for i := range data {
			data[i] = float64(i+1) * float64(j+1)
		}
		cols[j] = mat.NewVecDense(rows, data)
	}

	ds, err := dataset.NewArrayDataset(names, roles, cols)
	if err != nil {
		t.Fatalf("NewArrayDataset failed: %v", err)
	}
	return ds
}

func makeIterator(t *testing.T, names ...string) *validation.DummyIterator {
	t.Helper()
	return validation.NewDummyIterator(makeDataset(t, 4, nil, names...))
}

// stubAlgo is a configurable fake model: it can report canned feature
// scores and predict a linear combination of columns.
type stubAlgo struct {
	name     string
	fitted   bool
	features []string
	scores   map[string]float64
	weights  map[string]float64
	fitCalls int
}

func (a *stubAlgo) Name() string       { return a.name }
func (a *stubAlgo) IsFitted() bool     { return a.fitted }
func (a *stubAlgo) Features() []string { return a.features }

func (a *stubAlgo) Clone() mlalgo.MLAlgo {
	return &stubAlgo{name: a.name, scores: a.scores, weights: a.weights}
}

func (a *stubAlgo) FitPredict(tv validation.TrainValidIterator) (dataset.Dataset, error) {
	a.fitCalls++
	a.fitted = true
	a.features = tv.Features()
	return nil, nil
}

func (a *stubAlgo) FeatureScores() (map[string]float64, error) {
	if a.scores == nil {
		return nil, errors.New("no scores recorded")
	}
	return a.scores, nil
}

func (a *stubAlgo) Predict(ds dataset.Dataset) ([]float64, error) {
	cr, ok := ds.(dataset.Columnar)
	if !ok {
		return nil, errors.New("dataset does not expose columns")
	}

	preds := make([]float64, ds.Rows())
	for name, w := range a.weights {
		col, err := cr.Column(name)
		if err != nil {
			return nil, err
		}
		for i := range preds {
			preds[i] += w * col.AtVec(i)
		}
	}
	return preds, nil
}

// keepAll is a minimal concrete selector exercising the base pipeline flow:
// it keeps whatever features the prepared iterator exposes.
type keepAll struct {
	*Pipeline
}

func newKeepAll(opts Options) *keepAll {
	s := &keepAll{}
	s.Pipeline = NewPipeline(opts, s)
	return s
}

func (s *keepAll) PerformSelection(tv validation.TrainValidIterator) ([]string, error) {
	return append([]string(nil), tv.Features()...), nil
}

// spyIterator counts holdout conversions on the wrapped iterator.
type spyIterator struct {
	validation.TrainValidIterator
	holdoutCalls int
}

func (s *spyIterator) ConvertToHoldoutIterator() (validation.TrainValidIterator, error) {
	s.holdoutCalls++
	return s.TrainValidIterator.ConvertToHoldoutIterator()
}
