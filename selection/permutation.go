package selection

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/OlgaCeban/LightAutoML/dataset"
	"github.com/OlgaCeban/LightAutoML/mlalgo"
	"github.com/OlgaCeban/LightAutoML/validation"
)

// MetricFunc scores predictions against targets. Higher is better.
type MetricFunc func(preds, target []float64) float64

// NegMSE is the default permutation metric: negated mean squared error.
func NegMSE(preds, target []float64) float64 {
	if len(preds) == 0 {
		return 0
	}
	var sum float64
	for i := range preds {
		d := preds[i] - target[i]
		sum += d * d
	}
	return -sum / float64(len(preds))
}

// PermutationEstimator scores output features by the metric drop observed on
// the holdout validation split when a feature's column is permuted across
// rows. The model must implement mlalgo.Predictor and the iterator must
// carry a validation target. Importances are clamped to be non-negative.
type PermutationEstimator struct {
	metric MetricFunc
	raw    *Scores
}

// NewPermutationEstimator creates a permutation estimator. A nil metric
// falls back to NegMSE.
func NewPermutationEstimator(metric MetricFunc) *PermutationEstimator {
	if metric == nil {
		metric = NegMSE
	}
	return &PermutationEstimator{metric: metric}
}

// Fit computes the baseline metric on the validation split, then permutes
// each feature column in turn and records the metric drop as that feature's
// importance.
func (e *PermutationEstimator) Fit(tv validation.TrainValidIterator, algo mlalgo.MLAlgo, _ dataset.Dataset) error {
	if algo == nil {
		return fmt.Errorf("permutation estimator: no algo supplied")
	}
	predictor, ok := algo.(mlalgo.Predictor)
	if !ok {
		return fmt.Errorf("permutation estimator: algo %s cannot predict", algo.Name())
	}

	sup, ok := tv.(validation.Supervised)
	if !ok {
		ho, err := tv.ConvertToHoldoutIterator()
		if err != nil {
			return fmt.Errorf("permutation estimator: %w", err)
		}
		if sup, ok = ho.(validation.Supervised); !ok {
			return fmt.Errorf("permutation estimator: iterator %T carries no validation target", tv)
		}
	}

	valid, ok := sup.Valid().(*dataset.ArrayDataset)
	if !ok {
		return fmt.Errorf("permutation estimator: validation split %T does not support column replacement", sup.Valid())
	}
	target := sup.ValidTarget()
	if target == nil {
		return fmt.Errorf("permutation estimator: iterator carries no validation target")
	}

	preds, err := predictor.Predict(valid)
	if err != nil {
		return fmt.Errorf("permutation estimator: baseline predict: %w", err)
	}
	baseline := e.metric(preds, target)

	entries := make([]ScoreEntry, 0, len(valid.Features()))
	for _, name := range valid.Features() {
		permuted, err := permuteColumn(valid, name)
		if err != nil {
			return err
		}
		preds, err = predictor.Predict(permuted)
		if err != nil {
			return fmt.Errorf("permutation estimator: predict with permuted %q: %w", name, err)
		}
		drop := baseline - e.metric(preds, target)
		entries = append(entries, ScoreEntry{Feature: name, Score: math.Max(0, drop)})
	}

	e.raw = NewScores(entries)
	return nil
}

// FeaturesScore returns the raw permutation scores, or nil before Fit.
func (e *PermutationEstimator) FeaturesScore() *Scores {
	return e.raw
}

// permuteColumn returns a dataset view with the named column cyclically
// shifted by one row, breaking the feature/target association without
// changing the column's value distribution.
func permuteColumn(ds *dataset.ArrayDataset, name string) (*dataset.ArrayDataset, error) {
	col, err := ds.Column(name)
	if err != nil {
		return nil, err
	}

	n := col.Len()
	shifted := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		shifted.SetVec(i, col.AtVec((i+1)%n))
	}
	return ds.WithColumn(name, shifted)
}
