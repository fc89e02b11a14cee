package selection

import (
	"fmt"

	"github.com/OlgaCeban/LightAutoML/dataset"
	"github.com/OlgaCeban/LightAutoML/mlalgo"
	"github.com/OlgaCeban/LightAutoML/validation"
)

// ImportanceEstimator scores output features by predictive contribution.
// Fit must populate the raw table before FeaturesScore is called; before a
// successful Fit, FeaturesScore returns nil and callers must treat the
// scores as not yet available.
type ImportanceEstimator interface {
	// Fit estimates raw importances from the iterator, the fitted model and
	// optionally its predictions.
	Fit(tv validation.TrainValidIterator, algo mlalgo.MLAlgo, preds dataset.Dataset) error

	// FeaturesScore returns the raw output-feature score table, or nil if
	// the estimator has not been fit.
	FeaturesScore() *Scores
}

// ModelEstimator surfaces the feature scores a fitted model reports about
// itself, such as tree split gains. The model must implement mlalgo.Scorer.
type ModelEstimator struct {
	raw *Scores
}

// NewModelEstimator creates an unfitted model-based estimator.
func NewModelEstimator() *ModelEstimator {
	return &ModelEstimator{}
}

// Fit pulls the per-feature scores out of the fitted model. The model's
// feature order is the tie-break order of the resulting table.
func (e *ModelEstimator) Fit(_ validation.TrainValidIterator, algo mlalgo.MLAlgo, _ dataset.Dataset) error {
	if algo == nil {
		return fmt.Errorf("model estimator: no algo supplied")
	}
	scorer, ok := algo.(mlalgo.Scorer)
	if !ok {
		return fmt.Errorf("model estimator: algo %s does not expose feature scores", algo.Name())
	}

	scores, err := scorer.FeatureScores()
	if err != nil {
		return fmt.Errorf("model estimator: %w", err)
	}

	entries := make([]ScoreEntry, 0, len(scores))
	for _, f := range algo.Features() {
		if v, ok := scores[f]; ok {
			entries = append(entries, ScoreEntry{Feature: f, Score: v})
		}
	}
	e.raw = NewScores(entries)
	return nil
}

// FeaturesScore returns the raw score table, or nil before Fit.
func (e *ModelEstimator) FeaturesScore() *Scores {
	return e.raw
}
