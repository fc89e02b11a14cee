// Package mlalgo defines the model and hyperparameter-tuner contracts the
// selection layer drives. Concrete learning algorithms live outside this
// module; selection only needs to fit them, read their feature lists and,
// optionally, pull predictions and feature scores out of them.
package mlalgo

import (
	"fmt"

	"github.com/OlgaCeban/LightAutoML/dataset"
	"github.com/OlgaCeban/LightAutoML/validation"
)

// MLAlgo is a trainable model.
type MLAlgo interface {
	// Name identifies the algorithm, for logging.
	Name() string

	// IsFitted reports whether the model has been trained.
	IsFitted() bool

	// Features returns the ordered feature names the model was trained on.
	// Meaningful only once fitted.
	Features() []string

	// Clone returns an unfitted copy with the same hyperparameters.
	Clone() MLAlgo

	// FitPredict trains the model against the iterator and returns its
	// out-of-fold predictions.
	FitPredict(tv validation.TrainValidIterator) (dataset.Dataset, error)
}

// Predictor is implemented by fitted models that can score new datasets.
type Predictor interface {
	Predict(ds dataset.Dataset) ([]float64, error)
}

// Scorer is implemented by fitted models that expose their own per-feature
// scores, such as tree split gains.
type Scorer interface {
	FeatureScores() (map[string]float64, error)
}

// ParamsTuner searches hyperparameters for an algorithm. Tune returns the
// algorithm to fit, which may be the input instance or a reconfigured clone.
type ParamsTuner interface {
	Tune(algo MLAlgo, tv validation.TrainValidIterator) (MLAlgo, error)
}

// DefaultTuner performs no search and keeps the algorithm's current
// hyperparameters.
type DefaultTuner struct{}

// Tune returns the algorithm unchanged.
func (DefaultTuner) Tune(algo MLAlgo, _ validation.TrainValidIterator) (MLAlgo, error) {
	return algo, nil
}

// TuneAndFitPredict tunes the algorithm's hyperparameters and fits it against
// the iterator, returning the fitted algorithm and its predictions. A nil
// tuner falls back to DefaultTuner.
func TuneAndFitPredict(algo MLAlgo, tuner ParamsTuner, tv validation.TrainValidIterator) (MLAlgo, dataset.Dataset, error) {
	if tuner == nil {
		tuner = DefaultTuner{}
	}

	tuned, err := tuner.Tune(algo, tv)
	if err != nil {
		return nil, nil, fmt.Errorf("tune %s: %w", algo.Name(), err)
	}

	preds, err := tuned.FitPredict(tv)
	if err != nil {
		return nil, nil, fmt.Errorf("fit %s: %w", tuned.Name(), err)
	}
	return tuned, preds, nil
}
