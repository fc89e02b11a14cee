// Package selection implements the feature-selection layer of the AutoML
// pipeline. A selector is fit once against a train/valid iterator, decides
// which input features to keep, and can then project any dataset onto that
// decision. Selectors compose: a feature-engineering pipeline and a model can
// feed an importance estimator, and several selectors can be chained so each
// one narrows the feature set seen by the next.
package selection

import (
	"errors"

	"github.com/OlgaCeban/LightAutoML/dataset"
	"github.com/OlgaCeban/LightAutoML/validation"
)

var (
	// ErrNotFitted is returned when a selector's decision is read before
	// Fit has completed.
	ErrNotFitted = errors.New("selector is not fitted")

	// ErrFeatureMismatch is returned when a pre-fitted model's feature list
	// does not exactly match the iterator's features.
	ErrFeatureMismatch = errors.New("features of fitted algo do not match iterator features")

	// ErrColumnsMissing is returned when a predefined selector requests
	// columns the iterator does not have.
	ErrColumnsMissing = errors.New("columns to select not present in iterator features")

	// ErrEmptyComposition is returned when a composed selector has no child
	// selectors.
	ErrEmptyComposition = errors.New("composed selector requires at least one child selector")
)

// Selector is the full contract a fitted selection pipeline exposes to
// orchestrating callers.
type Selector interface {
	// Fit drives the selection flow against the iterator. Fitting is
	// idempotent: once fit, further calls return immediately.
	Fit(tv validation.TrainValidIterator) error

	// IsFitted reports whether a selection decision exists.
	IsFitted() bool

	// SelectedFeatures returns the ordered kept feature names, or
	// ErrNotFitted.
	SelectedFeatures() ([]string, error)

	// InFeatures returns the ordered feature names seen at fit time, or
	// ErrNotFitted.
	InFeatures() ([]string, error)

	// DroppedFeatures returns InFeatures minus SelectedFeatures, preserving
	// input order.
	DroppedFeatures() ([]string, error)

	// Select projects the dataset onto the selected features plus any
	// force-input features the dataset carries.
	Select(ds dataset.Dataset) (dataset.Dataset, error)

	// FeaturesScore returns the mapped input-feature importances, or nil if
	// selection never computed importances.
	FeaturesScore() *Scores
}
