// Package validation provides the train/valid iterator abstraction the
// selection layer is fit against, together with concrete iterators: a dummy
// iterator that validates on its own train data, a holdout iterator with a
// fixed train/valid pair, and a k-fold iterator.
package validation

import (
	"fmt"

	"github.com/OlgaCeban/LightAutoML/dataset"
)

// FeatureSelector is the minimal selector contract the iterators consume.
// Fitting must be idempotent; SelectedFeatures reports an error until the
// selector has been fit.
type FeatureSelector interface {
	Fit(tv TrainValidIterator) error
	SelectedFeatures() ([]string, error)
}

// FeaturesPipeline derives engineered feature columns from a dataset. Derived
// feature names may replace or augment the originals. FitTransform learns the
// transform parameters on train data; Transform applies the learned transform
// to further datasets.
type FeaturesPipeline interface {
	FitTransform(train dataset.Dataset) (dataset.Dataset, error)
	Transform(ds dataset.Dataset) (dataset.Dataset, error)
}

// TrainValidIterator yields train/validation splits of a dataset and supports
// feature-set transformations. Every transformation returns a new iterator;
// the receiver is left untouched.
type TrainValidIterator interface {
	// Features returns the ordered feature names currently visible.
	Features() []string

	// ConvertToHoldoutIterator derives an iterator with a single fixed
	// validation split.
	ConvertToHoldoutIterator() (TrainValidIterator, error)

	// ApplyFeaturePipeline returns an iterator over the transformed features.
	ApplyFeaturePipeline(p FeaturesPipeline) (TrainValidIterator, error)

	// ApplySelector fits the selector if needed and returns an iterator
	// restricted to its selected features.
	ApplySelector(s FeatureSelector) (TrainValidIterator, error)
}

// Supervised is implemented by iterators that carry a validation target,
// enabling score-based importance estimation on the holdout split.
type Supervised interface {
	Valid() dataset.Dataset
	ValidTarget() []float64
}

// HoldoutIterator is a TrainValidIterator with a single fixed train/valid
// pair.
type HoldoutIterator struct {
	train, valid             dataset.Dataset
	trainTarget, validTarget []float64
}

// NewHoldoutIterator builds a holdout iterator over a train/valid pair.
func NewHoldoutIterator(train, valid dataset.Dataset) *HoldoutIterator {
	return &HoldoutIterator{train: train, valid: valid}
}

// NewSupervisedHoldoutIterator builds a holdout iterator that also carries
// target values for both splits.
func NewSupervisedHoldoutIterator(train, valid dataset.Dataset, trainTarget, validTarget []float64) *HoldoutIterator {
	return &HoldoutIterator{train: train, valid: valid, trainTarget: trainTarget, validTarget: validTarget}
}

// Train returns the train split.
func (it *HoldoutIterator) Train() dataset.Dataset { return it.train }

// Valid returns the validation split.
func (it *HoldoutIterator) Valid() dataset.Dataset { return it.valid }

// TrainTarget returns the train target values, or nil if unsupervised.
func (it *HoldoutIterator) TrainTarget() []float64 { return it.trainTarget }

// ValidTarget returns the validation target values, or nil if unsupervised.
func (it *HoldoutIterator) ValidTarget() []float64 { return it.validTarget }

// Features returns the train split's feature names.
func (it *HoldoutIterator) Features() []string { return it.train.Features() }

// ConvertToHoldoutIterator returns the iterator itself; it already holds a
// fixed validation split.
func (it *HoldoutIterator) ConvertToHoldoutIterator() (TrainValidIterator, error) {
	return it, nil
}

// ApplyFeaturePipeline fits the pipeline on train data, transforms both
// splits and returns an iterator over the derived features.
func (it *HoldoutIterator) ApplyFeaturePipeline(p FeaturesPipeline) (TrainValidIterator, error) {
	train, err := p.FitTransform(it.train)
	if err != nil {
		return nil, fmt.Errorf("apply feature pipeline to train split: %w", err)
	}
	valid, err := p.Transform(it.valid)
	if err != nil {
		return nil, fmt.Errorf("apply feature pipeline to valid split: %w", err)
	}
	return &HoldoutIterator{train: train, valid: valid, trainTarget: it.trainTarget, validTarget: it.validTarget}, nil
}

// ApplySelector fits the selector against the iterator and returns an
// iterator restricted to its selected features.
func (it *HoldoutIterator) ApplySelector(s FeatureSelector) (TrainValidIterator, error) {
	selected, err := fitAndSelect(s, it)
	if err != nil {
		return nil, err
	}
	train, err := it.train.Project(selected)
	if err != nil {
		return nil, fmt.Errorf("project train split: %w", err)
	}
	valid, err := it.valid.Project(selected)
	if err != nil {
		return nil, fmt.Errorf("project valid split: %w", err)
	}
	return &HoldoutIterator{train: train, valid: valid, trainTarget: it.trainTarget, validTarget: it.validTarget}, nil
}

// DummyIterator validates on its own train data. It is the cheapest iterator
// to fit a selector against when no separate validation split exists.
type DummyIterator struct {
	data   dataset.Dataset
	target []float64
}

// NewDummyIterator builds a dummy iterator over a single dataset.
func NewDummyIterator(data dataset.Dataset) *DummyIterator {
	return &DummyIterator{data: data}
}

// NewSupervisedDummyIterator builds a dummy iterator that carries target
// values.
func NewSupervisedDummyIterator(data dataset.Dataset, target []float64) *DummyIterator {
	return &DummyIterator{data: data, target: target}
}

// Train returns the underlying dataset.
func (it *DummyIterator) Train() dataset.Dataset { return it.data }

// Valid returns the underlying dataset; the dummy iterator validates on
// train data.
func (it *DummyIterator) Valid() dataset.Dataset { return it.data }

// ValidTarget returns the target values, or nil if unsupervised.
func (it *DummyIterator) ValidTarget() []float64 { return it.target }

// Features returns the dataset's feature names.
func (it *DummyIterator) Features() []string { return it.data.Features() }

// ConvertToHoldoutIterator returns the iterator itself; train and valid
// already coincide.
func (it *DummyIterator) ConvertToHoldoutIterator() (TrainValidIterator, error) {
	return it, nil
}

// ApplyFeaturePipeline fits and applies the pipeline to the dataset.
func (it *DummyIterator) ApplyFeaturePipeline(p FeaturesPipeline) (TrainValidIterator, error) {
	data, err := p.FitTransform(it.data)
	if err != nil {
		return nil, fmt.Errorf("apply feature pipeline: %w", err)
	}
	return &DummyIterator{data: data, target: it.target}, nil
}

// ApplySelector fits the selector and narrows the dataset to its selection.
func (it *DummyIterator) ApplySelector(s FeatureSelector) (TrainValidIterator, error) {
	selected, err := fitAndSelect(s, it)
	if err != nil {
		return nil, err
	}
	data, err := it.data.Project(selected)
	if err != nil {
		return nil, fmt.Errorf("project dataset: %w", err)
	}
	return &DummyIterator{data: data, target: it.target}, nil
}

func fitAndSelect(s FeatureSelector, tv TrainValidIterator) ([]string, error) {
	if err := s.Fit(tv); err != nil {
		return nil, fmt.Errorf("fit selector: %w", err)
	}
	selected, err := s.SelectedFeatures()
	if err != nil {
		return nil, err
	}
	return selected, nil
}
