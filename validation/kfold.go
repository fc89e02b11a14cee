package validation

import (
	"fmt"

	"github.com/OlgaCeban/LightAutoML/dataset"
)

// KFoldIterator partitions a dataset into contiguous folds. Converting to a
// holdout iterator carves the last fold off as the validation split; the
// underlying dataset must support row slicing for that.
type KFoldIterator struct {
	data   dataset.Dataset
	target []float64
	nFolds int
}

// NewKFoldIterator builds a k-fold iterator. nFolds values below 2 are
// clamped to 2.
func NewKFoldIterator(data dataset.Dataset, target []float64, nFolds int) *KFoldIterator {
	if nFolds < 2 {
		nFolds = 2
	}
	return &KFoldIterator{data: data, target: target, nFolds: nFolds}
}

// NFolds returns the number of folds.
func (it *KFoldIterator) NFolds() int { return it.nFolds }

// Features returns the dataset's feature names.
func (it *KFoldIterator) Features() []string { return it.data.Features() }

// ConvertToHoldoutIterator carves the last fold off as the fixed validation
// split.
func (it *KFoldIterator) ConvertToHoldoutIterator() (TrainValidIterator, error) {
	slicer, ok := it.data.(dataset.RowSlicer)
	if !ok {
		return nil, fmt.Errorf("convert to holdout: dataset %T does not support row slicing", it.data)
	}

	rows := it.data.Rows()
	cut := rows - rows/it.nFolds
	if cut <= 0 || cut >= rows {
		return nil, fmt.Errorf("convert to holdout: %d rows cannot be split into %d folds", rows, it.nFolds)
	}

	train, err := slicer.SliceRows(0, cut)
	if err != nil {
		return nil, err
	}
	valid, err := slicer.SliceRows(cut, rows)
	if err != nil {
		return nil, err
	}

	if it.target == nil {
		return NewHoldoutIterator(train, valid), nil
	}
	return NewSupervisedHoldoutIterator(train, valid, it.target[:cut], it.target[cut:]), nil
}

// ApplyFeaturePipeline fits the pipeline on the full frame and returns an
// iterator over the derived features. Per-fold refitting is the concern of
// the model layer, not of selection.
func (it *KFoldIterator) ApplyFeaturePipeline(p FeaturesPipeline) (TrainValidIterator, error) {
	data, err := p.FitTransform(it.data)
	if err != nil {
		return nil, fmt.Errorf("apply feature pipeline: %w", err)
	}
	return &KFoldIterator{data: data, target: it.target, nFolds: it.nFolds}, nil
}

// ApplySelector fits the selector and narrows the dataset to its selection.
func (it *KFoldIterator) ApplySelector(s FeatureSelector) (TrainValidIterator, error) {
	selected, err := fitAndSelect(s, it)
	if err != nil {
		return nil, err
	}
	data, err := it.data.Project(selected)
	if err != nil {
		return nil, fmt.Errorf("project dataset: %w", err)
	}
	return &KFoldIterator{data: data, target: it.target, nFolds: it.nFolds}, nil
}
