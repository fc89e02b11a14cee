package selection

import (
	"fmt"

	"github.com/OlgaCeban/LightAutoML/validation"
)

// ComposedSelector chains child selectors. Each child narrows the iterator's
// visible feature set before the next one runs; the final decision is the
// last child's selection. Input features are recorded as seen by the first
// child, before any narrowing.
type ComposedSelector struct {
	*Pipeline
	selectors []Selector
}

// NewComposedSelector creates a chain over the given selectors. The chain
// must be non-empty; an empty chain fails at Fit.
func NewComposedSelector(selectors ...Selector) *ComposedSelector {
	s := &ComposedSelector{selectors: selectors}
	s.Pipeline = NewPipeline(Options{}, s)
	return s
}

// Fit runs every child in sequence, narrowing the iterator after each one,
// then records the first child's input features and the last child's
// selection. Fitting is idempotent.
func (s *ComposedSelector) Fit(tv validation.TrainValidIterator) error {
	if s.IsFitted() {
		return nil
	}
	if len(s.selectors) == 0 {
		return ErrEmptyComposition
	}

	var err error
	for i, child := range s.selectors {
		if tv, err = tv.ApplySelector(child); err != nil {
			return fmt.Errorf("apply child selector %d: %w", i, err)
		}
	}

	in, err := s.selectors[0].InFeatures()
	if err != nil {
		return err
	}
	s.inFeatures = in

	selected, err := s.PerformSelection(tv)
	if err != nil {
		return err
	}
	s.selected = selected
	return nil
}

// PerformSelection reports the last child's selection.
func (s *ComposedSelector) PerformSelection(_ validation.TrainValidIterator) ([]string, error) {
	return s.selectors[len(s.selectors)-1].SelectedFeatures()
}

// FeaturesScore returns the last child's mapped importances. Earlier stages'
// scores do not surface; only the terminal stage matters here.
func (s *ComposedSelector) FeaturesScore() *Scores {
	if len(s.selectors) == 0 {
		return nil
	}
	return s.selectors[len(s.selectors)-1].FeaturesScore()
}
