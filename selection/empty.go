package selection

import "github.com/OlgaCeban/LightAutoML/validation"

// EmptySelector performs no selection: it keeps every input feature. It
// needs no model and no importance estimator.
type EmptySelector struct {
	*Pipeline
}

// NewEmptySelector creates an identity selector.
func NewEmptySelector() *EmptySelector {
	s := &EmptySelector{}
	s.Pipeline = NewPipeline(Options{}, s)
	return s
}

// PerformSelection keeps the iterator's full feature list.
func (s *EmptySelector) PerformSelection(tv validation.TrainValidIterator) ([]string, error) {
	return append([]string(nil), tv.Features()...), nil
}
