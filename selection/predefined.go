package selection

import (
	"fmt"
	"sort"
	"strings"

	"github.com/OlgaCeban/LightAutoML/validation"
)

// PredefinedSelector force-selects a fixed set of column names. Fit fails if
// any requested column is missing from the iterator's features. The columns
// are held as a set, so the selection comes out in the iterator's feature
// order, not in the requested order.
type PredefinedSelector struct {
	*Pipeline
	columns map[string]struct{}
}

// NewPredefinedSelector creates a selector for the given columns. Duplicates
// are collapsed.
func NewPredefinedSelector(columns []string) *PredefinedSelector {
	set := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		set[c] = struct{}{}
	}

	s := &PredefinedSelector{columns: set}
	s.Pipeline = NewPipeline(Options{}, s)
	return s
}

// PerformSelection checks that every requested column is present and keeps
// exactly the requested set.
func (s *PredefinedSelector) PerformSelection(tv validation.TrainValidIterator) ([]string, error) {
	features := tv.Features()

	present := make(map[string]struct{}, len(features))
	for _, f := range features {
		present[f] = struct{}{}
	}

	var missing []string
	for c := range s.columns {
		if _, ok := present[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s", ErrColumnsMissing, strings.Join(missing, ", "))
	}

	selected := make([]string, 0, len(s.columns))
	for _, f := range features {
		if _, ok := s.columns[f]; ok {
			selected = append(selected, f)
		}
	}
	return selected, nil
}
