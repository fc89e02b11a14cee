package selection

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/OlgaCeban/LightAutoML/validation"
)

// CutoffSelector keeps the input features whose mapped importance exceeds a
// cutoff. It requires an importance estimator; a model is usually configured
// too so the estimator has something to score. When every score falls at or
// below the cutoff, the single best feature is kept so downstream stages
// never see an empty frame.
type CutoffSelector struct {
	*Pipeline
	cutoff float64
}

// NewCutoffSelector creates an importance-cutoff selector. Opts.Estimator
// must be set.
func NewCutoffSelector(cutoff float64, opts Options) (*CutoffSelector, error) {
	if opts.Estimator == nil {
		return nil, fmt.Errorf("cutoff selector: importance estimator is required")
	}

	s := &CutoffSelector{cutoff: cutoff}
	s.Pipeline = NewPipeline(opts, s)
	return s, nil
}

// PerformSelection maps the estimator's raw scores back to input features
// and keeps those scoring strictly above the cutoff, in descending score
// order.
func (s *CutoffSelector) PerformSelection(_ validation.TrainValidIterator) ([]string, error) {
	raw := s.estimator.FeaturesScore()
	if raw.Len() == 0 {
		return nil, fmt.Errorf("cutoff selector: importance estimator produced no scores")
	}

	if err := s.MapRawFeatureImportances(raw); err != nil {
		return nil, err
	}

	entries := s.mapped.Entries()
	selected := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Score > s.cutoff {
			selected = append(selected, e.Feature)
		}
	}

	if len(selected) == 0 {
		log.Warn().
			Float64("cutoff", s.cutoff).
			Str("best", entries[0].Feature).
			Msg("no feature importance above cutoff, keeping best feature")
		selected = append(selected, entries[0].Feature)
	}
	return selected, nil
}
