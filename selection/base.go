package selection

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/OlgaCeban/LightAutoML/dataset"
	"github.com/OlgaCeban/LightAutoML/mlalgo"
	"github.com/OlgaCeban/LightAutoML/pipeline"
	"github.com/OlgaCeban/LightAutoML/validation"
)

// SelectionStrategy makes the actual selection decision once the base
// pipeline has prepared the iterator. Every concrete selector implements it.
type SelectionStrategy interface {
	// PerformSelection returns the ordered feature names to keep.
	PerformSelection(tv validation.TrainValidIterator) ([]string, error)
}

// Tracker receives selection observability events. The metrics package
// provides a Prometheus-backed implementation.
type Tracker interface {
	SelectionDuration(d time.Duration)
	FeaturesSelected(n int)
	FeaturesDropped(n int)
	SelectionErrorsInc()
}

// Options configures a selection pipeline. All fields are optional.
type Options struct {
	// FeaturesPipeline derives engineered columns before the model sees the
	// data.
	FeaturesPipeline validation.FeaturesPipeline

	// Algo is the model driving importance estimation. An unfitted algo is
	// cloned at construction, so the caller's instance stays untouched; a
	// fitted algo is borrowed read-only.
	Algo mlalgo.MLAlgo

	// Tuner searches hyperparameters for an unfitted Algo. Nil resolves to
	// mlalgo.DefaultTuner.
	Tuner mlalgo.ParamsTuner

	// Estimator scores the output features after the model is fit.
	Estimator ImportanceEstimator

	// FitOnHoldout converts the iterator to its holdout variant before
	// fitting.
	FitOnHoldout bool

	// Tracker receives fit observability events.
	Tracker Tracker
}

// Pipeline is the base selection orchestrator. Concrete selectors embed a
// *Pipeline and pass themselves in as the SelectionStrategy.
//
// The lifecycle has exactly two phases, unfit and fit, with a single
// transition inside Fit. There is no reset. Instances are not safe for
// concurrent use.
type Pipeline struct {
	featuresPipeline validation.FeaturesPipeline
	algo             mlalgo.MLAlgo
	tuner            mlalgo.ParamsTuner
	estimator        ImportanceEstimator
	fitOnHoldout     bool
	tracker          Tracker
	strategy         SelectionStrategy

	selected   []string // nil until fitted
	inFeatures []string
	mapped     *Scores
}

// NewPipeline builds the base pipeline for a concrete selector. The strategy
// is the selector itself.
func NewPipeline(opts Options, strategy SelectionStrategy) *Pipeline {
	algo := opts.Algo
	tuner := opts.Tuner
	if algo != nil {
		if tuner == nil {
			tuner = mlalgo.DefaultTuner{}
		}
		if !algo.IsFitted() {
			algo = algo.Clone()
		}
	}

	return &Pipeline{
		featuresPipeline: opts.FeaturesPipeline,
		algo:             algo,
		tuner:            tuner,
		estimator:        opts.Estimator,
		fitOnHoldout:     opts.FitOnHoldout,
		tracker:          opts.Tracker,
		strategy:         strategy,
	}
}

// IsFitted reports whether a selection decision exists.
func (p *Pipeline) IsFitted() bool {
	return p.selected != nil
}

// SelectedFeatures returns the ordered kept feature names.
func (p *Pipeline) SelectedFeatures() ([]string, error) {
	if !p.IsFitted() {
		return nil, ErrNotFitted
	}
	return append([]string(nil), p.selected...), nil
}

// InFeatures returns the ordered feature names seen at fit time.
func (p *Pipeline) InFeatures() ([]string, error) {
	if p.inFeatures == nil {
		return nil, ErrNotFitted
	}
	return append([]string(nil), p.inFeatures...), nil
}

// DroppedFeatures returns the input features that were not selected,
// preserving input order.
func (p *Pipeline) DroppedFeatures() ([]string, error) {
	if !p.IsFitted() {
		return nil, ErrNotFitted
	}

	kept := make(map[string]struct{}, len(p.selected))
	for _, f := range p.selected {
		kept[f] = struct{}{}
	}

	dropped := make([]string, 0, len(p.inFeatures))
	for _, f := range p.inFeatures {
		if _, ok := kept[f]; !ok {
			dropped = append(dropped, f)
		}
	}
	return dropped, nil
}

// Fit drives the selection flow: holdout conversion, feature-pipeline
// application, model fit or reuse, importance estimation, and the strategy's
// selection decision. Fitting is idempotent.
func (p *Pipeline) Fit(tv validation.TrainValidIterator) error {
	if p.IsFitted() {
		return nil
	}
	start := time.Now()

	if err := p.fit(tv); err != nil {
		if p.tracker != nil {
			p.tracker.SelectionErrorsInc()
		}
		return err
	}

	if p.tracker != nil {
		p.tracker.SelectionDuration(time.Since(start))
		p.tracker.FeaturesSelected(len(p.selected))
		p.tracker.FeaturesDropped(len(p.inFeatures) - len(p.selected))
	}
	log.Debug().
		Int("in_features", len(p.inFeatures)).
		Int("selected", len(p.selected)).
		Dur("duration", time.Since(start)).
		Msg("selection fit complete")
	return nil
}

func (p *Pipeline) fit(tv validation.TrainValidIterator) error {
	var err error
	if p.fitOnHoldout {
		if tv, err = tv.ConvertToHoldoutIterator(); err != nil {
			return fmt.Errorf("convert to holdout iterator: %w", err)
		}
	}

	p.inFeatures = append([]string(nil), tv.Features()...)

	if p.featuresPipeline != nil {
		if tv, err = tv.ApplyFeaturePipeline(p.featuresPipeline); err != nil {
			return err
		}
	}

	var preds dataset.Dataset
	if p.algo != nil {
		if p.algo.IsFitted() {
			if !equalFeatures(p.algo.Features(), tv.Features()) {
				return fmt.Errorf("%w: algo %s", ErrFeatureMismatch, p.algo.Name())
			}
		} else {
			if p.algo, preds, err = mlalgo.TuneAndFitPredict(p.algo, p.tuner, tv); err != nil {
				return err
			}
		}
	}

	if p.estimator != nil {
		if err = p.estimator.Fit(tv, p.algo, preds); err != nil {
			return fmt.Errorf("fit importance estimator: %w", err)
		}
	}

	selected, err := p.strategy.PerformSelection(tv)
	if err != nil {
		return err
	}
	if selected == nil {
		selected = []string{}
	}
	p.selected = selected
	return nil
}

// Select projects the dataset onto the selected features. Features whose
// role carries ForceInput are appended after the selected ones, in the
// dataset's original feature order. The source dataset is left untouched.
func (p *Pipeline) Select(ds dataset.Dataset) (dataset.Dataset, error) {
	selected, err := p.SelectedFeatures()
	if err != nil {
		return nil, err
	}

	kept := make(map[string]struct{}, len(selected))
	for _, f := range selected {
		kept[f] = struct{}{}
	}

	roles := ds.Roles()
	for _, f := range ds.Features() {
		if _, ok := kept[f]; ok {
			continue
		}
		if roles[f].ForceInput {
			selected = append(selected, f)
			kept[f] = struct{}{}
		}
	}

	return ds.Project(selected)
}

// MapRawFeatureImportances re-attributes raw output-feature scores to the
// input features that produced them, summing scores that trace to the same
// input. The result is stored sorted by score descending; equal scores keep
// first-seen order.
func (p *Pipeline) MapRawFeatureImportances(raw *Scores) error {
	in, err := p.InFeatures()
	if err != nil {
		return err
	}

	outNames := raw.Names()
	mapped := pipeline.MapPipelineNames(in, outNames)

	sums := make(map[string]float64, len(in))
	order := make([]string, 0, len(in))
	for i, out := range outNames {
		name := mapped[i]
		if _, seen := sums[name]; !seen {
			order = append(order, name)
		}
		score, _ := raw.Get(out)
		sums[name] += score
	}

	entries := make([]ScoreEntry, len(order))
	for i, name := range order {
		entries[i] = ScoreEntry{Feature: name, Score: sums[name]}
	}
	p.mapped = NewScores(entries)
	return nil
}

// FeaturesScore returns the mapped input-feature importances, or nil if
// selection never computed importances.
func (p *Pipeline) FeaturesScore() *Scores {
	return p.mapped
}

func equalFeatures(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
