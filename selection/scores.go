package selection

import "sort"

// ScoreEntry is one feature's importance score.
type ScoreEntry struct {
	Feature string  `json:"feature"`
	Score   float64 `json:"score"`
}

// Scores is an importance table ordered by score descending. Ties keep the
// order the entries were supplied in (stable sort), so aggregation results
// are deterministic.
type Scores struct {
	entries []ScoreEntry
	index   map[string]float64
}

// NewScores builds an ordered score table from entries. Input order is the
// tie-break order. Duplicate feature names keep the last score supplied.
func NewScores(entries []ScoreEntry) *Scores {
	sorted := append([]ScoreEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	index := make(map[string]float64, len(sorted))
	for _, e := range sorted {
		index[e.Feature] = e.Score
	}
	return &Scores{entries: sorted, index: index}
}

// Len returns the number of scored features.
func (s *Scores) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Get returns the score of a feature.
func (s *Scores) Get(feature string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	v, ok := s.index[feature]
	return v, ok
}

// Names returns the feature names in descending score order.
func (s *Scores) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Feature
	}
	return names
}

// Entries returns a copy of the ordered entries.
func (s *Scores) Entries() []ScoreEntry {
	if s == nil {
		return nil
	}
	return append([]ScoreEntry(nil), s.entries...)
}
