// Package store persists fitted selection decisions using BoltDB. A
// long-running AutoML deployment can reload a stored decision and skip
// re-fitting selection on unchanged data.
package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"go.etcd.io/bbolt"

	"github.com/OlgaCeban/LightAutoML/selection"
)

const decisionsBucket = "decisions" // Bucket name for stored selection decisions

// Decision is the serializable outcome of a fitted selector.
type Decision struct {
	Name             string                 `json:"name"`
	SelectedFeatures []string               `json:"selected_features"`
	InFeatures       []string               `json:"in_features"`
	Importances      []selection.ScoreEntry `json:"importances,omitempty"`
	FittedAt         time.Time              `json:"fitted_at"`
}

// DecisionFromSelector snapshots a fitted selector into a Decision.
func DecisionFromSelector(name string, sel selection.Selector) (Decision, error) {
	selected, err := sel.SelectedFeatures()
	if err != nil {
		return Decision{}, err
	}
	in, err := sel.InFeatures()
	if err != nil {
		return Decision{}, err
	}

	return Decision{
		Name:             name,
		SelectedFeatures: selected,
		InFeatures:       in,
		Importances:      sel.FeaturesScore().Entries(),
		FittedAt:         time.Now(),
	}, nil
}

// Store provides persistent storage for selection decisions.
type Store struct {
	db *bbolt.DB
}

// New opens (or creates) the decision database under dataPath.
func New(dataPath string) (*Store, error) {
	dbPath := filepath.Join(dataPath, "selection-data.db")

	db, err := bbolt.Open(dbPath, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(decisionsBucket)); err != nil {
			return fmt.Errorf("create decisions bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveDecision stores a decision under its name, overwriting any previous
// decision with the same name.
func (s *Store) SaveDecision(d Decision) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(decisionsBucket))

		data, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("marshal decision: %w", err)
		}
		return b.Put([]byte(d.Name), data)
	})
}

// LoadDecision retrieves a decision by name. The second return value reports
// whether the decision exists.
func (s *Store) LoadDecision(name string) (Decision, bool, error) {
	var d Decision
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(decisionsBucket)).Get([]byte(name))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &d); err != nil {
			return fmt.Errorf("unmarshal decision %q: %w", name, err)
		}
		found = true
		return nil
	})
	if err != nil {
		return Decision{}, false, err
	}
	return d, found, nil
}

// ListDecisions returns the names of all stored decisions in key order.
func (s *Store) ListDecisions() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(decisionsBucket)).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// DeleteDecision removes a stored decision. Deleting a missing decision is
// not an error.
func (s *Store) DeleteDecision(name string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(decisionsBucket)).Delete([]byte(name))
	})
	if err != nil {
		return err
	}
	log.Debug().Str("decision", name).Msg("selection decision deleted")
	return nil
}
