package reconcile

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"onboardly/internal/models"
)

// ErrDataSource marks a reference dataset that could not be read or decoded.
// It is fatal to the store: callers must surface it before attempting any
// match.
var ErrDataSource = eris.New("reference dataset unavailable")

// Store is an ordered, read-only collection of reference license records.
// Iteration order is load order; the matcher's tie-breaking depends on it.
// Because the store is never mutated after load it is safe to share across
// concurrent validation requests without locking.
type Store struct {
	records []models.LicenseRecord
}

// NewStore wraps an already-loaded record slice, e.g. rows read from
// Postgres. The slice is owned by the store afterwards.
func NewStore(records []models.LicenseRecord) *Store {
	return &Store{records: records}
}

// LoadFile reads a JSON array of license records from path.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(ErrDataSource, "read %s: %v", path, err)
	}
	var records []models.LicenseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, eris.Wrapf(ErrDataSource, "decode %s: %v", path, err)
	}
	return &Store{records: records}, nil
}

// All returns the records in load order. Callers must not mutate them.
func (s *Store) All() []models.LicenseRecord { return s.records }

// Len reports the number of loaded records.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}
