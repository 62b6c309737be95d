// Package dataset holds the process-wide in-memory snapshot of the corporate
// AI investment dataset. The snapshot is loaded once at startup, validated,
// and then only read; requests never mutate it.
package dataset

import (
	"context"
	"fmt"

	"dashboard_backend/internal/feature/dataset/domain"
	"dashboard_backend/internal/feature/dataset/domain/entity"
)

// Loader reads every record of the dataset from a backing source.
// Implementations live in the dataset feature's adapters (CSV and SQLite).
type Loader interface {
	Load(ctx context.Context) ([]entity.Record, error)
}

// Repository is the read-only access the analysis features consume.
// *Store implements it directly; the cache layer wraps it transparently.
type Repository interface {
	// Records returns every record in dataset order.
	Records(ctx context.Context) ([]entity.Record, error)

	// Filtered returns the records matching the filter, in dataset order.
	Filtered(ctx context.Context, filter entity.Filter) ([]entity.Record, error)
}

// Store is the immutable dataset snapshot shared by every request.
type Store struct {
	records []entity.Record
}

var _ Repository = (*Store)(nil)

// Load reads the whole dataset through the loader and returns a store
// holding it. An empty dataset is rejected: the dashboard has nothing to
// render without records, so startup should fail loudly instead.
func Load(ctx context.Context, loader Loader) (*Store, error) {
	records, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, domain.ErrEmptyDataset
	}
	return &Store{records: records}, nil
}

// Records returns a copy of every record so callers cannot alias the snapshot.
func (s *Store) Records(ctx context.Context) ([]entity.Record, error) {
	out := make([]entity.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Filtered applies the filter to the snapshot. The result is always a fresh
// slice (see entity.Filter.Apply), so it is safe to hand to the cache layer.
func (s *Store) Filtered(ctx context.Context, filter entity.Filter) ([]entity.Record, error) {
	return filter.Apply(s.records), nil
}

// Len reports how many records the snapshot holds.
func (s *Store) Len() int {
	return len(s.records)
}
