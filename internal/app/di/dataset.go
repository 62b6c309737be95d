// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"path/filepath"
	"strings"

	datasetadapters "dashboard_backend/internal/feature/dataset/adapters"
	"dashboard_backend/internal/platform/config"
	"dashboard_backend/internal/platform/dataset"
	"dashboard_backend/internal/platform/db"
)

// NewDatasetLoader creates the loader matching the configured dataset file.
// SQLite extensions are read through GORM, everything else as CSV.
func NewDatasetLoader(cfg config.Config) (dataset.Loader, error) {
	switch strings.ToLower(filepath.Ext(cfg.DatasetPath)) {
	case ".sqlite", ".sqlite3", ".db":
		gdb, err := db.OpenSQLite(cfg.DatasetPath)
		if err != nil {
			return nil, err
		}
		return datasetadapters.NewSQLiteLoader(gdb), nil
	default:
		return datasetadapters.NewCSVLoader(cfg.DatasetPath), nil
	}
}

// NewDatasetStore loads the configured dataset into the in-memory snapshot
// shared by every request.
func NewDatasetStore(ctx context.Context, cfg config.Config) (*dataset.Store, error) {
	loader, err := NewDatasetLoader(cfg)
	if err != nil {
		return nil, err
	}
	return dataset.Load(ctx, loader)
}
