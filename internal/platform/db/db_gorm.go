// Package db opens database-backed dataset sources.
package db

import (
	"fmt"

	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenSQLite opens a dataset SQLite file read-only. The dataset is a static
// published artifact; mode=ro keeps accidental writes impossible.
func OpenSQLite(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro", path)
	db, err := gorm.Open(gsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite dataset %s: %w", path, err)
	}
	return db, nil
}
