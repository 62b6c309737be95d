package db

import (
	"path/filepath"
	"strings"
	"testing"

	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// seedSQLiteFile は読み取り専用オープンの検証用にSQLiteファイルを実体化します。
func seedSQLiteFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dataset.sqlite")
	seed, err := gorm.Open(gsqlite.Open(path), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to create seed database: %v", err)
	}
	if err := seed.Exec("CREATE TABLE records (id INTEGER PRIMARY KEY)").Error; err != nil {
		t.Fatalf("failed to create seed table: %v", err)
	}
	sqlDB, err := seed.DB()
	if err != nil {
		t.Fatalf("failed to get seed connection: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("failed to close seed connection: %v", err)
	}
	return path
}

// TestOpenSQLite_OpensExistingFile は既存のSQLiteファイルが開けることを検証します。
func TestOpenSQLite_OpensExistingFile(t *testing.T) {
	t.Parallel()

	path := seedSQLiteFile(t)

	gdb, err := OpenSQLite(path)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gdb == nil {
		t.Fatal("expected a database handle, got nil")
	}
}

// TestOpenSQLite_ReadOnly は返されたハンドルが読み取り専用であることを検証します。
func TestOpenSQLite_ReadOnly(t *testing.T) {
	t.Parallel()

	path := seedSQLiteFile(t)

	gdb, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := gdb.Exec("CREATE TABLE scratch (id INTEGER)").Error; err == nil {
		t.Error("expected write to fail on a read-only handle")
	}
}

// TestOpenSQLite_MissingFile は存在しないファイルを指定した場合にエラーが返されることを検証します。
// mode=roのため空のデータベースが作られることもありません。
func TestOpenSQLite_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.sqlite")

	_, err := OpenSQLite(path)

	if err == nil {
		t.Fatal("expected error for missing dataset file, got nil")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("expected error to mention %q, got %v", path, err)
	}
}
