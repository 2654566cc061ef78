package store

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/mediacat/mediacat/internal/migrations"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}
