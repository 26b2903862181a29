package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testFS(files map[string]string) fstest.MapFS {
	fs := fstest.MapFS{}
	for name, content := range files {
		fs[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fs
}

func TestApply(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS(map[string]string{
		"002_add_bar.sql": `ALTER TABLE foo ADD COLUMN bar TEXT`,
		"001_init.sql":    `CREATE TABLE foo (id TEXT PRIMARY KEY)`,
		"ignore.txt":      `not a migration`,
		"003_add_idx.sql": `CREATE INDEX idx_foo_bar ON foo (bar)`,
	}))

	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if applied != 3 {
		t.Errorf("applied = %d, want 3", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error: %v", err)
	}
	if version != 3 {
		t.Errorf("version = %d, want 3", version)
	}

	// All three statements landed, so the indexed column is queryable.
	if _, err := db.Exec(`INSERT INTO foo (id, bar) VALUES ('a', 'b')`); err != nil {
		t.Errorf("schema incomplete after apply: %v", err)
	}

	t.Run("second apply is a no-op", func(t *testing.T) {
		applied, err := runner.Apply(nil)
		if err != nil {
			t.Fatalf("Apply() error: %v", err)
		}
		if applied != 0 {
			t.Errorf("applied = %d, want 0", applied)
		}
	})
}

func TestApplyStopsAtFailure(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS(map[string]string{
		"001_init.sql":   `CREATE TABLE foo (id TEXT PRIMARY KEY)`,
		"002_broken.sql": `THIS IS NOT SQL`,
	}))

	applied, err := runner.Apply(nil)
	if err == nil {
		t.Fatal("expected the broken migration to fail")
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}

	// The failed step rolled back, so the version stays at the last good one.
	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error: %v", err)
	}
	if version != 1 {
		t.Errorf("version = %d, want 1", version)
	}
}

func TestReadMigrationFiles(t *testing.T) {
	t.Run("rejects duplicate versions", func(t *testing.T) {
		runner := NewRunner(nil, testFS(map[string]string{
			"001_a.sql": `SELECT 1`,
			"01_b.sql": `SELECT 1`,
		}))
		if _, err := runner.ReadMigrationFiles(); err == nil {
			t.Error("expected duplicate version error")
		}
	})

	t.Run("rejects unversioned names", func(t *testing.T) {
		runner := NewRunner(nil, testFS(map[string]string{
			"init.sql": `SELECT 1`,
		}))
		if _, err := runner.ReadMigrationFiles(); err == nil {
			t.Error("expected filename error")
		}
	})
}

func TestValidateVersion(t *testing.T) {
	db := openTestDB(t)
	files := testFS(map[string]string{
		"001_init.sql": `CREATE TABLE foo (id TEXT PRIMARY KEY)`,
	})

	runner := NewRunner(db, files)
	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("ValidateVersion() error: %v", err)
	}

	// A database touched by a newer build carries a version this build
	// does not know about.
	if _, err := db.Exec(`UPDATE schema_version SET version = 99`); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected a newer-schema error")
	}
	if _, err := runner.Apply(nil); err == nil {
		t.Error("Apply() should refuse a newer schema")
	}
}
