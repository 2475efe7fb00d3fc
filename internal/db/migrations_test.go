package db

import (
	"path/filepath"
	"testing"
)

func TestMigrationsApplyOnceAcrossReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moveday.db")

	database, err := Open(path)
	if err != nil {
		t.Fatalf("first Open() error = %v", err)
	}

	var count int64
	if err := database.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&count).Error; err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if count != 3 {
		t.Fatalf("schema_migrations holds %d rows, want 3", count)
	}
	if err := database.Close(); err != nil {
		t.Fatalf("close database: %v", err)
	}

	// Reopening must find the recorded versions and apply nothing new.
	database, err = Open(path)
	if err != nil {
		t.Fatalf("second Open() error = %v", err)
	}
	defer database.Close()

	if err := database.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&count).Error; err != nil {
		t.Fatalf("count schema_migrations after reopen: %v", err)
	}
	if count != 3 {
		t.Fatalf("schema_migrations holds %d rows after reopen, want 3", count)
	}
}

func TestLoadEmbeddedMigrationsOrdered(t *testing.T) {
	migrations, err := loadEmbeddedMigrations()
	if err != nil {
		t.Fatalf("loadEmbeddedMigrations() error = %v", err)
	}
	if len(migrations) != 3 {
		t.Fatalf("loaded %d migrations, want 3", len(migrations))
	}
	for index := 1; index < len(migrations); index++ {
		if migrations[index].Order <= migrations[index-1].Order {
			t.Fatalf("migration %s out of order after %s",
				migrations[index].Name, migrations[index-1].Name)
		}
	}
}

func TestSplitSQLStatements(t *testing.T) {
	statements := splitSQLStatements("CREATE TABLE a (id INTEGER);\n\nCREATE INDEX b ON a(id);\n")
	if len(statements) != 2 {
		t.Fatalf("splitSQLStatements() returned %d statements, want 2", len(statements))
	}
	if statements[0] != "CREATE TABLE a (id INTEGER)" {
		t.Fatalf("first statement = %q", statements[0])
	}
}
