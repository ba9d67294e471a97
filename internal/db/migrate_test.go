package db_test

import (
	"context"
	"testing"

	dbfs "github.com/intervyou/intervyou/db"
	"github.com/intervyou/intervyou/internal/db"
)

func TestMigrate(t *testing.T) {
	ctx := context.Background()
	conn, err := db.New(ctx, "file:migrate_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer conn.Close()

	if err := db.Migrate(ctx, conn, dbfs.Migrations); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	// migrations create the application tables
	for _, table := range []string{"users", "interview_sessions"} {
		row := conn.QueryRow(ctx, `SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
		var count int
		if err := row.Scan(&count); err != nil {
			t.Fatalf("check table %s: %v", table, err)
		}
		if count != 1 {
			t.Fatalf("expected table %s to exist", table)
		}
	}

	row := conn.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations`)
	var applied int
	if err := row.Scan(&applied); err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if applied == 0 {
		t.Fatalf("expected at least one recorded migration")
	}

	// running again is a no-op
	if err := db.Migrate(ctx, conn, dbfs.Migrations); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	row = conn.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations`)
	var appliedAgain int
	if err := row.Scan(&appliedAgain); err != nil {
		t.Fatalf("recount applied migrations: %v", err)
	}
	if appliedAgain != applied {
		t.Fatalf("expected idempotent migrate, got %d then %d", applied, appliedAgain)
	}
}
