package shared

import (
	"testing"
)

func TestMigrations(t *testing.T) {
	t.Run("RunMigrations", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}

		for _, table := range []string{"preferences", "search_history"} {
			var name string
			err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
			if err != nil {
				t.Errorf("expected table %s to exist: %v", table, err)
			}
		}

		t.Run("Idempotent", func(t *testing.T) {
			if err := RunMigrations(db); err != nil {
				t.Errorf("re-running migrations should be a no-op: %v", err)
			}
		})
	})

	t.Run("RollbackMigration", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		t.Run("Nothing To Rollback", func(t *testing.T) {
			if err := createMigrationsTable(db); err != nil {
				t.Fatalf("failed to create tracking table: %v", err)
			}
			if err := RollbackMigration(db); err == nil {
				t.Error("expected error when no migrations applied")
			}
		})

		t.Run("Drops Tables", func(t *testing.T) {
			if err := RunMigrations(db); err != nil {
				t.Fatalf("failed to run migrations: %v", err)
			}

			if err := RollbackMigration(db); err != nil {
				t.Fatalf("failed to rollback: %v", err)
			}

			var name string
			err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='preferences'").Scan(&name)
			if err == nil {
				t.Error("expected preferences table to be dropped")
			}
		})
	})
}
