package database

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/akyairhashvil/DPT/internal/models"
	"github.com/akyairhashvil/DPT/internal/testutil"
)

func TestMigrateIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.migrate(ctx); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := db.migrate(ctx); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
}

func TestWithTxRollback(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	err := db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?)", "tx", "rollback"); err != nil {
			return err
		}
		return fmt.Errorf("force rollback")
	})
	if err == nil {
		t.Fatalf("expected error from WithTx")
	}

	var count int
	if err := db.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM settings WHERE key = ?", "tx").Scan(&count); err != nil {
		t.Fatalf("query count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback to remove setting, got count %d", count)
	}
}

func TestPutAllIsAtomic(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	good := testutil.NewRecord("2024-01-01").Build()
	bad := testutil.NewRecord("2024-13-40").Build()
	if err := db.PutAll(ctx, []*models.DailyRecord{good, bad}); err == nil {
		t.Fatalf("expected PutAll to fail on invalid date")
	}
	if n, _ := db.Count(ctx); n != 0 {
		t.Fatalf("expected no records after failed batch, got %d", n)
	}
}
