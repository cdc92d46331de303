package database

import (
	"context"
	"testing"

	"github.com/akyairhashvil/DPT/internal/models"
	"github.com/akyairhashvil/DPT/internal/testutil"
)

type TestDataBuilder struct {
	t   *testing.T
	ctx context.Context
	db  *Database
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

// WithDays stores an empty record per date.
func (b *TestDataBuilder) WithDays(dates ...string) *TestDataBuilder {
	b.t.Helper()
	for _, date := range dates {
		b.WithRecord(testutil.NewRecord(date).Build())
	}
	return b
}

func (b *TestDataBuilder) WithRecord(r *models.DailyRecord) *TestDataBuilder {
	b.t.Helper()
	if err := b.db.Put(b.ctx, r); err != nil {
		b.t.Fatalf("Put %s failed: %v", r.Date, err)
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}
