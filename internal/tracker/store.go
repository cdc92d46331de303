package tracker

import (
	"context"

	"github.com/akyairhashvil/DPT/internal/models"
)

// Store persists daily records.
//
// GetByDate returns nil, nil when no record exists for the date. GetAll and
// GetInRange return records ordered by date; GetInRange is inclusive at both
// ends. Put inserts or replaces by id and keeps dates unique.
//
//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=tracker
type Store interface {
	GetByDate(ctx context.Context, date string) (*models.DailyRecord, error)
	GetAll(ctx context.Context) ([]*models.DailyRecord, error)
	Put(ctx context.Context, record *models.DailyRecord) error
	Remove(ctx context.Context, id string) error
	GetInRange(ctx context.Context, start, end string) ([]*models.DailyRecord, error)
}
