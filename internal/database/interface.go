package database

import (
	"context"

	"github.com/akyairhashvil/DPT/internal/models"
)

// RecordRepository defines the record operations the tracker relies on.
type RecordRepository interface {
	GetByDate(ctx context.Context, date string) (*models.DailyRecord, error)
	GetByID(ctx context.Context, id string) (*models.DailyRecord, error)
	GetAll(ctx context.Context) ([]*models.DailyRecord, error)
	Put(ctx context.Context, record *models.DailyRecord) error
	Remove(ctx context.Context, id string) error
	GetInRange(ctx context.Context, start, end string) ([]*models.DailyRecord, error)
}

// BackupRepository defines bulk and maintenance operations.
type BackupRepository interface {
	PutAll(ctx context.Context, records []*models.DailyRecord) error
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int, error)
	Latest(ctx context.Context) (*models.DailyRecord, error)
	Search(ctx context.Context, query string) ([]Hit, error)
	ExportRecord(ctx context.Context, date string, opts ExportOptions) ([]byte, error)
	ExportBackup(ctx context.Context, opts ExportOptions) ([]byte, error)
	Import(ctx context.Context, data []byte, passphrase string) (int, error)
}

// SettingsRepository stores small key/value preferences.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	RecordRepository
	BackupRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
