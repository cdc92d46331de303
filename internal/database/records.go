package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/akyairhashvil/DPT/internal/models"
)

// GetByDate returns the record for date, or nil when none exists.
func (d *Database) GetByDate(ctx context.Context, date string) (*models.DailyRecord, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (*models.DailyRecord, error) {
		r, err := d.queryOne(ctx, NewRecordQuery().WhereDate(date))
		return r, wrapErr(EntityRecord, "get", date, err)
	})
}

// GetByID returns the record with id, or nil when none exists.
func (d *Database) GetByID(ctx context.Context, id string) (*models.DailyRecord, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (*models.DailyRecord, error) {
		r, err := d.queryOne(ctx, NewRecordQuery().WhereID(id))
		return r, wrapErr(EntityRecord, "get", id, err)
	})
}

// Latest returns the record with the most recent date, or nil when empty.
func (d *Database) Latest(ctx context.Context) (*models.DailyRecord, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (*models.DailyRecord, error) {
		r, err := d.queryOne(ctx, NewRecordQuery().OrderBy("date DESC"))
		return r, wrapErr(EntityRecord, "latest", "", err)
	})
}

// GetAll returns every record ordered by date.
func (d *Database) GetAll(ctx context.Context) ([]*models.DailyRecord, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]*models.DailyRecord, error) {
		out, err := d.queryMany(ctx, NewRecordQuery())
		return out, wrapErr(EntityRecord, "list", "", err)
	})
}

// GetInRange returns records with start <= date <= end ordered by date.
func (d *Database) GetInRange(ctx context.Context, start, end string) ([]*models.DailyRecord, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]*models.DailyRecord, error) {
		out, err := d.queryMany(ctx, NewRecordQuery().WhereBetween(start, end))
		return out, wrapErr(EntityRecord, "range", start+".."+end, err)
	})
}

// Put inserts or replaces record by id. A different record already holding
// the same date yields ErrDuplicateDate.
func (d *Database) Put(ctx context.Context, record *models.DailyRecord) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		return wrapErr(EntityRecord, "put", record.ID, putRecord(ctx, d.DB, record))
	})
}

// PutAll writes records in one transaction; nothing is written on failure.
func (d *Database) PutAll(ctx context.Context, records []*models.DailyRecord) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		return d.WithTx(ctx, func(tx *sql.Tx) error {
			for _, r := range records {
				if err := putRecord(ctx, tx, r); err != nil {
					return wrapErr(EntityRecord, "import", r.ID, err)
				}
			}
			return nil
		})
	})
}

// Remove deletes the record with id. Removing a missing record is not an error.
func (d *Database) Remove(ctx context.Context, id string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
		return wrapErr(EntityRecord, "delete", id, err)
	})
}

// Clear deletes every record.
func (d *Database) Clear(ctx context.Context) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "DELETE FROM records")
		return wrapErr(EntityRecord, "clear", "", err)
	})
}

func (d *Database) Count(ctx context.Context) (int, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (int, error) {
		var n int
		err := d.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM records").Scan(&n)
		return n, wrapErr(EntityRecord, "count", "", err)
	})
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func putRecord(ctx context.Context, db execer, record *models.DailyRecord) error {
	if record == nil {
		return errors.New("nil record")
	}
	if err := models.ValidateDate(record.Date); err != nil {
		return err
	}
	if record.ID == "" {
		record.ID = models.RecordID(record.Date)
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO records (id, date, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		record.ID, record.Date, string(payload),
		formatTime(record.CreatedAt), formatTime(record.UpdatedAt))
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return ErrDuplicateDate
	}
	return err
}

func (d *Database) queryOne(ctx context.Context, q *RecordQuery) (*models.DailyRecord, error) {
	out, err := d.queryMany(ctx, q.Limit(1))
	if err != nil || len(out) == 0 {
		return nil, err
	}
	return out[0], nil
}

func (d *Database) queryMany(ctx context.Context, q *RecordQuery) ([]*models.DailyRecord, error) {
	query, args := q.Build()
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.DailyRecord{}
	for rows.Next() {
		var id, date, payload string
		if err := rows.Scan(&id, &date, &payload); err != nil {
			return nil, err
		}
		r, err := decodeRecord(id, date, payload)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func decodeRecord(id, date, payload string) (*models.DailyRecord, error) {
	var r models.DailyRecord
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return nil, fmt.Errorf("decode payload of %s: %w", id, err)
	}
	// Columns are authoritative for identity.
	r.ID = id
	r.Date = date
	r.Normalize()
	return &r, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return time.Now().UTC().Format(time.RFC3339Nano)
	}
	return t.UTC().Format(time.RFC3339Nano)
}
