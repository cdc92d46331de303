package database

import (
	"context"
	"database/sql"
	"errors"
)

// GetSetting returns the value stored under key and whether it was set.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	var value sql.NullString
	err := d.withDBContext(ctx, func(ctx context.Context) error {
		return d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	})
	if err != nil || !value.Valid {
		return "", false
	}
	return value.String, true
}

// SetSetting stores value under key; an empty value is stored as NULL.
func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, nullableString(value))
		return wrapErr(EntitySetting, "set", key, err)
	})
}

// DeleteSetting removes key. Missing keys are ignored.
func (d *Database) DeleteSetting(ctx context.Context, key string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return wrapErr(EntitySetting, "delete", key, err)
	})
}
