// Package tracker applies user mutations to daily records. It loads records
// from a Store, runs overdue derivation and reconciliation, and writes the
// results back, one calendar day at a time.
package tracker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/akyairhashvil/DPT/internal/models"
	"github.com/akyairhashvil/DPT/internal/overdue"
	"github.com/akyairhashvil/DPT/internal/util"
)

// Tracker is safe for concurrent use.
type Tracker struct {
	store Store
	now   func() time.Time
	newID func() string
	log   *slog.Logger
	locks *dateLocks
	saves *Debouncer
}

type Option func(*Tracker)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithIDs replaces the identifier generator.
func WithIDs(newID func() string) Option {
	return func(t *Tracker) { t.newID = newID }
}

func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) { t.log = l }
}

// WithSaveDelay sets the quiet period for ScheduleJournal.
func WithSaveDelay(d time.Duration) Option {
	return func(t *Tracker) { t.saves = NewDebouncer(d) }
}

func New(store Store, opts ...Option) *Tracker {
	t := &Tracker{
		store: store,
		now:   time.Now,
		newID: models.NewID,
		log:   util.DiscardLogger(),
		locks: newDateLocks(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.saves == nil {
		t.saves = NewDebouncer(2 * time.Second)
	}
	return t
}

// Today returns the current date in the tracker's clock.
func (t *Tracker) Today() string {
	return models.FormatDate(t.now())
}

func (t *Tracker) env() overdue.Env {
	return overdue.Env{Now: t.now, NewID: t.newID}
}

func (t *Tracker) storageErr(op, date string, err error) error {
	t.log.Error("storage failure", "op", op, "date", date, "err", err)
	return &StorageError{Op: op, Date: date, Err: err}
}

// Record returns the record for date, or a fresh unsaved one when the day
// has none. When the read fails the fresh record is returned together with
// a *StorageError.
func (t *Tracker) Record(ctx context.Context, date string) (*models.DailyRecord, error) {
	if err := models.ValidateDate(date); err != nil {
		return nil, err
	}
	r, err := t.store.GetByDate(ctx, date)
	if err != nil {
		return models.NewRecord(date, t.now()), t.storageErr("load", date, err)
	}
	if r == nil {
		return models.NewRecord(date, t.now()), nil
	}
	return r, nil
}

// history returns every stored record, or none when the read fails.
func (t *Tracker) history(ctx context.Context) ([]*models.DailyRecord, error) {
	all, err := t.store.GetAll(ctx)
	if err != nil {
		return nil, t.storageErr("load history", "", err)
	}
	return all, nil
}

// loadForWrite reads the record a mutation will replace. Unlike Record it
// refuses to continue after a failed read so stored data is never
// overwritten by an empty day.
func (t *Tracker) loadForWrite(ctx context.Context, date string) (*models.DailyRecord, error) {
	if err := models.ValidateDate(date); err != nil {
		return nil, err
	}
	r, err := t.store.GetByDate(ctx, date)
	if err != nil {
		return nil, t.storageErr("load", date, err)
	}
	if r == nil {
		return models.NewRecord(date, t.now()), nil
	}
	return r.Clone(), nil
}

func (t *Tracker) put(ctx context.Context, r *models.DailyRecord) error {
	if err := t.store.Put(ctx, r); err != nil {
		return t.storageErr("save", r.Date, err)
	}
	return nil
}

// mutate loads date under its lock, applies fn to a private copy, stamps
// and saves it. Nothing is written when fn fails.
func (t *Tracker) mutate(ctx context.Context, date string, fn func(r *models.DailyRecord, now time.Time) error) (*models.DailyRecord, error) {
	unlock := t.locks.lock(date)
	defer unlock()
	return t.mutateLocked(ctx, date, fn)
}

func (t *Tracker) mutateLocked(ctx context.Context, date string, fn func(r *models.DailyRecord, now time.Time) error) (*models.DailyRecord, error) {
	r, err := t.loadForWrite(ctx, date)
	if err != nil {
		return nil, err
	}
	now := t.now()
	if err := fn(r, now); err != nil {
		if errors.Is(err, errUnchanged) {
			return r, nil
		}
		return nil, err
	}
	r.Touch(now)
	if err := t.put(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Close flushes pending debounced writes.
func (t *Tracker) Close() {
	t.saves.Flush()
}
