package tracker

import (
	"context"

	"github.com/akyairhashvil/DPT/internal/models"
)

// RecordsInRange returns stored records with start <= date <= end.
func (t *Tracker) RecordsInRange(ctx context.Context, start, end string) ([]*models.DailyRecord, error) {
	for _, d := range []string{start, end} {
		if err := models.ValidateDate(d); err != nil {
			return nil, err
		}
	}
	records, err := t.store.GetInRange(ctx, start, end)
	if err != nil {
		return nil, t.storageErr("load range", start, err)
	}
	return records, nil
}

// Summary tallies every stored record between start and end for calendar
// views. Days without a record are omitted.
func (t *Tracker) Summary(ctx context.Context, start, end string) ([]models.Progress, error) {
	records, err := t.RecordsInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]models.Progress, 0, len(records))
	for _, r := range records {
		out = append(out, r.Progress())
	}
	return out, nil
}

// DeleteRecord removes the record of date and any pending journal save for it.
func (t *Tracker) DeleteRecord(ctx context.Context, date string) error {
	if err := models.ValidateDate(date); err != nil {
		return err
	}
	t.CancelJournal(date)
	unlock := t.locks.lock(date)
	defer unlock()
	if err := t.store.Remove(ctx, models.RecordID(date)); err != nil {
		return t.storageErr("delete", date, err)
	}
	return nil
}
