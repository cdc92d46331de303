package tracker

import (
	"context"
	"time"

	"github.com/akyairhashvil/DPT/internal/models"
	"github.com/akyairhashvil/DPT/internal/overdue"
)

// GenerateAutoOverdueTasks derives overdue tasks for date from every earlier
// record and saves them into date's record. It returns only the tasks added
// by this call; a second call with no new history adds nothing. The record
// is written only when something was derived.
func (t *Tracker) GenerateAutoOverdueTasks(ctx context.Context, date string) ([]models.OverdueTaskItem, error) {
	if err := models.ValidateDate(date); err != nil {
		return nil, err
	}
	unlock := t.locks.lock(date)
	defer unlock()

	r, err := t.loadForWrite(ctx, date)
	if err != nil {
		return nil, err
	}
	history, err := t.history(ctx)
	if err != nil {
		return nil, err
	}

	derived := overdue.Derive(date, history, r.OverdueTasks, t.env())
	t.log.Debug("derived overdue tasks", "date", date, "derived", len(derived), "existing", len(r.OverdueTasks))
	if len(derived) == 0 {
		return nil, nil
	}
	r.OverdueTasks = overdue.Merge(r.OverdueTasks, derived)
	r.Touch(t.now())
	if err := t.put(ctx, r); err != nil {
		return nil, err
	}
	return derived, nil
}

// CompleteOverdueTask sets the status of an overdue task on date. For auto
// tasks the item it was derived from receives the same status in its own
// record. The updated record for date is returned.
func (t *Tracker) CompleteOverdueTask(ctx context.Context, date, taskID string, status models.Status) (*models.DailyRecord, error) {
	if err := models.ValidateStatus(status); err != nil {
		return nil, err
	}
	return t.setOverdueStatus(ctx, date, taskID, func(models.Status) models.Status { return status })
}

func (t *Tracker) setOverdueStatus(ctx context.Context, date, taskID string, next func(models.Status) models.Status) (*models.DailyRecord, error) {
	if err := models.ValidateDate(date); err != nil {
		return nil, err
	}
	// Peek without a lock to learn which other day is involved, then take
	// both locks in order and re-read.
	peek, err := t.loadForWrite(ctx, date)
	if err != nil {
		return nil, err
	}
	origin := ""
	if i := findOverdue(peek, taskID); i >= 0 {
		origin = peek.OverdueTasks[i].OriginalDate
	}
	unlock := t.locks.lock(date, origin)
	defer unlock()

	r, err := t.loadForWrite(ctx, date)
	if err != nil {
		return nil, err
	}
	i := findOverdue(r, taskID)
	if i < 0 {
		return nil, ErrItemNotFound
	}
	now := t.now()
	status := next(r.OverdueTasks[i].Status)
	r.OverdueTasks[i].Status = status
	r.OverdueTasks[i].UpdatedAt = now
	r.Touch(now)

	var reconcileErr error
	if task := r.OverdueTasks[i]; task.IsAuto() && task.OriginalDate != "" {
		r, reconcileErr = t.reconcile(ctx, r, task, status, now)
	}
	if err := t.put(ctx, r); err != nil {
		return nil, err
	}
	return r, reconcileErr
}

// reconcile pushes status to the original of task and saves every record it
// touched other than today. today is returned, updated when the original
// lived in it.
func (t *Tracker) reconcile(ctx context.Context, today *models.DailyRecord, task models.OverdueTaskItem, status models.Status, now time.Time) (*models.DailyRecord, error) {
	history, err := t.history(ctx)
	if err != nil {
		return today, err
	}
	replaced := false
	for i, h := range history {
		if h.Date == today.Date {
			history[i] = today
			replaced = true
		}
	}
	if !replaced {
		history = append(history, today)
	}

	updated := overdue.UpdateOriginalItem(task, history, status, now)
	for i := range updated {
		if updated[i] == history[i] {
			continue
		}
		if updated[i].Date == today.Date {
			today = updated[i]
			continue
		}
		if err := t.put(ctx, updated[i]); err != nil {
			return today, err
		}
		t.log.Debug("reconciled original item", "date", updated[i].Date, "type", task.OriginalType, "id", task.OriginalID, "status", status)
	}
	return today, nil
}

// ClearCompletedOverdueTasks removes every done overdue task from date and
// returns how many were removed. Other days are not touched.
func (t *Tracker) ClearCompletedOverdueTasks(ctx context.Context, date string) (int, error) {
	removed := 0
	_, err := t.mutate(ctx, date, func(r *models.DailyRecord, now time.Time) error {
		r.OverdueTasks, removed = overdue.ClearCompleted(r.OverdueTasks)
		if removed == 0 {
			return errUnchanged
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// OverdueStats counts the overdue tasks of date.
func (t *Tracker) OverdueStats(ctx context.Context, date string) (overdue.Stats, error) {
	r, err := t.Record(ctx, date)
	if r == nil {
		return overdue.Stats{}, err
	}
	return overdue.Count(r.OverdueTasks), err
}

func findOverdue(r *models.DailyRecord, id string) int {
	for i := range r.OverdueTasks {
		if r.OverdueTasks[i].ID == id {
			return i
		}
	}
	return -1
}
