package tracker

import (
	"context"
	"time"

	"github.com/akyairhashvil/DPT/internal/models"
)

// SetJournal replaces the journal of date and saves it immediately.
func (t *Tracker) SetJournal(ctx context.Context, date, content string) (*models.DailyRecord, error) {
	return t.mutate(ctx, date, func(r *models.DailyRecord, now time.Time) error {
		if r.Journal.Content == content {
			return errUnchanged
		}
		r.SetJournal(content, now)
		return nil
	})
}

// ScheduleJournal saves the journal of date once edits have been quiet for
// the save delay. A newer call for the same date replaces the pending one.
// done, when set, receives the result of the write.
func (t *Tracker) ScheduleJournal(date, content string, done func(*models.DailyRecord, error)) {
	t.saves.Trigger(journalKey(date), func() {
		r, err := t.SetJournal(context.Background(), date, content)
		if done != nil {
			done(r, err)
		}
	})
}

// CancelJournal drops a pending journal save for date.
func (t *Tracker) CancelJournal(date string) {
	t.saves.Cancel(journalKey(date))
}

// FlushJournal writes a pending journal save for date now.
func (t *Tracker) FlushJournal(date string) {
	t.saves.FlushKey(journalKey(date))
}

// JournalPending reports whether a save for date is waiting.
func (t *Tracker) JournalPending(date string) bool {
	return t.saves.Pending(journalKey(date))
}

func journalKey(date string) string { return "journal:" + date }
