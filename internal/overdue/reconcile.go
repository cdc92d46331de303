package overdue

import (
	"time"

	"github.com/akyairhashvil/DPT/internal/models"
)

// UpdateOriginalItem propagates status from an auto task back to the item it
// was derived from.
//
// The returned slice has the same length and order as records. Only the
// record holding the original item is replaced by an updated copy; every
// other element is the same pointer as in records. When the task is manual,
// lacks provenance, or its original can no longer be found, records is
// returned unchanged.
func UpdateOriginalItem(task models.OverdueTaskItem, records []*models.DailyRecord, status models.Status, now time.Time) []*models.DailyRecord {
	key, ok := task.Key()
	if !ok {
		return records
	}
	idx := -1
	for i, r := range records {
		if r != nil && r.Date == key.Date {
			idx = i
			break
		}
	}
	if idx < 0 {
		return records
	}
	updated := records[idx].Clone()
	if !setStatus(updated, key.Type, key.ID, status, now) {
		return records
	}
	updated.UpdatedAt = now

	out := make([]*models.DailyRecord, len(records))
	copy(out, records)
	out[idx] = updated
	return out
}

// Locate finds the original item of task in records and returns its record
// and current status.
func Locate(task models.OverdueTaskItem, records []*models.DailyRecord) (*models.DailyRecord, models.Status, bool) {
	key, ok := task.Key()
	if !ok {
		return nil, "", false
	}
	for _, r := range records {
		if r == nil || r.Date != key.Date {
			continue
		}
		if s, ok := statusOf(r, key.Type, key.ID); ok {
			return r, s, true
		}
		return nil, "", false
	}
	return nil, "", false
}

func setStatus(r *models.DailyRecord, typ models.ItemType, id string, status models.Status, now time.Time) bool {
	switch typ {
	case models.ItemGoal:
		for i := range r.Goals {
			if r.Goals[i].ID == id {
				r.Goals[i].Status = status
				r.Goals[i].UpdatedAt = now
				return true
			}
		}
	case models.ItemPriority:
		for i := range r.Priorities {
			if r.Priorities[i].ID == id {
				r.Priorities[i].Status = status
				r.Priorities[i].UpdatedAt = now
				return true
			}
		}
	case models.ItemOverdue:
		for i := range r.OverdueTasks {
			if r.OverdueTasks[i].ID == id {
				r.OverdueTasks[i].Status = status
				r.OverdueTasks[i].UpdatedAt = now
				return true
			}
		}
	}
	return false
}

func statusOf(r *models.DailyRecord, typ models.ItemType, id string) (models.Status, bool) {
	switch typ {
	case models.ItemGoal:
		for _, g := range r.Goals {
			if g.ID == id {
				return g.Status, true
			}
		}
	case models.ItemPriority:
		for _, p := range r.Priorities {
			if p.ID == id {
				return p.Status, true
			}
		}
	case models.ItemOverdue:
		for _, t := range r.OverdueTasks {
			if t.ID == id {
				return t.Status, true
			}
		}
	}
	return "", false
}
