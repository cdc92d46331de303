// Package overdue derives carried-over tasks from earlier days and keeps the
// items they were derived from in step when a carried-over task is finished.
// Everything here works on record snapshots and performs no I/O.
package overdue

import (
	"sort"
	"time"

	"github.com/akyairhashvil/DPT/internal/models"
)

// Env supplies the clock and identifier source for newly derived tasks.
type Env struct {
	Now   func() time.Time
	NewID func() string
}

// DefaultEnv uses the wall clock and UUIDv7 identifiers.
func DefaultEnv() Env {
	return Env{Now: time.Now, NewID: models.NewID}
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e Env) newID() string {
	if e.NewID == nil {
		return models.NewID()
	}
	return e.NewID()
}

// Seen returns the reference keys already surfaced by auto tasks in existing.
func Seen(existing []models.OverdueTaskItem) map[string]struct{} {
	seen := make(map[string]struct{}, len(existing))
	for _, t := range existing {
		if key, ok := t.Key(); ok {
			seen[key.String()] = struct{}{}
		}
	}
	return seen
}

// Derive returns the auto overdue tasks that should be added to today.
//
// history is scanned oldest first; records dated today or later are ignored.
// Within a record, goals come before priorities, which come before overdue
// tasks. Items already done are skipped, as is any item whose reference key
// appears among the auto tasks in existing or was emitted earlier in this
// call. Only the new tasks are returned.
func Derive(today string, history []*models.DailyRecord, existing []models.OverdueTaskItem, env Env) []models.OverdueTaskItem {
	seen := Seen(existing)

	sorted := make([]*models.DailyRecord, 0, len(history))
	for _, r := range history {
		if r != nil {
			sorted = append(sorted, r)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	// One pass shares one timestamp.
	now := env.now()
	var out []models.OverdueTaskItem
	emit := func(date string, typ models.ItemType, id, title string, status models.Status) {
		if status == models.StatusDone {
			return
		}
		key := models.ReferenceKey{Date: date, Type: typ, ID: id}.String()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, models.OverdueTaskItem{
			ID:           env.newID(),
			Title:        title,
			Status:       status,
			CreatedAt:    now,
			UpdatedAt:    now,
			OriginalDate: date,
			OriginalType: typ,
			OriginalID:   id,
			Source:       models.SourceAuto,
		})
	}

	for _, r := range sorted {
		// ISO dates compare lexicographically.
		if r.Date >= today {
			continue
		}
		for _, g := range r.Goals {
			emit(r.Date, models.ItemGoal, g.ID, g.Title, g.Status)
		}
		for _, p := range r.Priorities {
			emit(r.Date, models.ItemPriority, p.ID, p.Title, p.Status)
		}
		for _, t := range r.OverdueTasks {
			emit(r.Date, models.ItemOverdue, t.ID, t.Title, t.Status)
		}
	}
	return out
}

// Merge lays out today's overdue list: manual tasks first, then auto tasks
// already present, then the newly derived ones. Relative order is kept
// within each group.
func Merge(existing, derived []models.OverdueTaskItem) []models.OverdueTaskItem {
	out := make([]models.OverdueTaskItem, 0, len(existing)+len(derived))
	for _, t := range existing {
		if !t.IsAuto() {
			out = append(out, t)
		}
	}
	for _, t := range existing {
		if t.IsAuto() {
			out = append(out, t)
		}
	}
	return append(out, derived...)
}

// Stats counts the overdue tasks of a day.
type Stats struct {
	Total     int `json:"total"`
	Auto      int `json:"auto"`
	Manual    int `json:"manual"`
	Completed int `json:"completed"`
}

// Count tallies tasks by source and completion.
func Count(tasks []models.OverdueTaskItem) Stats {
	var s Stats
	for _, t := range tasks {
		s.Total++
		if t.IsAuto() {
			s.Auto++
		} else {
			s.Manual++
		}
		if t.Status == models.StatusDone {
			s.Completed++
		}
	}
	return s
}

// ClearCompleted drops done tasks and reports how many were removed.
func ClearCompleted(tasks []models.OverdueTaskItem) ([]models.OverdueTaskItem, int) {
	out := make([]models.OverdueTaskItem, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != models.StatusDone {
			out = append(out, t)
		}
	}
	return out, len(tasks) - len(out)
}
