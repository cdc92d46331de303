package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/akyairhashvil/DPT/internal/models"
	"github.com/akyairhashvil/DPT/internal/util"
)

// AddItem appends a new neutral item to the array named by typ and returns
// the updated record and the new item's id. Overdue items added here are
// manual. An invalid title leaves the record untouched.
func (t *Tracker) AddItem(ctx context.Context, date string, typ models.ItemType, title string) (*models.DailyRecord, string, error) {
	clean, err := models.NormalizeTitle(title)
	if err != nil {
		return nil, "", err
	}
	id := t.newID()
	r, err := t.mutate(ctx, date, func(r *models.DailyRecord, now time.Time) error {
		switch typ {
		case models.ItemGoal:
			r.Goals = append(r.Goals, models.GoalItem{
				ID: id, Title: clean, Status: models.StatusNeutral,
				TimeSlots: []models.TimeSlot{}, CreatedAt: now, UpdatedAt: now,
			})
		case models.ItemPriority:
			r.Priorities = append(r.Priorities, models.PriorityItem{
				ID: id, Title: clean, Status: models.StatusNeutral, CreatedAt: now, UpdatedAt: now,
			})
		case models.ItemOverdue:
			r.OverdueTasks = append(r.OverdueTasks, models.OverdueTaskItem{
				ID: id, Title: clean, Status: models.StatusNeutral, Source: models.SourceManual,
				CreatedAt: now, UpdatedAt: now,
			})
		default:
			return fmt.Errorf("unknown item type %q", typ)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return r, id, nil
}

// EditTitle renames an item. Auto overdue tasks keep their link; the
// original item is not renamed.
func (t *Tracker) EditTitle(ctx context.Context, date string, typ models.ItemType, id, title string) (*models.DailyRecord, error) {
	clean, err := models.NormalizeTitle(title)
	if err != nil {
		return nil, err
	}
	return t.mutate(ctx, date, func(r *models.DailyRecord, now time.Time) error {
		return withItem(r, typ, id, func(h itemHandle) {
			*h.title = clean
			*h.updatedAt = now
		})
	})
}

// CycleStatus advances an item to its next status. Overdue tasks go through
// CompleteOverdueTask so their originals follow.
func (t *Tracker) CycleStatus(ctx context.Context, date string, typ models.ItemType, id string) (*models.DailyRecord, error) {
	if typ == models.ItemOverdue {
		return t.setOverdueStatus(ctx, date, id, models.Status.Next)
	}
	return t.setItemStatus(ctx, date, typ, id, models.Status.Next)
}

// ResetStatus returns an item to neutral.
func (t *Tracker) ResetStatus(ctx context.Context, date string, typ models.ItemType, id string) (*models.DailyRecord, error) {
	return t.SetStatus(ctx, date, typ, id, models.StatusNeutral)
}

// SetStatus assigns status to an item.
func (t *Tracker) SetStatus(ctx context.Context, date string, typ models.ItemType, id string, status models.Status) (*models.DailyRecord, error) {
	if err := models.ValidateStatus(status); err != nil {
		return nil, err
	}
	if typ == models.ItemOverdue {
		return t.CompleteOverdueTask(ctx, date, id, status)
	}
	return t.setItemStatus(ctx, date, typ, id, func(models.Status) models.Status { return status })
}

func (t *Tracker) setItemStatus(ctx context.Context, date string, typ models.ItemType, id string, next func(models.Status) models.Status) (*models.DailyRecord, error) {
	return t.mutate(ctx, date, func(r *models.DailyRecord, now time.Time) error {
		return withItem(r, typ, id, func(h itemHandle) {
			*h.status = next(*h.status)
			*h.updatedAt = now
		})
	})
}

// DeleteItem removes an item. Deleting an auto overdue task does not touch
// its original, so the next generation may derive it again.
func (t *Tracker) DeleteItem(ctx context.Context, date string, typ models.ItemType, id string) (*models.DailyRecord, error) {
	return t.mutate(ctx, date, func(r *models.DailyRecord, now time.Time) error {
		i := indexOf(r, typ, id)
		if i < 0 {
			return ErrItemNotFound
		}
		switch typ {
		case models.ItemGoal:
			r.Goals = append(r.Goals[:i:i], r.Goals[i+1:]...)
		case models.ItemPriority:
			r.Priorities = append(r.Priorities[:i:i], r.Priorities[i+1:]...)
		case models.ItemOverdue:
			r.OverdueTasks = append(r.OverdueTasks[:i:i], r.OverdueTasks[i+1:]...)
		}
		return nil
	})
}

// MoveItem shifts an item by delta positions within its array.
func (t *Tracker) MoveItem(ctx context.Context, date string, typ models.ItemType, id string, delta int) (*models.DailyRecord, error) {
	return t.mutate(ctx, date, func(r *models.DailyRecord, now time.Time) error {
		i := indexOf(r, typ, id)
		if i < 0 {
			return ErrItemNotFound
		}
		j, ok := util.MoveIndex(i, delta, lenOf(r, typ))
		if !ok {
			return ErrCannotMove
		}
		switch typ {
		case models.ItemGoal:
			r.Goals[i], r.Goals[j] = r.Goals[j], r.Goals[i]
		case models.ItemPriority:
			r.Priorities[i], r.Priorities[j] = r.Priorities[j], r.Priorities[i]
		case models.ItemOverdue:
			r.OverdueTasks[i], r.OverdueTasks[j] = r.OverdueTasks[j], r.OverdueTasks[i]
		}
		return nil
	})
}

// AddTimeSlot attaches a neutral slot to a goal.
func (t *Tracker) AddTimeSlot(ctx context.Context, date, goalID, start, end string) (*models.DailyRecord, string, error) {
	if err := models.ValidateTimeSlot(start, end); err != nil {
		return nil, "", err
	}
	id := t.newID()
	r, err := t.mutate(ctx, date, func(r *models.DailyRecord, now time.Time) error {
		g := goalOf(r, goalID)
		if g == nil {
			return ErrItemNotFound
		}
		g.TimeSlots = append(g.TimeSlots, models.TimeSlot{ID: id, StartTime: start, EndTime: end, Status: models.StatusNeutral})
		g.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return r, id, nil
}

// CycleTimeSlot advances a slot's status.
func (t *Tracker) CycleTimeSlot(ctx context.Context, date, goalID, slotID string) (*models.DailyRecord, error) {
	return t.updateSlot(ctx, date, goalID, slotID, models.Status.Next)
}

// ResetTimeSlot returns a slot to neutral.
func (t *Tracker) ResetTimeSlot(ctx context.Context, date, goalID, slotID string) (*models.DailyRecord, error) {
	return t.updateSlot(ctx, date, goalID, slotID, models.Status.Reset)
}

func (t *Tracker) updateSlot(ctx context.Context, date, goalID, slotID string, next func(models.Status) models.Status) (*models.DailyRecord, error) {
	return t.mutate(ctx, date, func(r *models.DailyRecord, now time.Time) error {
		g := goalOf(r, goalID)
		if g == nil {
			return ErrItemNotFound
		}
		for i := range g.TimeSlots {
			if g.TimeSlots[i].ID == slotID {
				g.TimeSlots[i].Status = next(g.TimeSlots[i].Status)
				g.UpdatedAt = now
				return nil
			}
		}
		return ErrItemNotFound
	})
}

// RemoveTimeSlot detaches a slot from a goal.
func (t *Tracker) RemoveTimeSlot(ctx context.Context, date, goalID, slotID string) (*models.DailyRecord, error) {
	return t.mutate(ctx, date, func(r *models.DailyRecord, now time.Time) error {
		g := goalOf(r, goalID)
		if g == nil {
			return ErrItemNotFound
		}
		for i := range g.TimeSlots {
			if g.TimeSlots[i].ID == slotID {
				g.TimeSlots = append(g.TimeSlots[:i:i], g.TimeSlots[i+1:]...)
				g.UpdatedAt = now
				return nil
			}
		}
		return ErrItemNotFound
	})
}

// itemHandle exposes the shared fields of an item in place.
type itemHandle struct {
	title     *string
	status    *models.Status
	updatedAt *time.Time
}

func withItem(r *models.DailyRecord, typ models.ItemType, id string, fn func(itemHandle)) error {
	i := indexOf(r, typ, id)
	if i < 0 {
		return ErrItemNotFound
	}
	switch typ {
	case models.ItemGoal:
		g := &r.Goals[i]
		fn(itemHandle{&g.Title, &g.Status, &g.UpdatedAt})
	case models.ItemPriority:
		p := &r.Priorities[i]
		fn(itemHandle{&p.Title, &p.Status, &p.UpdatedAt})
	case models.ItemOverdue:
		o := &r.OverdueTasks[i]
		fn(itemHandle{&o.Title, &o.Status, &o.UpdatedAt})
	}
	return nil
}

func indexOf(r *models.DailyRecord, typ models.ItemType, id string) int {
	switch typ {
	case models.ItemGoal:
		for i := range r.Goals {
			if r.Goals[i].ID == id {
				return i
			}
		}
	case models.ItemPriority:
		for i := range r.Priorities {
			if r.Priorities[i].ID == id {
				return i
			}
		}
	case models.ItemOverdue:
		return findOverdue(r, id)
	}
	return -1
}

func lenOf(r *models.DailyRecord, typ models.ItemType) int {
	switch typ {
	case models.ItemGoal:
		return len(r.Goals)
	case models.ItemPriority:
		return len(r.Priorities)
	case models.ItemOverdue:
		return len(r.OverdueTasks)
	}
	return 0
}

func goalOf(r *models.DailyRecord, id string) *models.GoalItem {
	for i := range r.Goals {
		if r.Goals[i].ID == id {
			return &r.Goals[i]
		}
	}
	return nil
}
