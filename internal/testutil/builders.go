package testutil

import (
	"time"

	"github.com/akyairhashvil/DPT/internal/models"
)

// Epoch is the fixed instant builders stamp records with.
var Epoch = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

// RecordBuilder provides fluent API for creating test records.
type RecordBuilder struct {
	record *models.DailyRecord
}

func NewRecord(date string) *RecordBuilder {
	return &RecordBuilder{record: models.NewRecord(date, Epoch)}
}

func (b *RecordBuilder) WithGoal(id, title string, status models.Status) *RecordBuilder {
	b.record.Goals = append(b.record.Goals, models.GoalItem{
		ID:        id,
		Title:     title,
		Status:    status,
		TimeSlots: []models.TimeSlot{},
		CreatedAt: Epoch,
		UpdatedAt: Epoch,
	})
	return b
}

func (b *RecordBuilder) WithTimeSlot(goalID, slotID, start, end string, status models.Status) *RecordBuilder {
	for i := range b.record.Goals {
		if b.record.Goals[i].ID == goalID {
			b.record.Goals[i].TimeSlots = append(b.record.Goals[i].TimeSlots, models.TimeSlot{
				ID: slotID, StartTime: start, EndTime: end, Status: status,
			})
		}
	}
	return b
}

func (b *RecordBuilder) WithPriority(id, title string, status models.Status) *RecordBuilder {
	b.record.Priorities = append(b.record.Priorities, models.PriorityItem{
		ID:        id,
		Title:     title,
		Status:    status,
		CreatedAt: Epoch,
		UpdatedAt: Epoch,
	})
	return b
}

func (b *RecordBuilder) WithManualTask(id, title string, status models.Status) *RecordBuilder {
	b.record.OverdueTasks = append(b.record.OverdueTasks, models.OverdueTaskItem{
		ID:        id,
		Title:     title,
		Status:    status,
		Source:    models.SourceManual,
		CreatedAt: Epoch,
		UpdatedAt: Epoch,
	})
	return b
}

func (b *RecordBuilder) WithAutoTask(id, title string, status models.Status, origin models.ReferenceKey) *RecordBuilder {
	b.record.OverdueTasks = append(b.record.OverdueTasks, models.OverdueTaskItem{
		ID:           id,
		Title:        title,
		Status:       status,
		Source:       models.SourceAuto,
		OriginalDate: origin.Date,
		OriginalType: origin.Type,
		OriginalID:   origin.ID,
		CreatedAt:    Epoch,
		UpdatedAt:    Epoch,
	})
	return b
}

func (b *RecordBuilder) WithJournal(content string) *RecordBuilder {
	b.record.SetJournal(content, Epoch)
	return b
}

func (b *RecordBuilder) Build() *models.DailyRecord {
	return b.record
}
