package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const recordIDPrefix = "record-"

// RecordID derives the stable record identifier for a date.
func RecordID(date string) string {
	return recordIDPrefix + date
}

// NewID returns a fresh time-ordered identifier.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// NewRecord returns an empty record for date stamped with now.
func NewRecord(date string, now time.Time) *DailyRecord {
	return &DailyRecord{
		ID:           RecordID(date),
		Date:         date,
		Goals:        []GoalItem{},
		Priorities:   []PriorityItem{},
		OverdueTasks: []OverdueTaskItem{},
		Journal:      JournalEntry{LastModified: now},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Clone returns a deep copy of r. The copy shares no slices with r.
func (r *DailyRecord) Clone() *DailyRecord {
	if r == nil {
		return nil
	}
	out := *r
	out.Goals = make([]GoalItem, len(r.Goals))
	for i, g := range r.Goals {
		g.TimeSlots = append([]TimeSlot(nil), g.TimeSlots...)
		if g.TimeSlots == nil {
			g.TimeSlots = []TimeSlot{}
		}
		out.Goals[i] = g
	}
	out.Priorities = append(make([]PriorityItem, 0, len(r.Priorities)), r.Priorities...)
	out.OverdueTasks = append(make([]OverdueTaskItem, 0, len(r.OverdueTasks)), r.OverdueTasks...)
	return &out
}

// Normalize fills nil slices and derived fields after decoding.
func (r *DailyRecord) Normalize() {
	if r.ID == "" && r.Date != "" {
		r.ID = RecordID(r.Date)
	}
	if r.Goals == nil {
		r.Goals = []GoalItem{}
	}
	for i := range r.Goals {
		if r.Goals[i].TimeSlots == nil {
			r.Goals[i].TimeSlots = []TimeSlot{}
		}
	}
	if r.Priorities == nil {
		r.Priorities = []PriorityItem{}
	}
	if r.OverdueTasks == nil {
		r.OverdueTasks = []OverdueTaskItem{}
	}
	for i := range r.OverdueTasks {
		if r.OverdueTasks[i].Source == "" {
			r.OverdueTasks[i].Source = SourceManual
		}
	}
}

// Touch stamps the record as modified.
func (r *DailyRecord) Touch(now time.Time) {
	r.UpdatedAt = now
}

// IsEmpty reports whether nothing has been entered for the day.
func (r *DailyRecord) IsEmpty() bool {
	return len(r.Goals) == 0 && len(r.Priorities) == 0 && len(r.OverdueTasks) == 0 &&
		strings.TrimSpace(r.Journal.Content) == ""
}

// ReferenceKey identifies an item by the day and array it lives in.
type ReferenceKey struct {
	Date string
	Type ItemType
	ID   string
}

func (k ReferenceKey) String() string {
	return k.Date + "|" + string(k.Type) + "|" + k.ID
}

// Key returns the reference key of the item an auto task was derived from.
// ok is false for manual tasks or tasks with incomplete provenance.
func (t OverdueTaskItem) Key() (ReferenceKey, bool) {
	if !t.IsAuto() || t.OriginalDate == "" || t.OriginalID == "" {
		return ReferenceKey{}, false
	}
	return ReferenceKey{Date: t.OriginalDate, Type: t.OriginalType, ID: t.OriginalID}, true
}

// CountWords counts whitespace-separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// SetJournal replaces the journal content and refreshes its counters.
func (r *DailyRecord) SetJournal(content string, now time.Time) {
	r.Journal = JournalEntry{
		Content:      content,
		WordCount:    CountWords(content),
		LastModified: now,
	}
	r.UpdatedAt = now
}
