package models

import "time"

// Status is the tri-state completion marker shared by every trackable item.
type Status string

const (
	StatusNeutral Status = "neutral"
	StatusDone    Status = "done"
	StatusNotDone Status = "not_done"
)

// ItemType names the array an item lives in.
type ItemType string

const (
	ItemGoal     ItemType = "goal"
	ItemPriority ItemType = "priority"
	ItemOverdue  ItemType = "overdue"
)

// Source records whether an overdue task was derived or entered by hand.
type Source string

const (
	SourceAuto   Source = "auto"
	SourceManual Source = "manual"
)

// TimeSlot is a scheduled block attached to a goal.
type TimeSlot struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"` // HH:mm
	EndTime   string `json:"endTime"`   // HH:mm
	Status    Status `json:"status"`
}

// GoalItem is a goal for the day with optional time slots.
type GoalItem struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	TimeSlots []TimeSlot `json:"timeSlots"`
	Status    Status     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// PriorityItem is a ranked item for the day.
type PriorityItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OverdueTaskItem is carried-over work. Auto tasks point back at the item
// they were derived from through OriginalDate, OriginalType and OriginalID.
type OverdueTaskItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	OriginalDate string    `json:"originalDate,omitempty"`
	OriginalType ItemType  `json:"originalType,omitempty"`
	OriginalID   string    `json:"originalId,omitempty"`
	Source       Source    `json:"source,omitempty"`
}

// JournalEntry is the free-text note of a day.
type JournalEntry struct {
	Content      string    `json:"content"`
	WordCount    int       `json:"wordCount"`
	LastModified time.Time `json:"lastModified"`
}

// DailyRecord holds everything tracked for one calendar day.
type DailyRecord struct {
	ID           string            `json:"id"`
	Date         string            `json:"date"` // YYYY-MM-DD
	Goals        []GoalItem        `json:"goals"`
	Priorities   []PriorityItem    `json:"priorities"`
	OverdueTasks []OverdueTaskItem `json:"overdue_tasks"`
	Journal      JournalEntry      `json:"journal"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}
