package models

import (
	"encoding/json"
	"strings"
)

// Next returns the status that follows s in the neutral, done, not_done cycle.
func (s Status) Next() Status {
	switch s {
	case StatusNeutral:
		return StatusDone
	case StatusDone:
		return StatusNotDone
	default:
		return StatusNeutral
	}
}

// Reset returns the neutral status regardless of s.
func (s Status) Reset() Status {
	return StatusNeutral
}

func (s Status) Valid() bool {
	switch s {
	case StatusNeutral, StatusDone, StatusNotDone:
		return true
	}
	return false
}

// ParseStatus reads the stored spelling. Anything else is neutral.
func ParseStatus(raw string) Status {
	if s := Status(raw); s.Valid() {
		return s
	}
	return StatusNeutral
}

// LookupStatus reads user input, which may use a few loose aliases.
func LookupStatus(raw string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "neutral", "none", "open":
		return StatusNeutral, true
	case "done", "completed", "x":
		return StatusDone, true
	case "not_done", "not-done", "notdone", "missed":
		return StatusNotDone, true
	}
	return "", false
}

// UnmarshalJSON normalizes unknown statuses to neutral.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseStatus(raw)
	return nil
}

// UnmarshalJSON treats a missing or unknown source as manual.
func (s *Source) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if Source(raw) == SourceAuto {
		*s = SourceAuto
	} else {
		*s = SourceManual
	}
	return nil
}

// IsAuto reports whether the task was derived by the overdue engine.
func (t OverdueTaskItem) IsAuto() bool {
	return t.Source == SourceAuto
}

// ParseItemType maps user input such as "goals" or "p" to an ItemType.
func ParseItemType(raw string) (ItemType, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "goal", "goals", "g":
		return ItemGoal, true
	case "priority", "priorities", "p":
		return ItemPriority, true
	case "overdue", "overdue_tasks", "o":
		return ItemOverdue, true
	}
	return "", false
}
