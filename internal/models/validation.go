package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04"
	MaxTitleLength = 100

	// dayStartMinutes is where the planning day begins; slots after midnight
	// belong to the previous evening.
	dayStartMinutes = 6 * 60
)

var (
	ErrInvalidTitle  = errors.New("invalid title")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidTime   = errors.New("invalid time")
	ErrInvalidStatus = errors.New("invalid status")
)

// ValidateStatus rejects anything outside neutral, done and not_done.
func ValidateStatus(s Status) error {
	if !s.Valid() {
		return fmt.Errorf("%w %q", ErrInvalidStatus, s)
	}
	return nil
}

// NormalizeTitle trims and NFC-normalizes a title and checks its length.
func NormalizeTitle(raw string) (string, error) {
	title := norm.NFC.String(strings.TrimSpace(raw))
	n := utf8.RuneCountInString(title)
	if n == 0 {
		return "", fmt.Errorf("%w: title is required", ErrInvalidTitle)
	}
	if n > MaxTitleLength {
		return "", fmt.Errorf("%w: title must be at most %d characters", ErrInvalidTitle, MaxTitleLength)
	}
	return title, nil
}

// ValidateDate checks an ISO calendar date.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w %q", ErrInvalidDate, date)
	}
	return nil
}

// ParseDate parses an ISO calendar date in the local zone.
func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidDate, date)
	}
	return t, nil
}

// FormatDate renders t as an ISO calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ShiftDate moves an ISO date by days.
func ShiftDate(date string, days int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, days)), nil
}

func clockMinutes(clock string) (int, error) {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil || len(clock) != len(ClockLayout) {
		return 0, fmt.Errorf("%w %q", ErrInvalidTime, clock)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ValidateTimeSlot checks both clocks and that end follows start within the
// planning day.
func ValidateTimeSlot(start, end string) error {
	s, err := clockMinutes(start)
	if err != nil {
		return err
	}
	e, err := clockMinutes(end)
	if err != nil {
		return err
	}
	if dayOffset(e) <= dayOffset(s) {
		return fmt.Errorf("%w: end %s must be after start %s", ErrInvalidTime, end, start)
	}
	return nil
}

func dayOffset(minutes int) int {
	return (minutes - dayStartMinutes + 24*60) % (24 * 60)
}

// FormatClock12 renders an HH:mm clock as "3:30 PM".
func FormatClock12(clock string) string {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return clock
	}
	return t.Format("3:04 PM")
}
