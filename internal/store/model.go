package store

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusScheduled Status = "scheduled"
	StatusDone      Status = "done"
)

// ParseStatus validates a status string coming from outside the system.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusScheduled, StatusDone:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Task is a unit of work. Fixed tasks occupy a caller-supplied time block;
// flexible tasks carry only a duration estimate and wait for placement.
type Task struct {
	ID                   string  `json:"event_id"`
	ParentID             string  `json:"parent_id,omitempty"`
	Name                 string  `json:"name"`
	Date                 string  `json:"date"` // YYYY-MM-DD
	StartTime            string  `json:"start_time,omitempty"`
	EndTime              string  `json:"end_time,omitempty"`
	EstimatedHours       float64 `json:"estimated_hours"`
	Priority             int     `json:"priority"`
	Importance           int     `json:"importance"`
	Difficulty           int     `json:"difficulty"`
	IsFixed              bool    `json:"is_fixed"`
	Status               Status  `json:"status"`
	HasGeneratedSubtasks bool    `json:"has_generated_subtasks,omitempty"`
}

// Routine is a weekly-recurring fixed block, anchored at StartDate.
type Routine struct {
	ID         string `json:"event_id"`
	Name       string `json:"name"`
	StartDate  string `json:"start_date"`
	DayOfWeek  string `json:"day_of_week"` // Monday..Sunday, derived from StartDate
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Priority   int    `json:"priority"`
	Importance int    `json:"importance"`
	Difficulty int    `json:"difficulty"`
}

// Entry is one row of a date's final timetable. Entries are derived data:
// scheduling a date replaces its whole entry list.
type Entry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// WeekdayOf returns the full weekday name for a YYYY-MM-DD date.
func WeekdayOf(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("parsing date %q: %w", date, err)
	}
	return t.Weekday().String(), nil
}

// ValidDate reports whether s is a YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidClock reports whether s is an HH:MM time of day.
func ValidClock(s string) bool {
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}
