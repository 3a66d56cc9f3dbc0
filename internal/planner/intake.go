package planner

import (
	"context"
	"fmt"
	"log"

	"github.com/chris/dayplan/internal/gcal"
	"github.com/chris/dayplan/internal/ids"
	"github.com/chris/dayplan/internal/store"
)

// TaskInput is the raw user-supplied form for a one-off task. Zero values
// pick up defaults during validation.
type TaskInput struct {
	Name           string
	Date           string
	IsFixed        bool
	StartTime      string
	EndTime        string
	EstimatedHours float64
	Priority       int
	Importance     int
	Difficulty     int
}

// NewTask validates the input, persists the task, and mirrors fixed tasks to
// the remote calendar. The local write is authoritative; a failed push never
// undoes it.
func (e *Engine) NewTask(ctx context.Context, in TaskInput) (store.Task, error) {
	if in.Name == "" {
		return store.Task{}, fmt.Errorf("task name is required")
	}
	if !store.ValidDate(in.Date) {
		return store.Task{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", in.Date)
	}

	t := store.Task{
		ID:      ids.New(),
		Name:    in.Name,
		Date:    in.Date,
		IsFixed: in.IsFixed,
		Status:  store.StatusPending,
	}

	var err error
	if t.Priority, err = rating("priority", in.Priority); err != nil {
		return store.Task{}, err
	}
	if t.Importance, err = rating("importance", in.Importance); err != nil {
		return store.Task{}, err
	}
	if t.Difficulty, err = rating("difficulty", in.Difficulty); err != nil {
		return store.Task{}, err
	}

	if in.IsFixed {
		t.StartTime = clockOr(in.StartTime, "09:00")
		t.EndTime = clockOr(in.EndTime, "10:00")
		if !store.ValidClock(t.StartTime) || !store.ValidClock(t.EndTime) {
			return store.Task{}, fmt.Errorf("invalid time (want HH:MM)")
		}
	} else {
		t.EstimatedHours = in.EstimatedHours
		if t.EstimatedHours <= 0 {
			t.EstimatedHours = 1.0
		}
	}

	if err := e.store.AddTask(t); err != nil {
		return store.Task{}, fmt.Errorf("saving task: %w", err)
	}
	if t.IsFixed {
		e.pushTask(ctx, t)
	}
	return t, nil
}

// RoutineInput is the raw user-supplied form for a weekly routine.
type RoutineInput struct {
	Name       string
	StartDate  string
	StartTime  string
	EndTime    string
	Priority   int
	Importance int
	Difficulty int
}

// NewRoutine validates the input, derives the weekday from the anchor date,
// persists the routine, and pushes it remotely with a weekly recurrence.
func (e *Engine) NewRoutine(ctx context.Context, in RoutineInput) (store.Routine, error) {
	if in.Name == "" {
		return store.Routine{}, fmt.Errorf("routine name is required")
	}
	weekday, err := store.WeekdayOf(in.StartDate)
	if err != nil {
		return store.Routine{}, err
	}
	if !store.ValidClock(in.StartTime) || !store.ValidClock(in.EndTime) {
		return store.Routine{}, fmt.Errorf("invalid time (want HH:MM)")
	}

	r := store.Routine{
		ID:        ids.New(),
		Name:      in.Name,
		StartDate: in.StartDate,
		DayOfWeek: weekday,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}
	if r.Priority, err = rating("priority", in.Priority); err != nil {
		return store.Routine{}, err
	}
	if r.Importance, err = rating("importance", in.Importance); err != nil {
		return store.Routine{}, err
	}
	if r.Difficulty, err = rating("difficulty", in.Difficulty); err != nil {
		return store.Routine{}, err
	}

	if err := e.store.AddRoutine(r); err != nil {
		return store.Routine{}, fmt.Errorf("saving routine: %w", err)
	}
	if err := e.cal.Push(ctx, r.Name, r.StartDate, r.StartTime, r.EndTime, r.ID, gcal.WeeklyRule(weekday)); err != nil {
		log.Printf("planner: calendar push for %s: %v", r.ID, err)
	}
	return r, nil
}

// rating validates a 1-5 rating, defaulting the zero value to 3.
func rating(field string, v int) (int, error) {
	if v == 0 {
		return 3, nil
	}
	if v < 1 || v > 5 {
		return 0, fmt.Errorf("%s must be between 1 and 5", field)
	}
	return v, nil
}

func clockOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
