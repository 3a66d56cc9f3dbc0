package planner

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/chris/dayplan/internal/store"
)

// ScheduleDay runs Phase 2 for the given date (today when empty): gather the
// day's fixed events and pending flexible tasks, ask the gateway for a
// packed timetable, verify it, and replace the date's calendar entries
// wholesale. A day with nothing to schedule is cleared; a failed gateway
// call leaves the previous entries untouched.
func (e *Engine) ScheduleDay(ctx context.Context, date string) (Result, error) {
	if date == "" {
		date = e.now().Format(store.DateLayout)
	}
	date = strings.ReplaceAll(date, "/", "-")
	weekday, err := store.WeekdayOf(date)
	if err != nil {
		return Result{}, err
	}

	tasks := e.store.Tasks()
	var fixed []store.Entry
	for _, t := range tasks {
		if t.Date == date && t.IsFixed {
			fixed = append(fixed, store.Entry{ID: t.ID, Name: t.Name, StartTime: t.StartTime, EndTime: t.EndTime})
		}
	}
	for _, r := range e.store.Routines() {
		if r.DayOfWeek == weekday {
			fixed = append(fixed, store.Entry{ID: r.ID, Name: r.Name, StartTime: r.StartTime, EndTime: r.EndTime})
		}
	}

	var flexible []store.Task
	for _, t := range tasks {
		if t.Date == date && !t.IsFixed && t.Status == store.StatusPending {
			flexible = append(flexible, t)
		}
	}

	if len(fixed) == 0 && len(flexible) == 0 {
		if err := e.store.SetEntries(date, nil); err != nil {
			return Result{}, fmt.Errorf("clearing %s: %w", date, err)
		}
		return Result{Changed: true, Message: fmt.Sprintf("nothing to schedule for %s; cleared the day", date)}, nil
	}

	resp := e.ai.Infer(ctx, scheduleSystemPrompt, scheduleUserPrompt(date, fixed, flexible))
	items := resp.Get("daily_schedule").Array()
	if len(items) == 0 {
		return Result{}, fmt.Errorf("scheduling %s: model returned no timetable", date)
	}

	entries := make([]store.Entry, 0, len(items))
	for _, item := range items {
		entries = append(entries, store.Entry{
			ID:        item.Get("id").String(),
			Name:      item.Get("name").String(),
			StartTime: item.Get("start_time").String(),
			EndTime:   item.Get("end_time").String(),
		})
	}

	// The gateway is untrusted: a timetable that moves a fixed event,
	// overlaps, or strays outside the day window is discarded in favor of
	// the deterministic packer.
	if err := verifyTimetable(entries, fixed); err != nil {
		log.Printf("planner: rejecting model timetable for %s: %v", date, err)
		entries = packDay(fixed, flexible)
	}

	if err := e.store.SetEntries(date, entries); err != nil {
		return Result{}, fmt.Errorf("saving schedule for %s: %w", date, err)
	}
	return Result{Changed: true, Message: fmt.Sprintf("scheduled %d blocks for %s", len(entries), date)}, nil
}
