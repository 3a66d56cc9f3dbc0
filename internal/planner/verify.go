package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/chris/dayplan/internal/store"
)

// Day window for automatically placed tasks, in minutes since midnight.
// Fixed events may legitimately sit outside it (an 06:00 routine stays at
// 06:00); only placed flexible tasks are held to the window.
const (
	windowStart = 8 * 60
	windowEnd   = 22 * 60
)

type interval struct {
	start, end int
}

// verifyTimetable checks a model-produced timetable: well-formed times, no
// overlaps, every fixed event present with identical start/end, and every
// non-fixed entry inside the 08:00-22:00 window.
func verifyTimetable(entries, fixed []store.Entry) error {
	if len(entries) == 0 {
		return fmt.Errorf("empty timetable")
	}

	fixedKeys := make(map[string]bool, len(fixed))
	for _, f := range fixed {
		fixedKeys[entryKey(f)] = true
	}

	spans := make([]interval, 0, len(entries))
	for _, en := range entries {
		start, err := clockMinutes(en.StartTime)
		if err != nil {
			return fmt.Errorf("entry %q: %w", en.Name, err)
		}
		end, err := clockMinutes(en.EndTime)
		if err != nil {
			return fmt.Errorf("entry %q: %w", en.Name, err)
		}
		if end <= start {
			return fmt.Errorf("entry %q ends at or before its start", en.Name)
		}
		if !fixedKeys[entryKey(en)] && (start < windowStart || end > windowEnd) {
			return fmt.Errorf("entry %q placed outside the 08:00-22:00 window", en.Name)
		}
		spans = append(spans, interval{start, end})
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	for i := 1; i < len(spans); i++ {
		if spans[i].start < spans[i-1].end {
			return fmt.Errorf("timetable contains overlapping blocks")
		}
	}

	for _, f := range fixed {
		found := false
		for _, en := range entries {
			if entryKey(en) == entryKey(f) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("fixed event %q missing or moved", f.Name)
		}
	}
	return nil
}

// entryKey identifies an entry by name and times; the model does not always
// echo ids back, names it does.
func entryKey(e store.Entry) string {
	return e.Name + "|" + e.StartTime + "|" + e.EndTime
}

// packDay is the deterministic fallback scheduler: fixed events keep their
// slots, flexible tasks go earliest-fit by priority (store order on ties)
// into the gaps inside the 08:00-22:00 window. A task that fits nowhere is
// left out of the timetable and logged by the caller's entry count.
func packDay(fixed []store.Entry, flexible []store.Task) []store.Entry {
	entries := append([]store.Entry(nil), fixed...)

	busy := make([]interval, 0, len(fixed))
	for _, f := range fixed {
		start, err1 := clockMinutes(f.StartTime)
		end, err2 := clockMinutes(f.EndTime)
		if err1 != nil || err2 != nil || end <= start {
			continue
		}
		busy = append(busy, interval{start, end})
	}
	sort.Slice(busy, func(i, j int) bool { return busy[i].start < busy[j].start })

	ordered := append([]store.Task(nil), flexible...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Priority > ordered[j].Priority })

	for _, t := range ordered {
		dur := int(t.EstimatedHours * 60)
		if dur <= 0 {
			dur = 60
		}
		slot, ok := findSlot(busy, dur)
		if !ok {
			continue
		}
		busy = append(busy, slot)
		sort.Slice(busy, func(i, j int) bool { return busy[i].start < busy[j].start })
		entries = append(entries, store.Entry{
			ID:        t.ID,
			Name:      t.Name,
			StartTime: minutesToClock(slot.start),
			EndTime:   minutesToClock(slot.end),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, _ := clockMinutes(entries[i].StartTime)
		b, _ := clockMinutes(entries[j].StartTime)
		return a < b
	})
	return entries
}

// findSlot returns the earliest window-bounded gap of at least dur minutes
// around the sorted busy intervals. Busy intervals may themselves sit outside
// the window (fixed events are not bound to it), so each gap is clamped to
// windowEnd before it is offered.
func findSlot(busy []interval, dur int) (interval, bool) {
	start := windowStart
	for _, b := range busy {
		limit := b.start
		if limit > windowEnd {
			limit = windowEnd
		}
		if start+dur <= limit {
			return interval{start, start + dur}, true
		}
		if b.end > start {
			start = b.end
		}
	}
	if start+dur <= windowEnd {
		return interval{start, start + dur}, true
	}
	return interval{}, false
}

func clockMinutes(s string) (int, error) {
	t, err := time.Parse(store.ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func minutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
