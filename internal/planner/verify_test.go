package planner

import (
	"testing"

	"github.com/chris/dayplan/internal/store"
)

func TestVerifyAcceptsCleanTimetable(t *testing.T) {
	fixed := []store.Entry{{ID: "f1", Name: "meeting", StartTime: "09:00", EndTime: "10:00"}}
	entries := []store.Entry{
		{ID: "t1", Name: "essay", StartTime: "08:00", EndTime: "09:00"},
		{ID: "f1", Name: "meeting", StartTime: "09:00", EndTime: "10:00"},
		{ID: "t2", Name: "reading", StartTime: "10:00", EndTime: "11:30"},
	}
	if err := verifyTimetable(entries, fixed); err != nil {
		t.Errorf("expected clean timetable to pass: %v", err)
	}
}

func TestVerifyRejectsOverlap(t *testing.T) {
	entries := []store.Entry{
		{Name: "a", StartTime: "09:00", EndTime: "10:30"},
		{Name: "b", StartTime: "10:00", EndTime: "11:00"},
	}
	if err := verifyTimetable(entries, nil); err == nil {
		t.Error("expected overlap to be rejected")
	}
}

func TestVerifyRejectsBadClock(t *testing.T) {
	entries := []store.Entry{{Name: "a", StartTime: "nine", EndTime: "10:00"}}
	if err := verifyTimetable(entries, nil); err == nil {
		t.Error("expected malformed time to be rejected")
	}
}

func TestVerifyRejectsInvertedBlock(t *testing.T) {
	entries := []store.Entry{{Name: "a", StartTime: "11:00", EndTime: "10:00"}}
	if err := verifyTimetable(entries, nil); err == nil {
		t.Error("expected inverted block to be rejected")
	}
}

func TestVerifyRejectsPlacedTaskOutsideWindow(t *testing.T) {
	entries := []store.Entry{{Name: "late work", StartTime: "21:30", EndTime: "22:30"}}
	if err := verifyTimetable(entries, nil); err == nil {
		t.Error("expected placement past 22:00 to be rejected")
	}
}

func TestVerifyAllowsFixedEventOutsideWindow(t *testing.T) {
	fixed := []store.Entry{{ID: "r1", Name: "morning run", StartTime: "06:00", EndTime: "07:00"}}
	entries := []store.Entry{{ID: "r1", Name: "morning run", StartTime: "06:00", EndTime: "07:00"}}
	if err := verifyTimetable(entries, fixed); err != nil {
		t.Errorf("an early fixed event is legitimate: %v", err)
	}
}

func TestVerifyRejectsMovedFixedEvent(t *testing.T) {
	fixed := []store.Entry{{ID: "f1", Name: "meeting", StartTime: "09:00", EndTime: "10:00"}}
	entries := []store.Entry{{ID: "f1", Name: "meeting", StartTime: "11:00", EndTime: "12:00"}}
	if err := verifyTimetable(entries, fixed); err == nil {
		t.Error("expected a moved fixed event to be rejected")
	}
}

func TestVerifyRejectsEmptyTimetable(t *testing.T) {
	if err := verifyTimetable(nil, nil); err == nil {
		t.Error("expected empty timetable to be rejected")
	}
}

// --- packDay ---

func TestPackDayPriorityOrder(t *testing.T) {
	fixed := []store.Entry{{ID: "f1", Name: "meeting", StartTime: "09:00", EndTime: "10:00"}}
	flexible := []store.Task{
		{ID: "low", Name: "low prio", EstimatedHours: 1, Priority: 2},
		{ID: "high", Name: "high prio", EstimatedHours: 1, Priority: 5},
	}

	entries := packDay(fixed, flexible)
	if len(entries) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(entries))
	}
	// High priority wins the earliest gap (08:00-09:00); low priority goes
	// after the fixed meeting.
	if entries[0].ID != "high" || entries[0].StartTime != "08:00" {
		t.Errorf("unexpected first block %+v", entries[0])
	}
	if entries[1].ID != "f1" {
		t.Errorf("fixed event displaced: %+v", entries[1])
	}
	if entries[2].ID != "low" || entries[2].StartTime != "10:00" || entries[2].EndTime != "11:00" {
		t.Errorf("unexpected last block %+v", entries[2])
	}
}

func TestPackDayZeroEstimateGetsAnHour(t *testing.T) {
	entries := packDay(nil, []store.Task{{ID: "t1", Name: "quick thing", EstimatedHours: 0, Priority: 3}})
	if len(entries) != 1 {
		t.Fatalf("expected 1 block, got %d", len(entries))
	}
	if entries[0].StartTime != "08:00" || entries[0].EndTime != "09:00" {
		t.Errorf("expected a default one-hour block, got %s-%s", entries[0].StartTime, entries[0].EndTime)
	}
}

func TestPackDaySkipsTaskThatFitsNowhere(t *testing.T) {
	fixed := []store.Entry{{ID: "f1", Name: "all day", StartTime: "08:00", EndTime: "21:00"}}
	flexible := []store.Task{{ID: "t1", Name: "marathon", EstimatedHours: 5, Priority: 5}}

	entries := packDay(fixed, flexible)
	if len(entries) != 1 || entries[0].ID != "f1" {
		t.Errorf("expected only the fixed block, got %+v", entries)
	}
}

func TestPackDayClampsGapsToWindowEnd(t *testing.T) {
	// A fixed event past 22:00 opens a gap after 21:30, but that gap ends
	// outside the window; the hour-long task must be skipped, not placed
	// at 21:30-22:30.
	fixed := []store.Entry{
		{ID: "f1", Name: "long day", StartTime: "08:00", EndTime: "21:30"},
		{ID: "f2", Name: "late call", StartTime: "22:30", EndTime: "23:00"},
	}
	flexible := []store.Task{{ID: "t1", Name: "essay", EstimatedHours: 1, Priority: 4}}

	entries := packDay(fixed, flexible)
	for _, en := range entries {
		if en.ID == "t1" {
			t.Errorf("task placed at %s-%s despite no room inside the window", en.StartTime, en.EndTime)
		}
	}
	if err := verifyTimetable(entries, fixed); err != nil {
		t.Errorf("fallback output must satisfy its own verifier: %v", err)
	}
}

func TestPackDayUsesGapBeforeLateFixedEvent(t *testing.T) {
	// The gap between 20:00 and the late call still has room inside the
	// window; clamping must not discard it.
	fixed := []store.Entry{
		{ID: "f1", Name: "long day", StartTime: "08:00", EndTime: "20:00"},
		{ID: "f2", Name: "late call", StartTime: "22:30", EndTime: "23:00"},
	}
	flexible := []store.Task{{ID: "t1", Name: "essay", EstimatedHours: 1, Priority: 4}}

	entries := packDay(fixed, flexible)
	var placed *store.Entry
	for i := range entries {
		if entries[i].ID == "t1" {
			placed = &entries[i]
		}
	}
	if placed == nil {
		t.Fatal("expected the task to be placed in the 20:00 gap")
	}
	if placed.StartTime != "20:00" || placed.EndTime != "21:00" {
		t.Errorf("unexpected placement %s-%s", placed.StartTime, placed.EndTime)
	}
	if err := verifyTimetable(entries, fixed); err != nil {
		t.Errorf("fallback output must satisfy its own verifier: %v", err)
	}
}

func TestPackDayFractionalHours(t *testing.T) {
	entries := packDay(nil, []store.Task{{ID: "t1", Name: "review", EstimatedHours: 1.5, Priority: 3}})
	if len(entries) != 1 {
		t.Fatalf("expected 1 block, got %d", len(entries))
	}
	if entries[0].EndTime != "09:30" {
		t.Errorf("expected 90-minute block ending 09:30, got %s", entries[0].EndTime)
	}
}

func TestPackDayOutputPassesVerify(t *testing.T) {
	fixed := []store.Entry{
		{ID: "f1", Name: "standup", StartTime: "09:00", EndTime: "09:30"},
		{ID: "f2", Name: "lunch", StartTime: "12:00", EndTime: "13:00"},
	}
	flexible := []store.Task{
		{ID: "t1", Name: "deep work", EstimatedHours: 2, Priority: 5},
		{ID: "t2", Name: "email", EstimatedHours: 0.5, Priority: 2},
		{ID: "t3", Name: "reading", EstimatedHours: 1, Priority: 3},
	}

	entries := packDay(fixed, flexible)
	if err := verifyTimetable(entries, fixed); err != nil {
		t.Errorf("fallback output must satisfy its own verifier: %v", err)
	}
}

func TestClockHelpers(t *testing.T) {
	m, err := clockMinutes("09:30")
	if err != nil || m != 570 {
		t.Errorf("clockMinutes(09:30) = %d, %v", m, err)
	}
	if _, err := clockMinutes("25:00"); err == nil {
		t.Error("expected error for 25:00")
	}
	if got := minutesToClock(570); got != "09:30" {
		t.Errorf("minutesToClock(570) = %q", got)
	}
}
