package store

import "strings"

// Calendar returns the whole date → entries map.
func (s *Store) Calendar() map[string][]Entry {
	s.calendarMu.Lock()
	defer s.calendarMu.Unlock()
	return s.readCalendar()
}

// EntriesFor returns the timetable stored for one date.
func (s *Store) EntriesFor(date string) []Entry {
	s.calendarMu.Lock()
	defer s.calendarMu.Unlock()
	return s.readCalendar()[normalizeDate(date)]
}

// SetEntries replaces the timetable for one date. Passing nil stores an
// explicit empty list, clearing whatever was there before. Other dates are
// untouched.
func (s *Store) SetEntries(date string, entries []Entry) error {
	s.calendarMu.Lock()
	defer s.calendarMu.Unlock()
	cal := s.readCalendar()
	if entries == nil {
		entries = []Entry{}
	}
	cal[normalizeDate(date)] = entries
	return s.writeJSON(calendarFile, cal)
}

// normalizeDate unifies date keys to YYYY-MM-DD.
func normalizeDate(date string) string {
	return strings.ReplaceAll(date, "/", "-")
}
