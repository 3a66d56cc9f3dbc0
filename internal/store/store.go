// Package store persists tasks, routines, and the per-date calendar as flat
// JSON files. Reads never fail: a missing or unparseable file is an empty
// collection. Writes replace the whole collection via a temp-file rename, so
// a failed write leaves the previous contents intact.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	tasksFile    = "tasks.json"
	routinesFile = "routine.json"
	calendarFile = "calendar.json"
)

// Store is a handle on one data directory. Each collection has its own lock,
// held across every read-modify-write cycle, so concurrent callers serialize
// instead of racing on the files.
type Store struct {
	dir string

	tasksMu    sync.Mutex
	routinesMu sync.Mutex
	calendarMu sync.Mutex
}

func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// readTasks loads tasks.json. Callers must hold tasksMu.
func (s *Store) readTasks() []Task {
	data, err := os.ReadFile(s.path(tasksFile))
	if err != nil {
		return nil
	}
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil
	}
	return tasks
}

// readRoutines loads routine.json. Callers must hold routinesMu.
func (s *Store) readRoutines() []Routine {
	data, err := os.ReadFile(s.path(routinesFile))
	if err != nil {
		return nil
	}
	var routines []Routine
	if err := json.Unmarshal(data, &routines); err != nil {
		return nil
	}
	return routines
}

// readCalendar loads calendar.json. Callers must hold calendarMu.
func (s *Store) readCalendar() map[string][]Entry {
	data, err := os.ReadFile(s.path(calendarFile))
	if err != nil {
		return map[string][]Entry{}
	}
	var cal map[string][]Entry
	if err := json.Unmarshal(data, &cal); err != nil || cal == nil {
		return map[string][]Entry{}
	}
	return cal
}

// writeJSON marshals v and renames it into place over the named file.
func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	tmp := s.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		return fmt.Errorf("replacing %s: %w", name, err)
	}
	return nil
}
