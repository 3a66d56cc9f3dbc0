package store

// Routines returns every stored routine in file order.
func (s *Store) Routines() []Routine {
	s.routinesMu.Lock()
	defer s.routinesMu.Unlock()
	return s.readRoutines()
}

// AddRoutine appends one routine.
func (s *Store) AddRoutine(r Routine) error {
	s.routinesMu.Lock()
	defer s.routinesMu.Unlock()
	routines := append(s.readRoutines(), r)
	return s.writeJSON(routinesFile, routines)
}

// RemoveRoutine deletes the routine with the given id. It reports whether a
// routine was removed; false means the file was left untouched.
func (s *Store) RemoveRoutine(id string) (bool, error) {
	s.routinesMu.Lock()
	defer s.routinesMu.Unlock()
	routines := s.readRoutines()
	kept := make([]Routine, 0, len(routines))
	for _, r := range routines {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(routines) {
		return false, nil
	}
	if err := s.writeJSON(routinesFile, kept); err != nil {
		return false, err
	}
	return true, nil
}
