package store

import "fmt"

// Tasks returns every stored task in file order.
func (s *Store) Tasks() []Task {
	s.tasksMu.Lock()
	defer s.tasksMu.Unlock()
	return s.readTasks()
}

// SaveTasks replaces the whole task collection.
func (s *Store) SaveTasks(tasks []Task) error {
	s.tasksMu.Lock()
	defer s.tasksMu.Unlock()
	return s.writeJSON(tasksFile, tasks)
}

// AddTask appends one task.
func (s *Store) AddTask(t Task) error {
	s.tasksMu.Lock()
	defer s.tasksMu.Unlock()
	tasks := append(s.readTasks(), t)
	return s.writeJSON(tasksFile, tasks)
}

// MarkDecomposed flips has_generated_subtasks on the given task so it is
// never selected for decomposition again.
func (s *Store) MarkDecomposed(id string) error {
	s.tasksMu.Lock()
	defer s.tasksMu.Unlock()
	tasks := s.readTasks()
	found := false
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].HasGeneratedSubtasks = true
			found = true
		}
	}
	if !found {
		return fmt.Errorf("task %s not found", id)
	}
	return s.writeJSON(tasksFile, tasks)
}

// RemoveTaskCascade removes the task with the given id plus every task whose
// ParentID equals it (one level only), returning the removed ids. A nil
// result means the id matched nothing and the file was left untouched.
func (s *Store) RemoveTaskCascade(id string) ([]string, error) {
	s.tasksMu.Lock()
	defer s.tasksMu.Unlock()
	tasks := s.readTasks()

	exists := false
	for _, t := range tasks {
		if t.ID == id {
			exists = true
			break
		}
	}
	if !exists {
		return nil, nil
	}

	drop := map[string]bool{id: true}
	for _, t := range tasks {
		if t.ParentID == id {
			drop[t.ID] = true
		}
	}

	kept := make([]Task, 0, len(tasks))
	var removed []string
	for _, t := range tasks {
		if drop[t.ID] {
			removed = append(removed, t.ID)
		} else {
			kept = append(kept, t)
		}
	}
	if err := s.writeJSON(tasksFile, kept); err != nil {
		return nil, err
	}
	return removed, nil
}
