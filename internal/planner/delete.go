package planner

import (
	"context"
	"fmt"
	"log"
)

// Delete removes a routine or task by id. Routines are searched first; a
// routine match never touches the task collection. Task deletion cascades
// one level to direct subtasks. Each removed record gets a best-effort
// remote calendar delete after the local write.
func (e *Engine) Delete(ctx context.Context, id string) (Result, error) {
	removed, err := e.store.RemoveRoutine(id)
	if err != nil {
		return Result{}, fmt.Errorf("removing routine %s: %w", id, err)
	}
	if removed {
		if err := e.cal.Remove(ctx, id); err != nil {
			log.Printf("planner: calendar delete for %s: %v", id, err)
		}
		return Result{Changed: true, Message: fmt.Sprintf("deleted routine %s", id)}, nil
	}

	removedIDs, err := e.store.RemoveTaskCascade(id)
	if err != nil {
		return Result{}, fmt.Errorf("removing task %s: %w", id, err)
	}
	if len(removedIDs) > 0 {
		for _, rid := range removedIDs {
			if err := e.cal.Remove(ctx, rid); err != nil {
				log.Printf("planner: calendar delete for %s: %v", rid, err)
			}
		}
		return Result{Changed: true, Message: fmt.Sprintf("deleted %d task(s) including subtasks", len(removedIDs))}, nil
	}

	return Result{Message: fmt.Sprintf("no routine or task with id %s", id)}, nil
}
