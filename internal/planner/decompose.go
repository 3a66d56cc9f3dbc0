package planner

import (
	"context"
	"fmt"
	"log"

	"github.com/chris/dayplan/internal/ids"
	"github.com/chris/dayplan/internal/store"
)

const (
	minDifficulty = 4
	minSubtasks   = 2
	maxSubtasks   = 6

	fallbackStart = "10:00"
	fallbackEnd   = "11:00"
)

// Decompose runs Phase 1: it picks the first task in store order with
// difficulty >= 4 that has not been expanded yet and splits it into
// fixed-time subtasks carrying the parent's ratings. The parent is flagged
// only after every subtask persisted, so a failed run stays eligible for
// retry.
func (e *Engine) Decompose(ctx context.Context) (Result, error) {
	tasks := e.store.Tasks()
	var parent *store.Task
	for i := range tasks {
		if tasks[i].Difficulty >= minDifficulty && !tasks[i].HasGeneratedSubtasks {
			parent = &tasks[i]
			break
		}
	}
	if parent == nil {
		return Result{Message: "no high-difficulty task needs decomposing"}, nil
	}

	today := e.now().Format(store.DateLayout)
	resp := e.ai.Infer(ctx, decomposeSystemPrompt, decomposeUserPrompt(parent.Name, parent.Date, today))
	items := resp.Get("decomposed_tasks").Array()
	if len(items) < minSubtasks || len(items) > maxSubtasks {
		if len(items) != 0 {
			log.Printf("planner: discarding decomposition with %d subtasks", len(items))
		}
		return Result{Message: "model produced no subtasks"}, nil
	}

	subtasks := make([]store.Task, 0, len(items))
	for _, item := range items {
		sub := store.Task{
			ID:             ids.New(),
			ParentID:       parent.ID,
			Name:           item.Get("name").String(),
			Date:           item.Get("date").String(),
			StartTime:      item.Get("start_time").String(),
			EndTime:        item.Get("end_time").String(),
			EstimatedHours: item.Get("estimated_hours").Float(),
			Priority:       ratingOrDefault(parent.Priority),
			Importance:     ratingOrDefault(parent.Importance),
			Difficulty:     ratingOrDefault(parent.Difficulty),
			IsFixed:        true,
			Status:         store.StatusPending,
		}
		if sub.StartTime == "" || sub.EndTime == "" {
			sub.StartTime, sub.EndTime = fallbackStart, fallbackEnd
		}
		subtasks = append(subtasks, sub)
	}

	for _, sub := range subtasks {
		if err := e.store.AddTask(sub); err != nil {
			return Result{}, fmt.Errorf("saving subtask %q: %w", sub.Name, err)
		}
		e.pushTask(ctx, sub)
	}
	if err := e.store.MarkDecomposed(parent.ID); err != nil {
		return Result{}, fmt.Errorf("flagging parent %s: %w", parent.ID, err)
	}

	return Result{
		Changed: true,
		Message: fmt.Sprintf("created %d subtasks for %q", len(subtasks), parent.Name),
	}, nil
}

// ratingOrDefault substitutes the neutral rating when the parent lacks one.
func ratingOrDefault(v int) int {
	if v == 0 {
		return 3
	}
	return v
}
