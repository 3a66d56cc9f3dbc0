package planner

import (
	"encoding/json"
	"fmt"

	"github.com/chris/dayplan/internal/store"
)

const decomposeSystemPrompt = `You are a project manager. Break the given task into 3-5 subtasks and assign each one a time block. Output JSON: {"decomposed_tasks": [{"name": "...", "date": "YYYY-MM-DD", "start_time": "HH:MM", "end_time": "HH:MM", "estimated_hours": 1}]}`

func decomposeUserPrompt(name, deadline, today string) string {
	return fmt.Sprintf("Task: %s, original deadline: %s. Schedule the subtasks on dates on or after %s.", name, deadline, today)
}

const scheduleSystemPrompt = `You are a scheduling expert. Fit the to-do tasks into the free slots between the fixed events. Output JSON: {"daily_schedule": [{"id": "...", "name": "...", "start_time": "HH:MM", "end_time": "HH:MM"}]}. The schedule runs from 08:00 to 22:00.`

type fixedItem struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type todoItem struct {
	Name           string  `json:"name"`
	EstimatedHours float64 `json:"estimated_hours"`
	Priority       int     `json:"priority"`
}

func scheduleUserPrompt(date string, fixed []store.Entry, todos []store.Task) string {
	fixedInfo := make([]fixedItem, len(fixed))
	for i, f := range fixed {
		fixedInfo[i] = fixedItem{Name: f.Name, Start: f.StartTime, End: f.EndTime}
	}
	todoInfo := make([]todoItem, len(todos))
	for i, t := range todos {
		todoInfo[i] = todoItem{Name: t.Name, EstimatedHours: t.EstimatedHours, Priority: t.Priority}
	}

	// Both slices hold only strings, floats, and ints; marshal cannot fail.
	fb, _ := json.Marshal(fixedInfo)
	tb, _ := json.Marshal(todoInfo)

	return fmt.Sprintf(
		"Date: %s\nFixed events (immovable): %s\nTo-do tasks (fill into gaps): %s\nAssign a time block to every to-do task, merge them with the fixed events, and output a single list in time order with no conflicts.",
		date, fb, tb,
	)
}
