// Package planner holds the scheduling core: Phase 1 decomposes one
// high-difficulty task into fixed-time subtasks, Phase 2 packs a day's fixed
// events and pending flexible tasks into a single conflict-free timetable.
// Both phases delegate the reasoning itself to a gateway and own everything
// around the call: input curation, prompt framing, validation of the output,
// fallback packing, and persistence.
package planner

import (
	"context"
	"log"
	"time"

	"github.com/tidwall/gjson"

	"github.com/chris/dayplan/internal/gcal"
	"github.com/chris/dayplan/internal/store"
)

// Reasoner is the reasoning-gateway contract: a structured object on
// success, an empty object on any failure. Never an error.
type Reasoner interface {
	Infer(ctx context.Context, system, user string) gjson.Result
}

// Engine wires the record store, the reasoning gateway, and the remote
// calendar together. One Engine serves all top-level operations.
type Engine struct {
	store *store.Store
	ai    Reasoner
	cal   *gcal.Client
	now   func() time.Time
}

func New(st *store.Store, ai Reasoner, cal *gcal.Client) *Engine {
	return &Engine{store: st, ai: ai, cal: cal, now: time.Now}
}

// Result is the outcome of a top-level operation. Informational outcomes
// ("nothing to decompose", "not found") carry a message with Changed false;
// they are not errors.
type Result struct {
	Changed bool
	Message string
}

// pushTask mirrors a timed task to the remote calendar. Best effort: the
// local write has already succeeded when this runs, so failures are logged
// and never propagated.
func (e *Engine) pushTask(ctx context.Context, t store.Task) {
	if t.Date == "" || t.StartTime == "" || t.EndTime == "" {
		log.Printf("planner: %q has no fixed time, keeping it local only", t.Name)
		return
	}
	if err := e.cal.Push(ctx, t.Name, t.Date, t.StartTime, t.EndTime, t.ID, ""); err != nil {
		log.Printf("planner: calendar push for %s: %v", t.ID, err)
	}
}
