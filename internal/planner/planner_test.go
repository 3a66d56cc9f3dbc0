package planner

import (
	"context"
	"testing"
	"time"

	"github.com/tidwall/gjson"

	"github.com/chris/dayplan/internal/gcal"
	"github.com/chris/dayplan/internal/store"
)

// stubReasoner returns a canned JSON object; an empty reply string mimics
// the gateway's fail-closed empty object.
type stubReasoner struct {
	reply string
	calls int

	lastSystem string
	lastUser   string
}

func (s *stubReasoner) Infer(ctx context.Context, system, user string) gjson.Result {
	s.calls++
	s.lastSystem = system
	s.lastUser = user
	if s.reply == "" {
		return gjson.Parse("{}")
	}
	return gjson.Parse(s.reply)
}

// newTestEngine wires a temp-dir store, a stub reasoner, and a disabled
// calendar client (no credentials, so it never touches the network).
func newTestEngine(t *testing.T, reply string) (*Engine, *store.Store, *stubReasoner) {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	ai := &stubReasoner{reply: reply}
	e := New(st, ai, gcal.New("", "", "", "UTC"))
	e.now = func() time.Time {
		return time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)
	}
	return e, st, ai
}
