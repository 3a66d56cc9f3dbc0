package llm

import "context"

// Client performs one self-contained text exchange with a language model.
// There is no session state across calls.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
