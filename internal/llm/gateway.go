package llm

import (
	"context"
	"log"
	"strings"

	"github.com/tidwall/gjson"
)

// Gateway wraps a Client with the structured-output contract the planner
// relies on: send a system/user instruction pair, get a JSON object back.
// Every failure mode (transport error, non-2xx, a reply with no parseable
// object) collapses into an empty object, so callers treat all of them
// uniformly as "no result". The gateway never retries.
type Gateway struct {
	client Client
}

func NewGateway(client Client) *Gateway {
	return &Gateway{client: client}
}

const jsonInstruction = "\nOutput strictly valid JSON."

// Infer sends both instructions and returns the parsed object from the reply.
func (g *Gateway) Infer(ctx context.Context, system, user string) gjson.Result {
	reply, err := g.client.Complete(ctx, system+jsonInstruction, user)
	if err != nil {
		log.Printf("llm: %v", err)
		return emptyObject()
	}
	obj := extractObject(reply)
	if obj == "" {
		log.Printf("llm: reply contained no JSON object")
		return emptyObject()
	}
	return gjson.Parse(obj)
}

func emptyObject() gjson.Result {
	return gjson.Parse("{}")
}

// extractObject pulls the first JSON object out of a model reply, tolerating
// surrounding prose and markdown code fences.
func extractObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	candidate := s[start : end+1]
	if !gjson.Valid(candidate) {
		return ""
	}
	return candidate
}
