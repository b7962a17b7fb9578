// Package intent classifies an inbound message as needing real-time web
// context or not.
package intent

import (
	"context"
	"strings"

	"github.com/nextlevelbuilder/dayclaw/internal/providers"
)

// Intent is the gate's verdict.
type Intent int

const (
	// General is the fail-safe default: do not search unless the
	// classifier explicitly signals otherwise. Any unexpected model
	// output lands here, by contract rather than by accident.
	General Intent = iota
	Realtime
)

func (i Intent) String() string {
	if i == Realtime {
		return "REALTIME"
	}
	return "GENERAL"
}

// tokenRealtime is the literal the classifier must return, matched
// case-sensitively after trimming surrounding whitespace.
const tokenRealtime = "REALTIME"

const classifierInstruction = `You are a routing classifier. Decide whether answering the user's message requires current, time-sensitive information from the web (news, weather, prices, scores, schedules, anything after your training data).
Reply with exactly one token and nothing else:
REALTIME - current web information is required
GENERAL - it can be answered from general knowledge or conversation context`

// Gate issues one classification call per message. No retries: a call
// failure propagates to the caller, which owns the degraded reply.
type Gate struct {
	provider providers.Provider
	model    string
}

// NewGate builds a gate. model may be empty to use the provider default.
func NewGate(provider providers.Provider, model string) *Gate {
	return &Gate{provider: provider, model: model}
}

// Classify returns the verdict for one message.
func (g *Gate) Classify(ctx context.Context, message string) (Intent, error) {
	resp, err := g.provider.Chat(ctx, providers.ChatRequest{
		Model: g.model,
		Messages: []providers.Message{
			{Role: "system", Content: classifierInstruction},
			{Role: "user", Content: message},
		},
	})
	if err != nil {
		return General, err
	}
	if strings.TrimSpace(resp.Content) == tokenRealtime {
		return Realtime, nil
	}
	return General, nil
}
