// Package agent wires the request pipeline: command routing, the intent
// gate, search augmentation, prompt composition, the model call, and
// memory recording.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nextlevelbuilder/dayclaw/internal/commands"
	"github.com/nextlevelbuilder/dayclaw/internal/intent"
	"github.com/nextlevelbuilder/dayclaw/internal/memory"
	"github.com/nextlevelbuilder/dayclaw/internal/providers"
	"github.com/nextlevelbuilder/dayclaw/internal/store"
)

const defaultMaxTurns = 15

// Classifier is the intent gate seam (satisfied by *intent.Gate).
type Classifier interface {
	Classify(ctx context.Context, message string) (intent.Intent, error)
}

// Augmenter is the search context seam (satisfied by *search.Augmenter).
type Augmenter interface {
	Augment(ctx context.Context, message string) string
}

// Config holds assistant construction parameters.
type Config struct {
	Store     *store.Store
	Provider  providers.Provider
	Gate      Classifier
	Augmenter Augmenter
	Model     string // empty = provider default
	MaxTurns  int    // memory window size in turns; entries = 2x
}

// Assistant processes one inbound message to one reply.
type Assistant struct {
	store     *store.Store
	provider  providers.Provider
	gate      Classifier
	augmenter Augmenter
	model     string
	maxTurns  int
}

func New(cfg Config) *Assistant {
	maxTurns := cfg.MaxTurns
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}
	return &Assistant{
		store:     cfg.Store,
		provider:  cfg.Provider,
		gate:      cfg.Gate,
		augmenter: cfg.Augmenter,
		model:     cfg.Model,
		maxTurns:  maxTurns,
	}
}

// HandleMessage runs the full pipeline for one sender message and returns
// the reply text. An empty reply with nil error means no reply content
// (empty inbound text). Model and persistence failures return an error;
// the shell owns the neutral acknowledgement.
func (a *Assistant) HandleMessage(ctx context.Context, senderID, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}

	now := time.Now()
	rec := a.store.User(senderID)

	if res, handled := commands.Route(now, text, rec); handled {
		if res.Mutated {
			if err := a.store.Save(ctx); err != nil {
				return "", fmt.Errorf("persist after command: %w", err)
			}
		}
		slog.Debug("agent: command handled", "sender", senderID, "mutated", res.Mutated)
		return res.Reply, nil
	}

	verdict, err := a.gate.Classify(ctx, text)
	if err != nil {
		return "", fmt.Errorf("classify intent: %w", err)
	}

	contextBlock := ""
	if verdict == intent.Realtime {
		contextBlock = a.augmenter.Augment(ctx, text)
	}

	msgs := composeMessages(rec, text, contextBlock, now)
	slog.Debug("agent: composed prompt",
		"sender", senderID,
		"intent", verdict.String(),
		"messages", len(msgs),
		"est_tokens", estimateTokens(msgs),
	)

	resp, err := a.provider.Chat(ctx, providers.ChatRequest{Model: a.model, Messages: msgs})
	if err != nil {
		return "", fmt.Errorf("model call: %w", err)
	}

	memory.RecordTurn(rec, text, resp.Content, a.maxTurns)
	if err := a.store.Save(ctx); err != nil {
		return "", fmt.Errorf("persist after reply: %w", err)
	}

	return resp.Content, nil
}
