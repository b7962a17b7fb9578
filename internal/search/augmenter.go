package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	maxResults   = 5
	excerptLimit = 500

	cacheSize = 128
	cacheTTL  = 5 * time.Minute
)

// UnavailableMarker is injected when the provider is missing, fails, or
// returns nothing. The composer passes it on so the model knows recency
// claims cannot be verified, instead of silently getting no block.
const UnavailableMarker = "Real-time web context is unavailable right now. Treat any recency claims as unverified."

// Augmenter turns a message into an advisory context block. The block is
// recomputed per request, cached briefly, and never persisted.
type Augmenter struct {
	provider Provider
	cache    *expirable.LRU[string, string]
}

// NewAugmenter returns an augmenter. With an empty API key there is no
// provider and every call degrades to the unavailable marker.
func NewAugmenter(braveAPIKey string) *Augmenter {
	a := &Augmenter{
		cache: expirable.NewLRU[string, string](cacheSize, nil, cacheTTL),
	}
	if braveAPIKey != "" {
		a.provider = newBraveProvider(braveAPIKey)
	}
	return a
}

// Enabled reports whether a search provider is configured.
func (a *Augmenter) Enabled() bool { return a.provider != nil }

// Augment returns the context block for message. It never fails the
// request: provider errors and empty result sets both yield the
// unavailable marker.
func (a *Augmenter) Augment(ctx context.Context, message string) string {
	if a.provider == nil {
		return UnavailableMarker
	}

	if cached, ok := a.cache.Get(message); ok {
		slog.Debug("search: cache hit", "query", message)
		return cached
	}

	results, err := a.provider.Search(ctx, message, maxResults)
	if err != nil {
		slog.Warn("search: provider failed", "provider", a.provider.Name(), "error", err)
		return UnavailableMarker
	}
	if len(results) == 0 {
		return UnavailableMarker
	}

	block := formatBlock(results)
	a.cache.Add(message, block)
	return block
}

func formatBlock(results []Result) string {
	var b strings.Builder
	b.WriteString("Current web search results (advisory context, not verified ground truth):\n")
	for i, r := range results {
		if i == maxResults {
			break
		}
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, r.Title, r.URL)
		if r.Description != "" {
			fmt.Fprintf(&b, "   %s\n", truncateStr(r.Description, excerptLimit))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
