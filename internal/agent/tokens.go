package agent

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/nextlevelbuilder/dayclaw/internal/providers"
)

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
)

// estimateTokens approximates the prompt size for debug logging. Uses the
// cl100k_base encoding when available, otherwise falls back to the rough
// 4-chars-per-token heuristic.
func estimateTokens(msgs []providers.Message) int {
	encodingOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			encoding = enc
		}
	})

	total := 0
	for _, m := range msgs {
		if encoding != nil {
			total += len(encoding.Encode(m.Content, nil, nil))
		} else {
			total += len(m.Content) / 4
		}
		total += 4 // per-message role/format overhead
	}
	return total
}
