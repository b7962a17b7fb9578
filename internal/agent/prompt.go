package agent

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/nextlevelbuilder/dayclaw/internal/providers"
	"github.com/nextlevelbuilder/dayclaw/internal/store"
)

const baseInstruction = `You are a personal daily companion reached over chat. Be concise and warm; answer in a form that reads well in a messaging app (short paragraphs, no markdown tables).
Stored personal context below exists for conversational continuity only. Do not present it as something the user just told you.
Never assert claims about current events, prices, weather, or anything time-sensitive unless a verified context block is part of this instruction; without one, say that you cannot verify recent information.`

// composeMessages assembles the ordered model input: one system
// instruction, the memory window in order, then the new user message.
func composeMessages(rec *store.UserRecord, text, contextBlock string, now time.Time) []providers.Message {
	msgs := make([]providers.Message, 0, len(rec.Memory)+2)
	msgs = append(msgs, providers.Message{
		Role:    "system",
		Content: buildSystemInstruction(rec, contextBlock, now),
	})
	for _, entry := range rec.Memory {
		msgs = append(msgs, providers.Message{Role: string(entry.Role), Content: entry.Content})
	}
	msgs = append(msgs, providers.Message{Role: "user", Content: text})
	return msgs
}

func buildSystemInstruction(rec *store.UserRecord, contextBlock string, now time.Time) string {
	var b strings.Builder
	b.WriteString(baseInstruction)

	fmt.Fprintf(&b, "\n\nToday is %s.", now.Format("Monday, 2006-01-02"))

	switch rec.Preferences.ResponseMode {
	case "formal":
		b.WriteString("\nUse a formal, professional tone.")
	default:
		b.WriteString("\nUse a friendly assistant tone.")
	}
	if lang := rec.Preferences.Language; lang != "" && lang != "auto" {
		fmt.Fprintf(&b, "\nAlways reply in language %q.", lang)
	} else {
		b.WriteString("\nReply in the language the user writes in.")
	}

	if len(rec.Profile) > 0 {
		b.WriteString("\n\nWhat you know about the user:")
		keys := make([]string, 0, len(rec.Profile))
		for k := range rec.Profile {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "\n- %s: %s", k, rec.Profile[k])
		}
	}

	// The context block is advisory and always last, as its own paragraph.
	if contextBlock != "" {
		b.WriteString("\n\n")
		b.WriteString(contextBlock)
	}

	return b.String()
}
