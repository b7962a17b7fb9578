package commands

import (
	"strings"

	shellwords "github.com/mattn/go-shellwords"
)

// tokenize splits an argument string into whitespace-delimited tokens.
// Quoted segments survive as single tokens; on a parse error (unbalanced
// quote) plain field splitting is used instead.
func tokenize(args string) []string {
	fields, err := shellwords.Parse(args)
	if err != nil {
		return strings.Fields(args)
	}
	return fields
}

// parseKV extracts key=value pairs from the argument string. Tokens
// without "=" are ignored, the split happens at the first "=", and keys
// are lowercased. Later duplicates win.
func parseKV(args string) map[string]string {
	out := make(map[string]string)
	for _, tok := range tokenize(args) {
		k, v, ok := strings.Cut(tok, "=")
		if !ok || k == "" {
			continue
		}
		out[strings.ToLower(k)] = v
	}
	return out
}

// unsnake turns underscores into spaces so a single token can carry a
// multi-word value (top3=call_mom,ship_draft).
func unsnake(v string) string {
	return strings.ReplaceAll(v, "_", " ")
}

// splitList splits a comma-separated value into trimmed, non-empty items.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		item := strings.TrimSpace(unsnake(part))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
