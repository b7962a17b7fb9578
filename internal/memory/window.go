// Package memory implements the bounded per-sender conversation window.
//
// A turn is one user entry plus the assistant entry that followed it. The
// cap is applied only after both halves of a turn were appended, so the
// window always holds complete pairs and its length stays even.
package memory

import "github.com/nextlevelbuilder/dayclaw/internal/store"

// Append returns mem with one entry added.
func Append(mem []store.MemoryEntry, role store.Role, content string) []store.MemoryEntry {
	return append(mem, store.MemoryEntry{Role: role, Content: content})
}

// Cap returns a new slice holding only the last n entries by insertion
// order. Pure: the input is not modified.
func Cap(mem []store.MemoryEntry, n int) []store.MemoryEntry {
	if n < 0 {
		n = 0
	}
	if len(mem) <= n {
		out := make([]store.MemoryEntry, len(mem))
		copy(out, mem)
		return out
	}
	out := make([]store.MemoryEntry, n)
	copy(out, mem[len(mem)-n:])
	return out
}

// RecordTurn appends the user/assistant pair and caps the window to
// maxTurns complete turns.
func RecordTurn(rec *store.UserRecord, userText, assistantText string, maxTurns int) {
	rec.Memory = Append(rec.Memory, store.RoleUser, userText)
	rec.Memory = Append(rec.Memory, store.RoleAssistant, assistantText)
	rec.Memory = Cap(rec.Memory, maxTurns*2)
}

// Reset clears the window. Structured state is untouched.
func Reset(rec *store.UserRecord) {
	rec.Memory = nil
}
