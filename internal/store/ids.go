package store

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a short id for notes, todos, and plan tasks. Eight hex
// chars keeps /todo done <id> typeable from a phone keyboard.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
