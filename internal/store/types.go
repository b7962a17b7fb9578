// Package store holds the per-sender state document and its persistence.
//
// The whole state is one JSON document shaped as {"users": {senderId: record}}.
// Records are created lazily on first contact and never deleted; /reset only
// clears the conversation memory. Every mutation is followed by a full
// snapshot save before the reply goes out.
package store

// Role identifies who produced a memory entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// MemoryEntry is one half of a conversation turn.
type MemoryEntry struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Preferences holds per-sender reply tuning.
type Preferences struct {
	ResponseMode string `json:"responseMode"` // "assistant" or "formal"
	Language     string `json:"language"`     // "auto" or an ISO language code
}

// Note is an append-only free-text note.
type Note struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"created_at"` // unix millis
}

// Task is a checkable item, used for both todos and dated plan entries.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Done      bool   `json:"done"`
	CreatedAt int64  `json:"created_at"` // unix millis
}

// MorningRitual is the date-keyed morning reflection record.
type MorningRitual struct {
	Intention   string   `json:"intention,omitempty"`
	Top3        []string `json:"top3,omitempty"`
	StressLevel *float64 `json:"stressLevel,omitempty"` // 0..10
	FirstStep   string   `json:"firstStep,omitempty"`
}

// NightRitual is the date-keyed evening reflection record.
type NightRitual struct {
	Win      string `json:"win,omitempty"`
	Hard     string `json:"hard,omitempty"`
	Learn    string `json:"learn,omitempty"`
	Tomorrow string `json:"tomorrow,omitempty"`
}

// Rituals groups both ritual maps, keyed by ISO date (YYYY-MM-DD).
type Rituals struct {
	Morning map[string]*MorningRitual `json:"morning"`
	Night   map[string]*NightRitual   `json:"night"`
}

// BalanceTargets are target hours per day, each clamped to [0,24].
type BalanceTargets struct {
	Sleep  float64 `json:"sleep"`
	Work   float64 `json:"work"`
	Love   float64 `json:"love"`
	Health float64 `json:"health"`
	Rest   float64 `json:"rest"`
}

// UserRecord is all state for one sender.
type UserRecord struct {
	Preferences Preferences       `json:"preferences"`
	Profile     map[string]string `json:"profile"`
	Notes       []Note            `json:"notes"`
	Todos       []Task            `json:"todos"`
	Plans       map[string][]Task `json:"plans"`
	PlanCursor  string            `json:"planCursor,omitempty"` // empty = follow the calendar
	Rituals     Rituals           `json:"rituals"`
	Balance     BalanceTargets    `json:"balanceTargets"`
	Memory      []MemoryEntry     `json:"memory"`
}

// Document is the persisted top-level shape.
type Document struct {
	Users map[string]*UserRecord `json:"users"`
}

// reservedProfileKeys are structured field names the open profile map must
// not shadow. /profile set skips them with a notice.
var reservedProfileKeys = map[string]bool{
	"preferences": true,
	"notes":       true,
	"todos":       true,
	"plans":       true,
	"rituals":     true,
	"balance":     true,
	"memory":      true,
}

// IsReservedProfileKey reports whether k collides with a structured field.
func IsReservedProfileKey(k string) bool {
	return reservedProfileKeys[k]
}

// NewUserRecord returns a record with defaults applied.
func NewUserRecord() *UserRecord {
	return &UserRecord{
		Preferences: Preferences{ResponseMode: "assistant", Language: "auto"},
		Profile:     make(map[string]string),
		Plans:       make(map[string][]Task),
		Rituals: Rituals{
			Morning: make(map[string]*MorningRitual),
			Night:   make(map[string]*NightRitual),
		},
		Balance: BalanceTargets{Sleep: 8, Work: 8, Love: 2, Health: 2, Rest: 4},
	}
}

// normalize repairs nil maps after JSON decoding so handlers can assign
// without nil checks.
func (r *UserRecord) normalize() {
	if r.Profile == nil {
		r.Profile = make(map[string]string)
	}
	if r.Plans == nil {
		r.Plans = make(map[string][]Task)
	}
	if r.Rituals.Morning == nil {
		r.Rituals.Morning = make(map[string]*MorningRitual)
	}
	if r.Rituals.Night == nil {
		r.Rituals.Night = make(map[string]*NightRitual)
	}
}
