package commands

import (
	"testing"
	"time"

	"github.com/nextlevelbuilder/dayclaw/internal/store"
)

var testNow = time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

func TestRoute_NonCommandFallsThrough(t *testing.T) {
	rec := store.NewUserRecord()
	for _, text := range []string{"hello there", "", "  ", "what's /plan?"} {
		if _, handled := Route(testNow, text, rec); handled {
			t.Errorf("%q should not be handled as a command", text)
		}
	}
}

func TestRoute_UnknownCommandFallsThrough(t *testing.T) {
	rec := store.NewUserRecord()
	if _, handled := Route(testNow, "/frobnicate now", rec); handled {
		t.Error("unknown command must fall through to the conversational path")
	}
}

func TestRoute_TokenCaseInsensitive(t *testing.T) {
	rec := store.NewUserRecord()
	res, handled := Route(testNow, "/NOTE Remember the Milk", rec)
	if !handled {
		t.Fatal("expected /NOTE to route")
	}
	if !res.Mutated || len(rec.Notes) != 1 {
		t.Fatalf("expected one note, got %d", len(rec.Notes))
	}
	// Argument case must be preserved.
	if rec.Notes[0].Text != "Remember the Milk" {
		t.Errorf("argument case mangled: %q", rec.Notes[0].Text)
	}
}

func TestRoute_BotNameSuffix(t *testing.T) {
	rec := store.NewUserRecord()
	if _, handled := Route(testNow, "/help@dayclaw_bot", rec); !handled {
		t.Error("expected /help@botname to route to /help")
	}
}

func TestReset_ClearsMemoryOnly(t *testing.T) {
	rec := store.NewUserRecord()
	rec.Memory = []store.MemoryEntry{
		{Role: store.RoleUser, Content: "hi"},
		{Role: store.RoleAssistant, Content: "hello"},
	}
	rec.Profile["name"] = "Ada"
	rec.Todos = append(rec.Todos, store.Task{ID: "t1", Text: "x"})
	rec.Plans["2026-08-29"] = []store.Task{{ID: "p1", Text: "y"}}

	res, handled := Route(testNow, "/reset", rec)
	if !handled || !res.Mutated {
		t.Fatal("expected /reset to be handled and mutating")
	}
	if len(rec.Memory) != 0 {
		t.Error("memory not cleared")
	}
	if rec.Profile["name"] != "Ada" || len(rec.Todos) != 1 || len(rec.Plans["2026-08-29"]) != 1 {
		t.Error("/reset must leave structured state unchanged")
	}
}

func TestTodo_DoneAndNotFound(t *testing.T) {
	rec := store.NewUserRecord()
	Route(testNow, "/todo water the plants", rec)
	if len(rec.Todos) != 1 || rec.Todos[0].Done {
		t.Fatalf("unexpected todos: %+v", rec.Todos)
	}

	id := rec.Todos[0].ID
	res, _ := Route(testNow, "/todo done "+id, rec)
	if !res.Mutated || !rec.Todos[0].Done {
		t.Error("expected todo to be checked")
	}

	res, _ = Route(testNow, "/todo done zzzzzzzz", rec)
	if res.Mutated {
		t.Error("missing id must not mutate")
	}
}

func TestMode_InvalidValueRejected(t *testing.T) {
	rec := store.NewUserRecord()
	res, _ := Route(testNow, "/mode shouty", rec)
	if res.Mutated || rec.Preferences.ResponseMode != "assistant" {
		t.Errorf("invalid mode must not apply, got %q", rec.Preferences.ResponseMode)
	}

	res, _ = Route(testNow, "/mode FORMAL", rec)
	if !res.Mutated || rec.Preferences.ResponseMode != "formal" {
		t.Errorf("expected formal, got %q", rec.Preferences.ResponseMode)
	}
}

func TestProfileSet_ReservedKeysSkipped(t *testing.T) {
	rec := store.NewUserRecord()
	res, _ := Route(testNow, "/profile set name=Ada_Lovelace memory=oops", rec)
	if !res.Mutated {
		t.Fatal("valid key should still apply")
	}
	if rec.Profile["name"] != "Ada Lovelace" {
		t.Errorf("underscores should become spaces: %q", rec.Profile["name"])
	}
	if _, ok := rec.Profile["memory"]; ok {
		t.Error("reserved key must not land in the profile map")
	}
}
