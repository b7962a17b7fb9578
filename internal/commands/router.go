// Package commands implements the slash-command router over per-sender
// structured state.
//
// A message is a command only when it starts with "/" followed by a known
// token. Token matching is case-insensitive; argument text keeps its case.
// Dispatch goes through a declarative token → handler table so each
// handler is testable against a bare UserRecord. Handlers never fail the
// request: malformed input produces a corrective reply instead.
package commands

import (
	"strings"
	"time"

	"github.com/nextlevelbuilder/dayclaw/internal/store"
)

// Request carries one command invocation into a handler.
type Request struct {
	Now  time.Time
	Args string // text after the command token, case preserved
	Rec  *store.UserRecord
}

// Result is what a handler hands back to the pipeline.
type Result struct {
	Reply   string
	Mutated bool // true when the record changed and must be persisted
}

type handlerFunc func(req Request) Result

// table maps command tokens to handlers. Aliases point at the same
// handler.
var table = map[string]handlerFunc{
	"help":    handleHelp,
	"start":   handleHelp,
	"reset":   handleReset,
	"mode":    handleMode,
	"lang":    handleLang,
	"profile": handleProfile,
	"note":    handleNoteAdd,
	"notes":   handleNotesList,
	"todo":    handleTodo,
	"todos":   handleTodosList,
	"plan":    handlePlan,
	"morning": handleMorning,
	"night":   handleNight,
	"balance": handleBalance,
}

// Route dispatches text against the command table. The second return is
// false when the message is not a recognized command, signaling the caller
// to fall through to the conversational path.
func Route(now time.Time, text string, rec *store.UserRecord) (Result, bool) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) == 0 || trimmed[0] != '/' {
		return Result{}, false
	}

	head := strings.SplitN(trimmed, " ", 2)
	token := strings.ToLower(strings.TrimPrefix(head[0], "/"))
	// Strip @botname suffix so group mentions still match.
	token = strings.SplitN(token, "@", 2)[0]

	handler, ok := table[token]
	if !ok {
		return Result{}, false
	}

	args := ""
	if len(head) == 2 {
		args = strings.TrimSpace(head[1])
	}
	return handler(Request{Now: now, Args: args, Rec: rec}), true
}

const helpText = `Here is what I can do:
/help — this message
/reset — clear our conversation history
/profile — show your profile; /profile set key=value ...
/note <text> — save a note; /notes — list notes
/todo <text> — add a todo; /todo done <id>; /todos — list
/plan — show the day's plan; /plan add <text>; /plan done <id>
/plan tomorrow — address tomorrow; /plan today — back to today
/morning — morning check-in; /morning set intention=.. top3=a,b,c stress=4 first_step=..
/morning auto — generate the day's plan from your balance targets
/night set win=.. hard=.. learn=.. tomorrow=..
/balance — time targets; /balance set sleep=8 work=7 ...
/mode assistant|formal — reply style; /lang auto|<code> — reply language

Anything else, just talk to me.`

func handleHelp(Request) Result {
	return Result{Reply: helpText}
}

func handleReset(req Request) Result {
	req.Rec.Memory = nil
	return Result{Reply: "Conversation history has been reset.", Mutated: true}
}
