package commands

import (
	"fmt"
	"strings"

	"github.com/nextlevelbuilder/dayclaw/internal/store"
)

func handleNoteAdd(req Request) Result {
	if req.Args == "" {
		return Result{Reply: "Usage: /note <text>"}
	}
	req.Rec.Notes = append(req.Rec.Notes, store.Note{
		ID:        store.NewID(),
		Text:      req.Args,
		CreatedAt: req.Now.UnixMilli(),
	})
	return Result{Reply: fmt.Sprintf("Noted. (%d notes)", len(req.Rec.Notes)), Mutated: true}
}

func handleNotesList(req Request) Result {
	if len(req.Rec.Notes) == 0 {
		return Result{Reply: "No notes yet. Save one with /note <text>."}
	}
	var b strings.Builder
	b.WriteString("Your notes:\n")
	for _, n := range req.Rec.Notes {
		fmt.Fprintf(&b, "- %s  %s\n", n.ID, n.Text)
	}
	return Result{Reply: strings.TrimRight(b.String(), "\n")}
}

func handleTodo(req Request) Result {
	sub, rest := splitSub(req.Args)
	switch sub {
	case "":
		return Result{Reply: "Usage: /todo <text>, /todo done <id>, /todos"}
	case "list":
		return handleTodosList(req)
	case "done":
		return todoDone(req.Rec, rest)
	default:
		req.Rec.Todos = append(req.Rec.Todos, store.Task{
			ID:        store.NewID(),
			Text:      req.Args,
			CreatedAt: req.Now.UnixMilli(),
		})
		return Result{Reply: fmt.Sprintf("Added todo. (%d open)", countOpen(req.Rec.Todos)), Mutated: true}
	}
}

func todoDone(rec *store.UserRecord, id string) Result {
	if id == "" {
		return Result{Reply: "Usage: /todo done <id>"}
	}
	for i := range rec.Todos {
		if rec.Todos[i].ID == id {
			rec.Todos[i].Done = true
			return Result{Reply: fmt.Sprintf("Done: %s", rec.Todos[i].Text), Mutated: true}
		}
	}
	return Result{Reply: fmt.Sprintf("No todo with id %s. See /todos.", id)}
}

func handleTodosList(req Request) Result {
	if len(req.Rec.Todos) == 0 {
		return Result{Reply: "No todos yet. Add one with /todo <text>."}
	}
	var b strings.Builder
	b.WriteString("Your todos:\n")
	for _, t := range req.Rec.Todos {
		mark := " "
		if t.Done {
			mark = "x"
		}
		fmt.Fprintf(&b, "[%s] %s  %s\n", mark, t.ID, t.Text)
	}
	return Result{Reply: strings.TrimRight(b.String(), "\n")}
}

func countOpen(tasks []store.Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Done {
			n++
		}
	}
	return n
}
