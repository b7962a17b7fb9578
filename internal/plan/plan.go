// Package plan implements the dated task plan: cursor addressing,
// deterministic auto-generation from balance targets, and rendering.
package plan

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/nextlevelbuilder/dayclaw/internal/store"
)

// DateFormat is the ISO date used as plan and ritual key.
const DateFormat = "2006-01-02"

// ActiveDate resolves the date plan commands operate on: the explicit
// cursor when set, otherwise the invocation date. The cursor does not
// auto-expire; /plan today clears it.
func ActiveDate(rec *store.UserRecord, now time.Time) string {
	if rec.PlanCursor != "" {
		return rec.PlanCursor
	}
	return now.Format(DateFormat)
}

// PointToTomorrow sets the cursor to the day after now and returns the date.
func PointToTomorrow(rec *store.UserRecord, now time.Time) string {
	rec.PlanCursor = now.AddDate(0, 0, 1).Format(DateFormat)
	return rec.PlanCursor
}

// ClearCursor returns plan addressing to the calendar day.
func ClearCursor(rec *store.UserRecord) {
	rec.PlanCursor = ""
}

// Generate builds the deterministic auto-plan for date: two work blocks
// each sized at half the work target rounded to the nearest hour (min 1),
// one health block, one connection block, one rest block, then up to 3
// tasks copied from the day's recorded morning top3, tagged with their
// source. The result replaces the whole task list for that date.
func Generate(rec *store.UserRecord, date string, now time.Time) []store.Task {
	ts := now.UnixMilli()
	block := int(math.Round(rec.Balance.Work / 2))
	if block < 1 {
		block = 1
	}

	tasks := []store.Task{
		{ID: store.NewID(), Text: fmt.Sprintf("Deep work block 1 (%dh)", block), CreatedAt: ts},
		{ID: store.NewID(), Text: fmt.Sprintf("Deep work block 2 (%dh)", block), CreatedAt: ts},
		{ID: store.NewID(), Text: "Health block: move, train, or walk", CreatedAt: ts},
		{ID: store.NewID(), Text: "Connection block: time with people you love", CreatedAt: ts},
		{ID: store.NewID(), Text: "Rest block: slow down, no screens", CreatedAt: ts},
	}

	if ritual := rec.Rituals.Morning[date]; ritual != nil {
		for i, item := range ritual.Top3 {
			if i == 3 {
				break
			}
			tasks = append(tasks, store.Task{
				ID:        store.NewID(),
				Text:      "Top3: " + item,
				CreatedAt: ts,
			})
		}
	}

	rec.Plans[date] = tasks
	return tasks
}

// Render formats a day's task list for a chat reply.
func Render(date string, tasks []store.Task) string {
	if len(tasks) == 0 {
		return fmt.Sprintf("No plan for %s yet. Add one with /plan add <text>.", date)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Plan for %s:\n", date)
	for _, t := range tasks {
		mark := " "
		if t.Done {
			mark = "x"
		}
		fmt.Fprintf(&b, "[%s] %s  %s\n", mark, t.ID, t.Text)
	}
	return strings.TrimRight(b.String(), "\n")
}

// MarkDone checks the task with the given id for date. Marking an
// already-done task is a no-op success. Returns false when the id does not
// exist for that date.
func MarkDone(rec *store.UserRecord, date, id string) bool {
	tasks := rec.Plans[date]
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Done = true
			return true
		}
	}
	return false
}
