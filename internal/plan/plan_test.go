package plan

import (
	"testing"
	"time"

	"github.com/nextlevelbuilder/dayclaw/internal/store"
)

var testNow = time.Date(2026, 8, 29, 7, 30, 0, 0, time.UTC)

func TestActiveDate_DefaultsToToday(t *testing.T) {
	rec := store.NewUserRecord()
	if got := ActiveDate(rec, testNow); got != "2026-08-29" {
		t.Errorf("got %q", got)
	}
}

func TestActiveDate_CursorWins(t *testing.T) {
	rec := store.NewUserRecord()
	rec.PlanCursor = "2026-09-15"
	if got := ActiveDate(rec, testNow); got != "2026-09-15" {
		t.Errorf("got %q", got)
	}
}

func TestPointToTomorrow_CrossesMonthEnd(t *testing.T) {
	rec := store.NewUserRecord()
	lastOfMonth := time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)
	if got := PointToTomorrow(rec, lastOfMonth); got != "2026-09-01" {
		t.Errorf("got %q", got)
	}
}

func TestGenerate_WorkBlockSizing(t *testing.T) {
	cases := []struct {
		work float64
		want string
	}{
		{8, "Deep work block 1 (4h)"},
		{7, "Deep work block 1 (4h)"}, // 3.5 rounds to 4
		{1, "Deep work block 1 (1h)"},
		{0, "Deep work block 1 (1h)"}, // minimum 1
	}
	for _, tc := range cases {
		rec := store.NewUserRecord()
		rec.Balance.Work = tc.work
		tasks := Generate(rec, "2026-08-29", testNow)
		if tasks[0].Text != tc.want {
			t.Errorf("work=%v: got %q, want %q", tc.work, tasks[0].Text, tc.want)
		}
	}
}

func TestGenerate_CapsTop3AtThree(t *testing.T) {
	rec := store.NewUserRecord()
	rec.Rituals.Morning["2026-08-29"] = &store.MorningRitual{Top3: []string{"a", "b", "c", "d", "e"}}
	tasks := Generate(rec, "2026-08-29", testNow)
	if len(tasks) != 8 {
		t.Errorf("expected 5 fixed + 3 top3, got %d", len(tasks))
	}
}

func TestGenerate_ReplacesExistingPlan(t *testing.T) {
	rec := store.NewUserRecord()
	rec.Plans["2026-08-29"] = []store.Task{{ID: "old1", Text: "manual"}}
	Generate(rec, "2026-08-29", testNow)
	for _, task := range rec.Plans["2026-08-29"] {
		if task.ID == "old1" {
			t.Error("generation must overwrite, not merge")
		}
	}
}

func TestMarkDone_Idempotent(t *testing.T) {
	rec := store.NewUserRecord()
	rec.Plans["2026-08-29"] = []store.Task{{ID: "t1", Text: "x"}}

	if !MarkDone(rec, "2026-08-29", "t1") {
		t.Fatal("expected first mark to succeed")
	}
	if !MarkDone(rec, "2026-08-29", "t1") {
		t.Error("re-marking a done task is a no-op success")
	}
	if MarkDone(rec, "2026-08-29", "missing") {
		t.Error("unknown id must report not found")
	}
	if MarkDone(rec, "2026-08-30", "t1") {
		t.Error("ids are scoped to their date")
	}
}
