package commands

import (
	"strings"
	"testing"

	"github.com/nextlevelbuilder/dayclaw/internal/store"
)

func TestMorningSet_Fields(t *testing.T) {
	rec := store.NewUserRecord()
	res, _ := Route(testNow, "/morning set intention=ship_the_draft top3=a,b,c stress=4 first_step=open_editor", rec)
	if !res.Mutated {
		t.Fatal("expected mutation")
	}

	ritual := rec.Rituals.Morning[today]
	if ritual == nil {
		t.Fatal("no morning record for today")
	}
	if ritual.Intention != "ship the draft" {
		t.Errorf("intention: %q", ritual.Intention)
	}
	if len(ritual.Top3) != 3 || ritual.Top3[0] != "a" || ritual.Top3[2] != "c" {
		t.Errorf("top3: %v", ritual.Top3)
	}
	if ritual.StressLevel == nil || *ritual.StressLevel != 4 {
		t.Errorf("stress: %v", ritual.StressLevel)
	}
	if ritual.FirstStep != "open editor" {
		t.Errorf("firstStep: %q", ritual.FirstStep)
	}
}

func TestMorningSet_StressOutOfRangeSkipped(t *testing.T) {
	rec := store.NewUserRecord()
	Route(testNow, "/morning set stress=11 intention=calm", rec)
	ritual := rec.Rituals.Morning[today]
	if ritual.StressLevel != nil {
		t.Errorf("stress=11 must be skipped, got %v", *ritual.StressLevel)
	}
	if ritual.Intention != "calm" {
		t.Errorf("other fields must still apply: %q", ritual.Intention)
	}
}

func TestMorningAuto_FullOverwrite(t *testing.T) {
	rec := store.NewUserRecord() // work target defaults to 8 → two 4h blocks
	Route(testNow, "/plan add leftover manual task", rec)
	Route(testNow, "/morning set top3=a,b,c", rec)

	res, _ := Route(testNow, "/morning auto", rec)
	if !res.Mutated {
		t.Fatal("expected mutation")
	}

	tasks := rec.Plans[today]
	if len(tasks) != 8 {
		t.Fatalf("expected 5 fixed + 3 top3 tasks, got %d: %+v", len(tasks), tasks)
	}

	// Manual task is gone: auto is an overwrite, not a merge.
	for _, task := range tasks {
		if task.Text == "leftover manual task" {
			t.Error("auto-generation must replace the whole task list")
		}
	}

	if tasks[0].Text != "Deep work block 1 (4h)" || tasks[1].Text != "Deep work block 2 (4h)" {
		t.Errorf("work blocks wrong: %q, %q", tasks[0].Text, tasks[1].Text)
	}

	wantTop3 := []string{"Top3: a", "Top3: b", "Top3: c"}
	for i, want := range wantTop3 {
		if got := tasks[5+i].Text; got != want {
			t.Errorf("top3 task %d: got %q, want %q", i, got, want)
		}
	}
}

func TestMorningAuto_WithoutTop3(t *testing.T) {
	rec := store.NewUserRecord()
	Route(testNow, "/morning auto", rec)
	if got := len(rec.Plans[today]); got != 5 {
		t.Errorf("expected 5 fixed tasks, got %d", got)
	}
}

func TestMorningAuto_MinimumWorkBlock(t *testing.T) {
	rec := store.NewUserRecord()
	Route(testNow, "/balance set work=0", rec)
	Route(testNow, "/morning auto", rec)
	if got := rec.Plans[today][0].Text; got != "Deep work block 1 (1h)" {
		t.Errorf("work block must not drop below 1h: %q", got)
	}
}

func TestMorningAuto_RespectsPlanCursor(t *testing.T) {
	rec := store.NewUserRecord()
	Route(testNow, "/plan tomorrow", rec)
	Route(testNow, "/morning set top3=x", rec)
	Route(testNow, "/morning auto", rec)

	if len(rec.Plans["2026-08-30"]) != 6 {
		t.Errorf("auto plan should land on the cursor date: %v", rec.Plans)
	}
	if len(rec.Plans[today]) != 0 {
		t.Errorf("today must stay untouched: %v", rec.Plans[today])
	}
}

func TestNightSet(t *testing.T) {
	rec := store.NewUserRecord()
	res, _ := Route(testNow, "/night set win=closed_the_quarter hard=meetings learn=start_earlier tomorrow=gym_first", rec)
	if !res.Mutated {
		t.Fatal("expected mutation")
	}
	ritual := rec.Rituals.Night[today]
	if ritual == nil {
		t.Fatal("no night record for today")
	}
	if ritual.Win != "closed the quarter" || ritual.Learn != "start earlier" {
		t.Errorf("unexpected night record: %+v", ritual)
	}
	if !strings.Contains(res.Reply, "Win: closed the quarter") {
		t.Errorf("reply should echo the record: %q", res.Reply)
	}
}

func TestNightSet_UnknownFieldsOnly(t *testing.T) {
	rec := store.NewUserRecord()
	res, _ := Route(testNow, "/night set mood=great", rec)
	if res.Mutated {
		t.Error("unknown fields alone must not report a mutation")
	}
}
