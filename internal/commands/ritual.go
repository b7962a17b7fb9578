package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nextlevelbuilder/dayclaw/internal/plan"
	"github.com/nextlevelbuilder/dayclaw/internal/store"
)

func handleMorning(req Request) Result {
	date := plan.ActiveDate(req.Rec, req.Now)
	sub, rest := splitSub(req.Args)

	switch sub {
	case "":
		return Result{Reply: renderMorning(date, req.Rec.Rituals.Morning[date])}
	case "set":
		return morningSet(req.Rec, date, rest)
	case "auto":
		tasks := plan.Generate(req.Rec, date, req.Now)
		return Result{
			Reply:   "Generated today's plan from your balance targets.\n\n" + plan.Render(date, tasks),
			Mutated: true,
		}
	default:
		return Result{Reply: "Usage: /morning, /morning set intention=.. top3=a,b,c stress=4 first_step=.., /morning auto"}
	}
}

func morningSet(rec *store.UserRecord, date, args string) Result {
	kv := parseKV(args)
	if len(kv) == 0 {
		return Result{Reply: "Nothing to set. Try /morning set intention=ship_the_draft top3=a,b,c"}
	}

	ritual := rec.Rituals.Morning[date]
	fresh := ritual == nil
	if fresh {
		ritual = &store.MorningRitual{}
	}

	var applied []string
	for k, v := range kv {
		switch k {
		case "intention":
			ritual.Intention = unsnake(v)
		case "top3":
			ritual.Top3 = splitList(v)
		case "stress":
			lvl, err := strconv.ParseFloat(v, 64)
			if err != nil || lvl < 0 || lvl > 10 {
				continue // out of range or non-numeric: skip this field only
			}
			ritual.StressLevel = &lvl
		case "first_step", "firststep":
			ritual.FirstStep = unsnake(v)
		default:
			continue
		}
		applied = append(applied, k)
	}

	if len(applied) == 0 {
		return Result{Reply: "Nothing applied. Known fields: intention, top3, stress (0-10), first_step."}
	}
	if fresh {
		rec.Rituals.Morning[date] = ritual
	}
	return Result{Reply: "Good morning. " + renderMorning(date, ritual), Mutated: true}
}

func renderMorning(date string, ritual *store.MorningRitual) string {
	if ritual == nil {
		return fmt.Sprintf("No morning check-in for %s yet. Start with /morning set intention=..", date)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Morning check-in for %s:\n", date)
	if ritual.Intention != "" {
		fmt.Fprintf(&b, "Intention: %s\n", ritual.Intention)
	}
	if len(ritual.Top3) > 0 {
		fmt.Fprintf(&b, "Top 3: %s\n", strings.Join(ritual.Top3, "; "))
	}
	if ritual.StressLevel != nil {
		fmt.Fprintf(&b, "Stress: %.0f/10\n", *ritual.StressLevel)
	}
	if ritual.FirstStep != "" {
		fmt.Fprintf(&b, "First step: %s\n", ritual.FirstStep)
	}
	return strings.TrimRight(b.String(), "\n")
}

func handleNight(req Request) Result {
	date := plan.ActiveDate(req.Rec, req.Now)
	sub, rest := splitSub(req.Args)

	switch sub {
	case "":
		return Result{Reply: renderNight(date, req.Rec.Rituals.Night[date])}
	case "set":
		return nightSet(req.Rec, date, rest)
	default:
		return Result{Reply: "Usage: /night, /night set win=.. hard=.. learn=.. tomorrow=.."}
	}
}

func nightSet(rec *store.UserRecord, date, args string) Result {
	kv := parseKV(args)
	if len(kv) == 0 {
		return Result{Reply: "Nothing to set. Try /night set win=shipped_it learn=start_earlier"}
	}

	ritual := rec.Rituals.Night[date]
	fresh := ritual == nil
	if fresh {
		ritual = &store.NightRitual{}
	}

	var applied []string
	for k, v := range kv {
		switch k {
		case "win":
			ritual.Win = unsnake(v)
		case "hard":
			ritual.Hard = unsnake(v)
		case "learn":
			ritual.Learn = unsnake(v)
		case "tomorrow":
			ritual.Tomorrow = unsnake(v)
		default:
			continue
		}
		applied = append(applied, k)
	}

	if len(applied) == 0 {
		return Result{Reply: "Nothing applied. Known fields: win, hard, learn, tomorrow."}
	}
	if fresh {
		rec.Rituals.Night[date] = ritual
	}
	return Result{Reply: "Rest well. " + renderNight(date, ritual), Mutated: true}
}

func renderNight(date string, ritual *store.NightRitual) string {
	if ritual == nil {
		return fmt.Sprintf("No evening reflection for %s yet. Start with /night set win=..", date)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Evening reflection for %s:\n", date)
	if ritual.Win != "" {
		fmt.Fprintf(&b, "Win: %s\n", ritual.Win)
	}
	if ritual.Hard != "" {
		fmt.Fprintf(&b, "Hard: %s\n", ritual.Hard)
	}
	if ritual.Learn != "" {
		fmt.Fprintf(&b, "Learned: %s\n", ritual.Learn)
	}
	if ritual.Tomorrow != "" {
		fmt.Fprintf(&b, "Tomorrow: %s\n", ritual.Tomorrow)
	}
	return strings.TrimRight(b.String(), "\n")
}
