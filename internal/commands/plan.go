package commands

import (
	"fmt"

	"github.com/nextlevelbuilder/dayclaw/internal/plan"
	"github.com/nextlevelbuilder/dayclaw/internal/store"
)

func handlePlan(req Request) Result {
	date := plan.ActiveDate(req.Rec, req.Now)
	sub, rest := splitSub(req.Args)

	switch sub {
	case "":
		return Result{Reply: plan.Render(date, req.Rec.Plans[date])}

	case "add":
		if rest == "" {
			return Result{Reply: "Usage: /plan add <text>"}
		}
		req.Rec.Plans[date] = append(req.Rec.Plans[date], store.Task{
			ID:        store.NewID(),
			Text:      rest,
			CreatedAt: req.Now.UnixMilli(),
		})
		return Result{Reply: fmt.Sprintf("Added to the plan for %s.", date), Mutated: true}

	case "done":
		if rest == "" {
			return Result{Reply: "Usage: /plan done <id>"}
		}
		if !plan.MarkDone(req.Rec, date, rest) {
			return Result{Reply: fmt.Sprintf("No task with id %s on %s. See /plan.", rest, date)}
		}
		return Result{Reply: plan.Render(date, req.Rec.Plans[date]), Mutated: true}

	case "tomorrow":
		target := plan.PointToTomorrow(req.Rec, req.Now)
		return Result{Reply: fmt.Sprintf("Plan commands now address %s. /plan today switches back.", target), Mutated: true}

	case "today":
		plan.ClearCursor(req.Rec)
		return Result{Reply: fmt.Sprintf("Back to today (%s).", req.Now.Format(plan.DateFormat)), Mutated: true}

	default:
		return Result{Reply: "Usage: /plan, /plan add <text>, /plan done <id>, /plan tomorrow, /plan today"}
	}
}
