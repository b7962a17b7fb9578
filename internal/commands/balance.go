package commands

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nextlevelbuilder/dayclaw/internal/store"
)

func handleBalance(req Request) Result {
	sub, rest := splitSub(req.Args)
	switch sub {
	case "":
		return Result{Reply: renderBalance(&req.Rec.Balance)}
	case "set":
		return balanceSet(req.Rec, rest)
	default:
		return Result{Reply: "Usage: /balance or /balance set sleep=8 work=7 love=2 health=2 rest=4"}
	}
}

// balanceSet applies valid fields and silently drops the rest: a value
// outside [0,24] or non-numeric skips that field only.
func balanceSet(rec *store.UserRecord, args string) Result {
	kv := parseKV(args)
	if len(kv) == 0 {
		return Result{Reply: "Nothing to set. Try /balance set sleep=8 work=7"}
	}

	var applied []string
	for k, v := range kv {
		hours, err := strconv.ParseFloat(v, 64)
		if err != nil || hours < 0 || hours > 24 {
			continue
		}
		switch k {
		case "sleep":
			rec.Balance.Sleep = hours
		case "work":
			rec.Balance.Work = hours
		case "love":
			rec.Balance.Love = hours
		case "health":
			rec.Balance.Health = hours
		case "rest":
			rec.Balance.Rest = hours
		default:
			continue
		}
		applied = append(applied, k)
	}

	if len(applied) == 0 {
		return Result{Reply: "No valid fields. Hours must be between 0 and 24; fields: sleep, work, love, health, rest."}
	}
	sort.Strings(applied)
	return Result{
		Reply:   fmt.Sprintf("Updated %s.\n%s", strings.Join(applied, ", "), renderBalance(&rec.Balance)),
		Mutated: true,
	}
}

func renderBalance(b *store.BalanceTargets) string {
	return fmt.Sprintf(
		"Daily targets (hours):\nsleep %.1f | work %.1f | love %.1f | health %.1f | rest %.1f",
		b.Sleep, b.Work, b.Love, b.Health, b.Rest,
	)
}
