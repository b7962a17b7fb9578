package commands

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/nextlevelbuilder/dayclaw/internal/store"
)

var langCodeRe = regexp.MustCompile(`^[a-z]{2}(-[a-z]{2})?$`)

func handleMode(req Request) Result {
	mode := strings.ToLower(req.Args)
	switch mode {
	case "assistant", "formal":
		req.Rec.Preferences.ResponseMode = mode
		return Result{Reply: fmt.Sprintf("Response mode set to %s.", mode), Mutated: true}
	default:
		return Result{Reply: "Usage: /mode assistant|formal"}
	}
}

func handleLang(req Request) Result {
	lang := strings.ToLower(req.Args)
	if lang == "auto" || langCodeRe.MatchString(lang) {
		req.Rec.Preferences.Language = lang
		return Result{Reply: fmt.Sprintf("Language set to %s.", lang), Mutated: true}
	}
	return Result{Reply: "Usage: /lang auto|<code> (e.g. /lang de)"}
}

func handleProfile(req Request) Result {
	sub, rest := splitSub(req.Args)
	switch sub {
	case "":
		return Result{Reply: renderProfile(req.Rec)}
	case "set":
		return profileSet(req.Rec, rest)
	default:
		return Result{Reply: "Usage: /profile or /profile set key=value ..."}
	}
}

func profileSet(rec *store.UserRecord, args string) Result {
	kv := parseKV(args)
	if len(kv) == 0 {
		return Result{Reply: "Nothing to set. Try /profile set name=Ada occupation=engineer"}
	}

	var applied, skipped []string
	for k, v := range kv {
		if store.IsReservedProfileKey(k) {
			skipped = append(skipped, k)
			continue
		}
		rec.Profile[k] = unsnake(v)
		applied = append(applied, k)
	}
	sort.Strings(applied)
	sort.Strings(skipped)

	if len(applied) == 0 {
		return Result{Reply: fmt.Sprintf("Those keys are reserved: %s.", strings.Join(skipped, ", "))}
	}
	reply := fmt.Sprintf("Profile updated: %s.", strings.Join(applied, ", "))
	if len(skipped) > 0 {
		reply += fmt.Sprintf(" Skipped reserved keys: %s.", strings.Join(skipped, ", "))
	}
	return Result{Reply: reply, Mutated: true}
}

func renderProfile(rec *store.UserRecord) string {
	var b strings.Builder
	b.WriteString("Your profile:\n")
	if len(rec.Profile) == 0 {
		b.WriteString("(empty — /profile set key=value to fill it)\n")
	} else {
		keys := make([]string, 0, len(rec.Profile))
		for k := range rec.Profile {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "%s: %s\n", k, rec.Profile[k])
		}
	}
	fmt.Fprintf(&b, "mode: %s, language: %s", rec.Preferences.ResponseMode, rec.Preferences.Language)
	return b.String()
}

// splitSub peels the first whitespace-delimited word off args, lowercased,
// keeping the remainder's case.
func splitSub(args string) (sub, rest string) {
	head := strings.SplitN(args, " ", 2)
	sub = strings.ToLower(head[0])
	if len(head) == 2 {
		rest = strings.TrimSpace(head[1])
	}
	return sub, rest
}
