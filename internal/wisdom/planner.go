package wisdom

import (
	"strings"
	"unicode"

	"github.com/alexanderramin/almanac/internal/contract"
)

// PlanBucketCap is the maximum number of steps in each horizon.
const PlanBucketCap = 5

type horizon int

const (
	horizonImmediate horizon = iota
	horizonShortTerm
	horizonLongTerm
)

// horizonKeywords are checked in order; the first horizon with a match wins.
var horizonKeywords = []struct {
	horizon  horizon
	keywords []string
}{
	{horizonImmediate, []string{"today", "now", "immediately", "this week", "right away", "tonight"}},
	{horizonShortTerm, []string{"this month", "next few months", "this year", "every month", "next month"}},
	{horizonLongTerm, []string{"years", "retirement", "long-term", "eventually", "decades", "once a year", "each year"}},
}

// ComposePlan pools the steps of the primary and supporting wisdom, removes
// case-insensitive duplicates (first wins) and buckets them by time horizon.
func ComposePlan(primary contract.ContextualWisdom, supporting []contract.ContextualWisdom) contract.ActionPlan {
	var plan contract.ActionPlan
	seen := make(map[string]bool)

	add := func(step string) {
		key := strings.ToLower(strings.TrimSpace(step))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true

		switch classifyStep(step) {
		case horizonImmediate:
			if len(plan.Immediate) < PlanBucketCap {
				plan.Immediate = append(plan.Immediate, step)
			}
		case horizonLongTerm:
			if len(plan.LongTerm) < PlanBucketCap {
				plan.LongTerm = append(plan.LongTerm, step)
			}
		default:
			if len(plan.ShortTerm) < PlanBucketCap {
				plan.ShortTerm = append(plan.ShortTerm, step)
			}
		}
	}

	for _, step := range primary.ActionableSteps {
		add(step)
	}
	for _, w := range supporting {
		for _, step := range w.ActionableSteps {
			add(step)
		}
	}
	return plan
}

// classifyStep assigns a horizon by whole-word keyword match.
// Steps without a horizon keyword are short-term.
func classifyStep(step string) horizon {
	text := " " + normalizeForMatch(step) + " "
	for _, hk := range horizonKeywords {
		for _, kw := range hk.keywords {
			if strings.Contains(text, " "+kw+" ") {
				return hk.horizon
			}
		}
	}
	return horizonShortTerm
}

// normalizeForMatch lower-cases s and collapses every run of characters other
// than letters, digits and hyphens into a single space.
func normalizeForMatch(s string) string {
	var b strings.Builder
	space := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	return strings.TrimSpace(b.String())
}
