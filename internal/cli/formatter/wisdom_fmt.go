package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/almanac/internal/contract"
)

// FormatWisdom renders a recommendation as a boxed CLI report.
func FormatWisdom(resp *contract.WisdomEngineResponse) string {
	var b strings.Builder

	if resp.Fallback {
		b.WriteString(StyleYellow.Render("No principle matched your situation closely; here is the guidance that always applies."))
		b.WriteString("\n\n")
	}

	primary := resp.PrimaryWisdom
	p := primary.Principle
	b.WriteString(Header("Primary Wisdom"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s  %s\n", StyleQuote.Render(fmt.Sprintf("%q", p.Statement)), ScoreIndicator(primary.RelevanceScore))
	fmt.Fprintf(&b, "%s  %s\n", Dim("- "+p.SourceTerm), CategoryBadge(p.Category))
	if p.OriginalText != nil && *p.OriginalText != "" {
		fmt.Fprintf(&b, "%s\n", Dim(*p.OriginalText))
	}
	if p.Translation != "" {
		fmt.Fprintf(&b, "%s\n", Dim(p.Translation))
	}
	b.WriteString("\n")
	b.WriteString(StyleFg.Render(primary.PersonalizedApplication))
	b.WriteString("\n")

	for _, w := range primary.Warnings {
		b.WriteString(StyleRed.Render("  WARNING: "+w) + "\n")
	}

	if len(resp.SupportingWisdom) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Supporting Wisdom"))
		b.WriteString("\n\n")
		for i, s := range resp.SupportingWisdom {
			fmt.Fprintf(&b, "%s %s  %s  %s\n",
				Bold(fmt.Sprintf("%d.", i+1)),
				StyleFg.Render(s.Principle.Statement),
				CategoryBadge(s.Principle.Category),
				ScoreIndicator(s.RelevanceScore),
			)
			for _, w := range s.Warnings {
				b.WriteString(StyleRed.Render("   WARNING: "+w) + "\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(Header("Guidance"))
	b.WriteString("\n\n")
	b.WriteString(resp.PersonalizedGuidance)
	b.WriteString("\n")

	if resp.CulturalContext != "" {
		b.WriteString("\n")
		b.WriteString(Header("Cultural Context"))
		b.WriteString("\n\n")
		b.WriteString(Dim(resp.CulturalContext))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(FormatActionPlan(resp.ActionPlan))

	if len(resp.ModernParallels) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Modern Parallels"))
		b.WriteString("\n")
		b.WriteString(Bullets(StyleBlue.Render("•"), resp.ModernParallels))
	}

	if len(resp.Breakdowns) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Score Breakdown"))
		b.WriteString("\n")
		b.WriteString(FormatBreakdowns(resp.Breakdowns))
	}

	return RenderBox("Almanac", strings.TrimRight(b.String(), "\n"))
}

// FormatActionPlan renders the three horizons; empty horizons are omitted.
func FormatActionPlan(plan contract.ActionPlan) string {
	var b strings.Builder
	b.WriteString(Header("Action Plan"))
	b.WriteString("\n")

	if len(plan.Steps()) == 0 {
		b.WriteString(Dim("  No concrete steps for this context.") + "\n")
		return b.String()
	}

	sections := []struct {
		label string
		steps []string
	}{
		{StyleRed.Render("Now"), plan.Immediate},
		{StyleYellow.Render("This month"), plan.ShortTerm},
		{StyleGreen.Render("Long term"), plan.LongTerm},
	}
	for _, s := range sections {
		if len(s.steps) == 0 {
			continue
		}
		b.WriteString(s.label + "\n")
		b.WriteString(Bullets("□", s.steps))
	}
	return b.String()
}

// FormatBreakdowns renders the sub-scores behind each selected principle.
func FormatBreakdowns(breakdowns []contract.ScoreBreakdown) string {
	rows := make([][]string, 0, len(breakdowns))
	for _, bd := range breakdowns {
		rows = append(rows, []string{
			bd.PrincipleID,
			fmt.Sprintf("%.2f", bd.Situation),
			fmt.Sprintf("%.2f", bd.Keywords),
			fmt.Sprintf("%.2f", bd.Scenarios),
			fmt.Sprintf("%.2f", bd.Affinity),
			fmt.Sprintf("%.2f", bd.Goals),
			ScoreColor(bd.Total).Render(fmt.Sprintf("%.3f", bd.Total)),
		})
	}
	return RenderTable([]string{"PRINCIPLE", "SITUATION", "KEYWORDS", "SCENARIOS", "AFFINITY", "GOALS", "TOTAL"}, rows)
}
