package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/almanac/internal/contract"
	"github.com/alexanderramin/almanac/internal/domain"
)

// FormatPrincipleList renders principles as a table in the given order.
func FormatPrincipleList(principles []domain.Principle) string {
	if len(principles) == 0 {
		return Dim("No principles match.") + "\n"
	}
	rows := make([][]string, 0, len(principles))
	for _, p := range principles {
		id := p.ID
		if p.Evergreen {
			id += StyleYellow.Render(" ★")
		}
		rows = append(rows, []string{id, CategoryBadge(p.Category), Dim(p.SourceTerm), p.Statement})
	}
	return RenderTable([]string{"ID", "CATEGORY", "SOURCE", "PRINCIPLE"}, rows)
}

// FormatPrinciple renders every field of a principle.
func FormatPrinciple(p domain.Principle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s  %s\n", StyleQuote.Render(fmt.Sprintf("%q", p.Statement)), Dim("- "+p.SourceTerm), CategoryBadge(p.Category))
	if p.Evergreen {
		b.WriteString(StyleYellow.Render("★ Evergreen: used when nothing else fits") + "\n")
	}
	if p.OriginalText != nil && *p.OriginalText != "" {
		fmt.Fprintf(&b, "\n%s\n", Dim(*p.OriginalText))
	}
	if p.Translation != "" {
		fmt.Fprintf(&b, "%s\n", p.Translation)
	}

	sections := []struct {
		title string
		body  string
	}{
		{"Modern Interpretation", p.ModernInterpretation},
		{"Cultural Context", p.CulturalContext},
	}
	for _, s := range sections {
		if s.body == "" {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n%s\n", Header(s.title), s.body)
	}

	lists := []struct {
		title string
		items []string
	}{
		{"Financial Applications", p.FinancialApplications},
		{"Practical Advice", p.PracticalAdvice},
		{"Scenarios", p.ScenarioIDs},
		{"Tags", p.Tags},
	}
	for _, l := range lists {
		if len(l.items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n%s", Header(l.title), Bullets("•", l.items))
	}
	return RenderBox(p.ID, strings.TrimRight(b.String(), "\n"))
}

// FormatKnowledgeSummary reports the size of a valid knowledge base.
func FormatKnowledgeSummary(source string, principles, scenarios, global int) string {
	return fmt.Sprintf("%s %s: %d principles, %d scenarios, %d global wisdom entries\n",
		StyleGreen.Render("✔"), source, principles, scenarios, global)
}

// FormatValidationError lists every problem in a rejected knowledge base.
func FormatValidationError(source string, err *contract.ValidationError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %d problem(s)\n", StyleRed.Render("✖"), source, len(err.Problems))
	b.WriteString(Bullets(StyleRed.Render("-"), err.Problems))
	return b.String()
}
