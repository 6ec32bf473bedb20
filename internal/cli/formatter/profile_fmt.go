package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/almanac/internal/domain"
)

// FormatProfileList renders saved profiles as a table.
func FormatProfileList(profiles []*domain.Profile, now time.Time) string {
	if len(profiles) == 0 {
		return Dim("No saved profiles. Create one with `almanac profile add`.") + "\n"
	}
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, []string{
			TruncID(p.ID),
			StyleFg.Render(p.Name),
			TitleWords(string(p.Context.Situation)),
			RiskBadge(p.Context.RiskProfile),
			TitleWords(string(p.Context.LifeStage)),
			Dim(HumanDate(p.UpdatedAt.Local(), now)),
		})
	}
	return RenderTable([]string{"ID", "NAME", "SITUATION", "RISK", "STAGE", "UPDATED"}, rows)
}

// FormatProfile renders one profile in detail.
func FormatProfile(p *domain.Profile) string {
	c := p.Context
	var b strings.Builder
	field := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-16s", label+":")), value)
	}

	field("ID", p.ID)
	field("Situation", TitleWords(string(c.Situation)))
	field("Risk profile", RiskBadge(c.RiskProfile))
	field("Life stage", TitleWords(string(c.LifeStage)))
	field("Monthly income", FormatMoney(c.SpendingPattern.MonthlyIncome))
	field("Monthly expenses", FormatMoney(c.SpendingPattern.MonthlyExpenses))
	field("Savings rate", FormatPercent(c.SpendingPattern.SavingsRate))

	if len(c.SpendingPattern.TopCategories) > 0 {
		field("Top categories", strings.Join(c.SpendingPattern.TopCategories, ", "))
	}
	if len(c.Goals) > 0 {
		b.WriteString(Dim("Goals:") + "\n")
		b.WriteString(Bullets("•", c.Goals))
	}
	return RenderBox(p.Name, strings.TrimRight(b.String(), "\n"))
}
