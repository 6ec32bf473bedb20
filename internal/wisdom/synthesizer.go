package wisdom

import (
	"fmt"

	"github.com/alexanderramin/almanac/internal/contract"
	"github.com/alexanderramin/almanac/internal/domain"
)

const (
	// MaxModernExamples caps the financial applications copied into a result.
	MaxModernExamples = 3

	// LowSavingsRate is the savings rate below which saving principles carry a warning.
	LowSavingsRate = 0.05
)

// Synthesize builds the personalized view of a selected principle.
func Synthesize(p domain.Principle, score float64, ctx domain.UserFinancialContext) contract.ContextualWisdom {
	return contract.ContextualWisdom{
		Principle:               p,
		RelevanceScore:          clamp01(score),
		PersonalizedApplication: applicationTemplate(p.Category)(newTemplateVars(p, &ctx)),
		ActionableSteps:         actionableSteps(p, contextKeywords(&ctx)),
		ModernExamples:          modernExamples(p),
		Warnings:                warnings(p, &ctx),
	}
}

// actionableSteps keeps the practical advice whose words intersect the
// context keywords, in source order. With no match the full list is used.
func actionableSteps(p domain.Principle, keywords keywordSet) []string {
	if len(p.PracticalAdvice) == 0 {
		return nil
	}
	match := keywords.expanded()
	var steps []string
	for _, advice := range p.PracticalAdvice {
		if match.intersects(tokenize(advice)) {
			steps = append(steps, advice)
		}
	}
	if len(steps) == 0 {
		return append([]string(nil), p.PracticalAdvice...)
	}
	return steps
}

func modernExamples(p domain.Principle) []string {
	n := len(p.FinancialApplications)
	if n > MaxModernExamples {
		n = MaxModernExamples
	}
	return append([]string(nil), p.FinancialApplications[:n]...)
}

func warnings(p domain.Principle, ctx *domain.UserFinancialContext) []string {
	var out []string
	if ctx.RiskProfile == domain.RiskAggressive {
		switch p.Category {
		case domain.CategoryRiskManagement:
			out = append(out, "An aggressive risk profile makes this principle easy to dismiss; size positions so a single loss cannot derail your plan.")
		case domain.CategoryDebtManagement:
			out = append(out, "With an aggressive risk profile, avoid borrowing to invest until high-interest debt is cleared.")
		}
	}
	if rate := ctx.SpendingPattern.SavingsRate; rate != nil && *rate < LowSavingsRate && p.Category == domain.CategorySavingStrategies {
		out = append(out, fmt.Sprintf("Your savings rate of %.1f%% is below %.0f%%; a single unexpected expense could push you into debt.",
			*rate*100, LowSavingsRate*100))
	}
	return out
}
