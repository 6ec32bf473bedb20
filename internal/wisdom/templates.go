package wisdom

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/almanac/internal/domain"
)

// templateVars are the context values substituted into an application template.
type templateVars struct {
	Statement   string
	Situation   string
	TopCategory string
	Goal        string
}

func newTemplateVars(p domain.Principle, ctx *domain.UserFinancialContext) templateVars {
	v := templateVars{
		Statement:   p.Statement,
		Situation:   SituationLabel(ctx.Situation),
		TopCategory: strings.ToLower(ctx.TopCategory()),
		Goal:        strings.ToLower(ctx.PrimaryGoal()),
	}
	if v.TopCategory == "" {
		v.TopCategory = "your spending"
	}
	if v.Goal == "" {
		v.Goal = "your financial goals"
	}
	return v
}

// SituationLabel renders a situation for prose ("debt_management" -> "debt management").
func SituationLabel(s domain.Situation) string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// applicationTemplate returns the personalized-application template for a category.
func applicationTemplate(c domain.Category) func(templateVars) string {
	switch c {
	case domain.CategoryWealthCreation:
		return wealthCreationTemplate
	case domain.CategoryExpenseManagement:
		return expenseManagementTemplate
	case domain.CategorySavingStrategies:
		return savingStrategiesTemplate
	case domain.CategoryInvestmentPrinciples:
		return investmentPrinciplesTemplate
	case domain.CategoryRiskManagement:
		return riskManagementTemplate
	case domain.CategoryFinancialPlanning:
		return financialPlanningTemplate
	case domain.CategoryDebtManagement:
		return debtManagementTemplate
	case domain.CategoryEconomicCycles:
		return economicCyclesTemplate
	case domain.CategoryTradeCommerce:
		return tradeCommerceTemplate
	case domain.CategoryFinancialEthics:
		return financialEthicsTemplate
	default:
		return genericTemplate
	}
}

func wealthCreationTemplate(v templateVars) string {
	return fmt.Sprintf("\"%s\" applies to %s: build earning power steadily rather than chasing quick wins, and let %s be funded by growth you have earned.",
		v.Statement, v.Situation, v.Goal)
}

func expenseManagementTemplate(v templateVars) string {
	return fmt.Sprintf("\"%s\" speaks directly to %s. Start with %s: every amount you stop spending there moves you closer to %s.",
		v.Statement, v.Situation, v.TopCategory, v.Goal)
}

func savingStrategiesTemplate(v templateVars) string {
	return fmt.Sprintf("\"%s\" turns %s into a habit: set aside money before %s gets its share, so that %s is funded first rather than last.",
		v.Statement, v.Situation, v.TopCategory, v.Goal)
}

func investmentPrinciplesTemplate(v templateVars) string {
	return fmt.Sprintf("\"%s\" guides %s: invest with a rule you can keep, hold for the long run, and tie each investment to %s.",
		v.Statement, v.Situation, v.Goal)
}

func riskManagementTemplate(v templateVars) string {
	return fmt.Sprintf("\"%s\" is a reminder that %s carries uncertainty. Protect %s from a single bad outcome, including surprises in %s.",
		v.Statement, v.Situation, v.Goal, v.TopCategory)
}

func financialPlanningTemplate(v templateVars) string {
	return fmt.Sprintf("\"%s\" asks you to make %s concrete: put a number and a date on %s, then check every decision about %s against it.",
		v.Statement, v.Situation, v.Goal, v.TopCategory)
}

func debtManagementTemplate(v templateVars) string {
	return fmt.Sprintf("\"%s\" frames %s: each payment buys back your future income. Redirect money from %s toward the costliest balance until %s is no longer held back by interest.",
		v.Statement, v.Situation, v.TopCategory, v.Goal)
}

func economicCyclesTemplate(v templateVars) string {
	return fmt.Sprintf("\"%s\" applies to %s: good times do not last, so use strong months to build reserves that protect %s when conditions turn.",
		v.Statement, v.Situation, v.Goal)
}

func tradeCommerceTemplate(v templateVars) string {
	return fmt.Sprintf("\"%s\" applies to %s as an exchange: know the real value of what you buy in %s and what you sell, and let %s set the terms.",
		v.Statement, v.Situation, v.TopCategory, v.Goal)
}

func financialEthicsTemplate(v templateVars) string {
	return fmt.Sprintf("\"%s\" keeps %s grounded: pursue %s in ways you could explain openly to the people who depend on you.",
		v.Statement, v.Situation, v.Goal)
}

func genericTemplate(v templateVars) string {
	return fmt.Sprintf("\"%s\" offers perspective on %s and on %s.", v.Statement, v.Situation, v.Goal)
}
