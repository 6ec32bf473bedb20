package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/almanac/internal/domain"
	"github.com/spf13/pflag"
)

// contextFlags binds the flags that describe a UserFinancialContext. It is
// shared by "advise" and "profile add".
type contextFlags struct {
	situation   string
	risk        string
	stage       string
	categories  []string
	goals       []string
	income      float64
	expenses    float64
	savingsRate float64
}

func (f *contextFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.situation, "situation", "", "Financial situation ("+joinValues(domain.ValidSituations)+")")
	fs.StringVar(&f.risk, "risk", string(domain.RiskModerate), "Risk profile ("+joinValues(domain.ValidRiskProfiles)+")")
	fs.StringVar(&f.stage, "stage", string(domain.StageProfessional), "Life stage ("+joinValues(domain.ValidLifeStages)+")")
	fs.StringArrayVar(&f.categories, "category", nil, "Top spending category (repeatable, most significant first)")
	fs.StringArrayVar(&f.goals, "goal", nil, "Financial goal (repeatable, primary first)")
	fs.Float64Var(&f.income, "income", 0, "Monthly income")
	fs.Float64Var(&f.expenses, "expenses", 0, "Monthly expenses")
	fs.Float64Var(&f.savingsRate, "savings-rate", 0, "Savings rate as a fraction (0.10 = 10%)")
}

// build assembles the context. Numeric fields are set only when their flag
// was given, so an omitted income stays unknown rather than zero.
func (f *contextFlags) build(fs *pflag.FlagSet) (domain.UserFinancialContext, error) {
	ctx := domain.UserFinancialContext{
		Situation:   domain.Situation(strings.TrimSpace(f.situation)),
		RiskProfile: domain.RiskProfile(strings.TrimSpace(f.risk)),
		LifeStage:   domain.LifeStage(strings.TrimSpace(f.stage)),
		Goals:       nonEmpty(f.goals),
		SpendingPattern: domain.SpendingPattern{
			TopCategories: nonEmpty(f.categories),
		},
	}

	if fs.Changed("income") {
		if f.income < 0 {
			return ctx, fmt.Errorf("--income must not be negative")
		}
		ctx.SpendingPattern.MonthlyIncome = float64Ptr(f.income)
	}
	if fs.Changed("expenses") {
		if f.expenses < 0 {
			return ctx, fmt.Errorf("--expenses must not be negative")
		}
		ctx.SpendingPattern.MonthlyExpenses = float64Ptr(f.expenses)
	}
	if fs.Changed("savings-rate") {
		if f.savingsRate < -1 || f.savingsRate > 1 {
			return ctx, fmt.Errorf("--savings-rate must be a fraction between -1 and 1, got %g", f.savingsRate)
		}
		ctx.SpendingPattern.SavingsRate = float64Ptr(f.savingsRate)
	}
	return ctx, nil
}

func float64Ptr(v float64) *float64 { return &v }

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// joinValues lists the keys of an enum set in a stable order for help text.
func joinValues[T ~string](set map[T]bool) string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, string(v))
	}
	slices.Sort(values)
	return strings.Join(values, ", ")
}
