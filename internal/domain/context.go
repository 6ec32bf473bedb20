package domain

import "fmt"

// SpendingPattern holds the caller's spending figures. Nil numeric fields
// mean "unknown" and are never read as zero.
type SpendingPattern struct {
	MonthlyIncome   *float64
	MonthlyExpenses *float64
	TopCategories   []string
	SavingsRate     *float64
}

// UserFinancialContext is supplied per request and never stored by the engine.
type UserFinancialContext struct {
	Situation       Situation
	SpendingPattern SpendingPattern
	Goals           []string
	RiskProfile     RiskProfile
	LifeStage       LifeStage
}

// PrimaryGoal returns the first non-empty goal, or "" when none is set.
func (c *UserFinancialContext) PrimaryGoal() string {
	for _, g := range c.Goals {
		if g != "" {
			return g
		}
	}
	return ""
}

// TopCategory returns the first non-empty spending category, or "".
func (c *UserFinancialContext) TopCategory() string {
	for _, cat := range c.SpendingPattern.TopCategories {
		if cat != "" {
			return cat
		}
	}
	return ""
}

// DerivedSavingsRate returns the explicit savings rate when present, otherwise
// derives one from income and expenses. Returns nil when neither is known.
func (c *UserFinancialContext) DerivedSavingsRate() *float64 {
	sp := c.SpendingPattern
	if sp.SavingsRate != nil {
		rate := *sp.SavingsRate
		return &rate
	}
	if sp.MonthlyIncome == nil || sp.MonthlyExpenses == nil || *sp.MonthlyIncome <= 0 {
		return nil
	}
	rate := (*sp.MonthlyIncome - *sp.MonthlyExpenses) / *sp.MonthlyIncome
	return &rate
}

// ValidateEnums reports the first enumerated field holding a value outside its set.
// It returns the offending field name and value.
func (c *UserFinancialContext) ValidateEnums() (field string, value string, ok bool) {
	switch {
	case !ValidSituations[c.Situation]:
		return "situation", string(c.Situation), false
	case !ValidRiskProfiles[c.RiskProfile]:
		return "risk_profile", string(c.RiskProfile), false
	case !ValidLifeStages[c.LifeStage]:
		return "life_stage", string(c.LifeStage), false
	}
	return "", "", true
}

// String renders a compact one-line description used in logs.
func (c *UserFinancialContext) String() string {
	return fmt.Sprintf("%s/%s/%s goals=%d categories=%d",
		c.Situation, c.RiskProfile, c.LifeStage, len(c.Goals), len(c.SpendingPattern.TopCategories))
}
