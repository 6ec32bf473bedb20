package domain

type Category string

const (
	CategoryWealthCreation       Category = "wealth-creation"
	CategoryExpenseManagement    Category = "expense-management"
	CategorySavingStrategies     Category = "saving-strategies"
	CategoryInvestmentPrinciples Category = "investment-principles"
	CategoryRiskManagement       Category = "risk-management"
	CategoryFinancialPlanning    Category = "financial-planning"
	CategoryDebtManagement       Category = "debt-management"
	CategoryEconomicCycles       Category = "economic-cycles"
	CategoryTradeCommerce        Category = "trade-commerce"
	CategoryFinancialEthics      Category = "financial-ethics"
)

// Categories lists every category in tie-break priority order
// (earlier wins when two principles score the same).
var Categories = []Category{
	CategoryFinancialEthics,
	CategoryRiskManagement,
	CategoryDebtManagement,
	CategoryExpenseManagement,
	CategorySavingStrategies,
	CategoryFinancialPlanning,
	CategoryInvestmentPrinciples,
	CategoryWealthCreation,
	CategoryEconomicCycles,
	CategoryTradeCommerce,
}

// Priority returns the tie-break rank of c (lower = preferred).
// Unknown categories rank after every known one.
func (c Category) Priority() int {
	for i, known := range Categories {
		if known == c {
			return i
		}
	}
	return len(Categories)
}

func (c Category) Valid() bool {
	return c.Priority() < len(Categories)
}

type SourceCategory string

const (
	SourceClassicalTreatise  SourceCategory = "classical-economic-treatise"
	SourceAncientWisdom      SourceCategory = "ancient-wisdom-tradition"
	SourceModernClassic      SourceCategory = "modern-financial-classic"
	SourceBehavioralResearch SourceCategory = "behavioral-finance-research"
)

// ValidSourceCategories is the canonical set of accepted global wisdom sources.
var ValidSourceCategories = map[SourceCategory]bool{
	SourceClassicalTreatise:  true,
	SourceAncientWisdom:      true,
	SourceModernClassic:      true,
	SourceBehavioralResearch: true,
}

type Situation string

const (
	SituationBudgeting         Situation = "budgeting"
	SituationOverspending      Situation = "overspending"
	SituationSaving            Situation = "saving"
	SituationInvesting         Situation = "investing"
	SituationDebtManagement    Situation = "debt_management"
	SituationFinancialPlanning Situation = "financial_planning"
)

// ValidSituations is the canonical set of accepted situations.
var ValidSituations = map[Situation]bool{
	SituationBudgeting:         true,
	SituationOverspending:      true,
	SituationSaving:            true,
	SituationInvesting:         true,
	SituationDebtManagement:    true,
	SituationFinancialPlanning: true,
}

type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskModerate     RiskProfile = "moderate"
	RiskAggressive   RiskProfile = "aggressive"
)

var ValidRiskProfiles = map[RiskProfile]bool{
	RiskConservative: true,
	RiskModerate:     true,
	RiskAggressive:   true,
}

type LifeStage string

const (
	StageStudent      LifeStage = "student"
	StageProfessional LifeStage = "professional"
	StageFamily       LifeStage = "family"
	StageRetired      LifeStage = "retired"
)

var ValidLifeStages = map[LifeStage]bool{
	StageStudent:      true,
	StageProfessional: true,
	StageFamily:       true,
	StageRetired:      true,
}
