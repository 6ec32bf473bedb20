package wisdom

import "github.com/alexanderramin/almanac/internal/domain"

type affinityKey struct {
	stage domain.LifeStage
	risk  domain.RiskProfile
}

// stagePreferences is the baseline category preference for each life stage.
var stagePreferences = map[domain.LifeStage]map[domain.Category]float64{
	domain.StageStudent: {
		domain.CategoryExpenseManagement:    0.9,
		domain.CategorySavingStrategies:     0.8,
		domain.CategoryDebtManagement:       0.7,
		domain.CategoryFinancialPlanning:    0.5,
		domain.CategoryFinancialEthics:      0.5,
		domain.CategoryWealthCreation:       0.4,
		domain.CategoryRiskManagement:       0.4,
		domain.CategoryInvestmentPrinciples: 0.3,
		domain.CategoryEconomicCycles:       0.2,
		domain.CategoryTradeCommerce:        0.2,
	},
	domain.StageProfessional: {
		domain.CategoryInvestmentPrinciples: 0.8,
		domain.CategoryWealthCreation:       0.8,
		domain.CategoryFinancialPlanning:    0.7,
		domain.CategorySavingStrategies:     0.7,
		domain.CategoryExpenseManagement:    0.6,
		domain.CategoryDebtManagement:       0.6,
		domain.CategoryRiskManagement:       0.6,
		domain.CategoryFinancialEthics:      0.5,
		domain.CategoryEconomicCycles:       0.4,
		domain.CategoryTradeCommerce:        0.4,
	},
	domain.StageFamily: {
		domain.CategoryFinancialPlanning:    0.9,
		domain.CategoryRiskManagement:       0.8,
		domain.CategorySavingStrategies:     0.8,
		domain.CategoryDebtManagement:       0.7,
		domain.CategoryExpenseManagement:    0.7,
		domain.CategoryInvestmentPrinciples: 0.6,
		domain.CategoryFinancialEthics:      0.5,
		domain.CategoryWealthCreation:       0.5,
		domain.CategoryEconomicCycles:       0.3,
		domain.CategoryTradeCommerce:        0.2,
	},
	domain.StageRetired: {
		domain.CategoryRiskManagement:       0.9,
		domain.CategoryFinancialPlanning:    0.8,
		domain.CategoryFinancialEthics:      0.6,
		domain.CategorySavingStrategies:     0.6,
		domain.CategoryExpenseManagement:    0.6,
		domain.CategoryDebtManagement:       0.5,
		domain.CategoryInvestmentPrinciples: 0.4,
		domain.CategoryWealthCreation:       0.3,
		domain.CategoryEconomicCycles:       0.3,
		domain.CategoryTradeCommerce:        0.1,
	},
}

// riskAdjustments shift the stage baseline toward or away from categories
// that suit a risk profile. Moderate has no adjustment.
var riskAdjustments = map[domain.RiskProfile]map[domain.Category]float64{
	domain.RiskConservative: {
		domain.CategoryRiskManagement:       0.1,
		domain.CategorySavingStrategies:     0.1,
		domain.CategoryInvestmentPrinciples: -0.2,
		domain.CategoryWealthCreation:       -0.1,
		domain.CategoryTradeCommerce:        -0.1,
	},
	domain.RiskAggressive: {
		domain.CategoryInvestmentPrinciples: 0.2,
		domain.CategoryWealthCreation:       0.2,
		domain.CategoryTradeCommerce:        0.1,
		domain.CategoryEconomicCycles:       0.1,
		domain.CategorySavingStrategies:     -0.1,
		domain.CategoryRiskManagement:       -0.1,
	},
}

// affinityTable holds the combined preference for every (stage, risk) pair.
var affinityTable = buildAffinityTable()

func buildAffinityTable() map[affinityKey]map[domain.Category]float64 {
	table := make(map[affinityKey]map[domain.Category]float64)
	for stage, base := range stagePreferences {
		for risk := range domain.ValidRiskProfiles {
			prefs := make(map[domain.Category]float64, len(base))
			for cat, w := range base {
				prefs[cat] = clamp01(w + riskAdjustments[risk][cat])
			}
			table[affinityKey{stage: stage, risk: risk}] = prefs
		}
	}
	return table
}

// affinity returns the preference of a (stage, risk) pair for category c,
// or 0 when the pair or category is unknown.
func affinity(stage domain.LifeStage, risk domain.RiskProfile, c domain.Category) float64 {
	return affinityTable[affinityKey{stage: stage, risk: risk}][c]
}
