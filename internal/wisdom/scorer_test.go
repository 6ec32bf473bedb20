package wisdom

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/almanac/internal/domain"
	"github.com/alexanderramin/almanac/internal/knowledge"
	"github.com/alexanderramin/almanac/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diningKnowledgeBase(t *testing.T) ([]domain.Principle, *knowledge.KnowledgeBase) {
	t.Helper()
	principles := []domain.Principle{
		testutil.NewTestPrinciple("curb-dining", domain.CategoryExpenseManagement,
			testutil.WithTags("dining", "discretionary", "overspending")),
		testutil.NewTestPrinciple("keep-promises", domain.CategoryFinancialEthics, testutil.AsEvergreen()),
		testutil.NewTestPrinciple("compound", domain.CategoryInvestmentPrinciples,
			testutil.WithTags("investing", "compounding")),
	}
	return principles, testutil.NewTestKnowledgeBase(t, principles, nil, nil)
}

func TestScore_OverspendingDiningExample(t *testing.T) {
	principles, kb := diningKnowledgeBase(t)
	ctx := testutil.NewTestContext(domain.SituationOverspending,
		testutil.WithTopCategories("dining"),
		testutil.WithGoals("reduce discretionary spending"),
	)

	b := ScoreBreakdown(ctx, principles[0], kb, DefaultWeights())

	assert.Equal(t, 1.0, b.Situation, "overspending maps to expense-management")
	assert.InDelta(t, 0.6, b.Keywords, 1e-9, "3 shared of 5 distinct keywords")
	assert.Equal(t, 0.0, b.Scenarios)
	assert.GreaterOrEqual(t, b.Total, 0.5)

	resp, err := Recommend(ctx, kb, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "curb-dining", resp.PrimaryWisdom.Principle.ID)
}

func TestScore_ZeroScenarioReferencesContributeZero(t *testing.T) {
	kb := testutil.NewTestKnowledgeBase(t, []domain.Principle{
		testutil.NewTestPrinciple("bare", domain.CategorySavingStrategies, testutil.AsEvergreen()),
	}, nil, nil)
	ctx := testutil.NewTestContext(domain.SituationSaving, testutil.WithGoals("build an emergency fund"))

	p, _ := kb.Principle("bare")
	b := ScoreBreakdown(ctx, p, kb, DefaultWeights())

	assert.Equal(t, 0.0, b.Scenarios)
	assert.Greater(t, b.Total, 0.0, "situation match and affinity still apply")
}

func TestScore_PartialSituationCreditFromTag(t *testing.T) {
	p := testutil.NewTestPrinciple("ant", domain.CategorySavingStrategies, testutil.WithTags("Overspending"))
	kb := testutil.NewTestKnowledgeBase(t, []domain.Principle{p, testutil.NewTestPrinciple("eg", domain.CategoryFinancialEthics, testutil.AsEvergreen())}, nil, nil)

	b := ScoreBreakdown(testutil.NewTestContext(domain.SituationOverspending), p, kb, DefaultWeights())

	assert.Equal(t, PartialSituationCredit, b.Situation)
}

func TestScore_ScenarioPatternFraction(t *testing.T) {
	scenarios := []domain.Scenario{
		{ID: "debt", Keywords: []string{"Credit Card", "loan"}},
		{ID: "retire", Keywords: []string{"pension"}},
	}
	p := testutil.NewTestPrinciple("servant", domain.CategoryDebtManagement,
		testutil.WithScenarios("debt", "retire"), testutil.AsEvergreen())
	kb := testutil.NewTestKnowledgeBase(t, []domain.Principle{p}, scenarios, nil)

	ctx := testutil.NewTestContext(domain.SituationDebtManagement, testutil.WithGoals("Pay off my credit card"))
	b := ScoreBreakdown(ctx, p, kb, DefaultWeights())

	assert.Equal(t, 0.5, b.Scenarios)
}

func TestScore_ScenarioKeywordInSpendingCategory(t *testing.T) {
	scenarios := []domain.Scenario{{ID: "impulse", Keywords: []string{"takeout"}}}
	p := testutil.NewTestPrinciple("leaks", domain.CategoryExpenseManagement,
		testutil.WithScenarios("impulse"), testutil.AsEvergreen())
	kb := testutil.NewTestKnowledgeBase(t, []domain.Principle{p}, scenarios, nil)

	ctx := testutil.NewTestContext(domain.SituationBudgeting, testutil.WithTopCategories("Takeout and delivery"))
	b := ScoreBreakdown(ctx, p, kb, DefaultWeights())

	assert.Equal(t, 1.0, b.Scenarios)
}

func TestScore_GoalAlignmentFraction(t *testing.T) {
	p := testutil.NewTestPrinciple("ant", domain.CategorySavingStrategies,
		testutil.WithApplications("Emergency fund", "sinking funds"), testutil.AsEvergreen())
	kb := testutil.NewTestKnowledgeBase(t, []domain.Principle{p}, nil, nil)

	ctx := testutil.NewTestContext(domain.SituationSaving,
		testutil.WithGoals("Build an emergency fund by June", "Buy a car"))
	b := ScoreBreakdown(ctx, p, kb, DefaultWeights())

	assert.Equal(t, 0.5, b.Goals)
}

func TestScore_NoSignalScoresExactlyZero(t *testing.T) {
	p := testutil.NewTestPrinciple("market", domain.CategoryTradeCommerce, testutil.AsEvergreen())
	kb := testutil.NewTestKnowledgeBase(t, []domain.Principle{p}, nil, nil)

	ctx := testutil.NewTestContext(domain.SituationInvesting,
		testutil.WithRisk(domain.RiskConservative),
		testutil.WithStage(domain.StageRetired),
	)

	assert.Equal(t, 0.0, Score(ctx, p, kb))
}

func TestAffinity_StudentConservativeFavorsExpenseAndSaving(t *testing.T) {
	expense := affinity(domain.StageStudent, domain.RiskConservative, domain.CategoryExpenseManagement)
	saving := affinity(domain.StageStudent, domain.RiskConservative, domain.CategorySavingStrategies)
	investing := affinity(domain.StageStudent, domain.RiskConservative, domain.CategoryInvestmentPrinciples)

	assert.Greater(t, expense, investing)
	assert.Greater(t, saving, investing)
}

func TestAffinity_EveryPairCoversEveryCategory(t *testing.T) {
	for stage := range domain.ValidLifeStages {
		for risk := range domain.ValidRiskProfiles {
			for _, c := range domain.Categories {
				v := affinity(stage, risk, c)
				assert.GreaterOrEqual(t, v, 0.0, "%s/%s/%s", stage, risk, c)
				assert.LessOrEqual(t, v, 1.0, "%s/%s/%s", stage, risk, c)
			}
		}
	}
}

func TestScoringWeights_Normalized(t *testing.T) {
	w := ScoringWeights{Situation: 3, Keywords: 1}.Normalized()
	assert.InDelta(t, 0.75, w.Situation, 1e-9)
	assert.InDelta(t, 0.25, w.Keywords, 1e-9)
	assert.InDelta(t, 1.0, w.sum(), 1e-9)

	assert.Equal(t, DefaultWeights(), ScoringWeights{}.Normalized())
	assert.Equal(t, DefaultWeights(), DefaultWeights().Normalized())
}

// TestScore_RangeAndPurity property-tests that scores stay in [0,1] and that
// identical inputs always give identical scores.
func TestScore_RangeAndPurity(t *testing.T) {
	kb := testutil.DefaultKnowledgeBase(t)
	rng := rand.New(rand.NewSource(7))

	situations := keysOf(domain.ValidSituations)
	risks := keysOf(domain.ValidRiskProfiles)
	stages := keysOf(domain.ValidLifeStages)
	words := []string{"dining", "emergency fund", "credit card debt", "retirement", "stock portfolio", "house", "travel", "groceries", "freelance income"}

	for trial := 0; trial < 200; trial++ {
		ctx := domain.UserFinancialContext{
			Situation:   situations[rng.Intn(len(situations))],
			RiskProfile: risks[rng.Intn(len(risks))],
			LifeStage:   stages[rng.Intn(len(stages))],
		}
		for i := rng.Intn(3); i > 0; i-- {
			ctx.Goals = append(ctx.Goals, words[rng.Intn(len(words))])
		}
		for i := rng.Intn(3); i > 0; i-- {
			ctx.SpendingPattern.TopCategories = append(ctx.SpendingPattern.TopCategories, words[rng.Intn(len(words))])
		}

		for _, p := range kb.Principles() {
			s := Score(ctx, p, kb)
			assert.GreaterOrEqual(t, s, 0.0, "trial %d principle %s", trial, p.ID)
			assert.LessOrEqual(t, s, 1.0, "trial %d principle %s", trial, p.ID)
			assert.Equal(t, s, Score(ctx, p, kb), "trial %d principle %s must be idempotent", trial, p.ID)
		}
	}
}
