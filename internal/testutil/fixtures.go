package testutil

import (
	"testing"

	"github.com/alexanderramin/almanac/internal/domain"
	"github.com/alexanderramin/almanac/internal/knowledge"
)

// Principle options
type PrincipleOption func(*domain.Principle)

func WithTags(tags ...string) PrincipleOption {
	return func(p *domain.Principle) {
		p.Tags = tags
	}
}

func WithScenarios(ids ...string) PrincipleOption {
	return func(p *domain.Principle) {
		p.ScenarioIDs = ids
	}
}

func WithAdvice(advice ...string) PrincipleOption {
	return func(p *domain.Principle) {
		p.PracticalAdvice = advice
	}
}

func WithApplications(apps ...string) PrincipleOption {
	return func(p *domain.Principle) {
		p.FinancialApplications = apps
	}
}

func AsEvergreen() PrincipleOption {
	return func(p *domain.Principle) {
		p.Evergreen = true
	}
}

func NewTestPrinciple(id string, category domain.Category, opts ...PrincipleOption) domain.Principle {
	p := domain.Principle{
		ID:                   id,
		Statement:            "Statement for " + id,
		SourceTerm:           "Source " + id,
		Translation:          "Translation for " + id,
		ModernInterpretation: "Interpretation for " + id,
		CulturalContext:      "Cultural context for " + id,
		Category:             category,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Context options
type ContextOption func(*domain.UserFinancialContext)

func WithGoals(goals ...string) ContextOption {
	return func(c *domain.UserFinancialContext) {
		c.Goals = goals
	}
}

func WithTopCategories(categories ...string) ContextOption {
	return func(c *domain.UserFinancialContext) {
		c.SpendingPattern.TopCategories = categories
	}
}

func WithRisk(r domain.RiskProfile) ContextOption {
	return func(c *domain.UserFinancialContext) {
		c.RiskProfile = r
	}
}

func WithStage(s domain.LifeStage) ContextOption {
	return func(c *domain.UserFinancialContext) {
		c.LifeStage = s
	}
}

func WithSavingsRate(rate float64) ContextOption {
	return func(c *domain.UserFinancialContext) {
		c.SpendingPattern.SavingsRate = &rate
	}
}

func WithIncomeAndExpenses(income, expenses float64) ContextOption {
	return func(c *domain.UserFinancialContext) {
		c.SpendingPattern.MonthlyIncome = &income
		c.SpendingPattern.MonthlyExpenses = &expenses
	}
}

// NewTestContext returns a moderate, professional context for the situation.
func NewTestContext(situation domain.Situation, opts ...ContextOption) domain.UserFinancialContext {
	c := domain.UserFinancialContext{
		Situation:   situation,
		RiskProfile: domain.RiskModerate,
		LifeStage:   domain.StageProfessional,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewTestKnowledgeBase loads the given collections and fails the test on
// validation errors.
func NewTestKnowledgeBase(t *testing.T, principles []domain.Principle, scenarios []domain.Scenario, global []domain.GlobalWisdomEntry) *knowledge.KnowledgeBase {
	t.Helper()
	kb, err := knowledge.Load(principles, scenarios, global)
	if err != nil {
		t.Fatalf("failed to load test knowledge base: %v", err)
	}
	return kb
}

// DefaultKnowledgeBase loads the embedded corpus.
func DefaultKnowledgeBase(t *testing.T) *knowledge.KnowledgeBase {
	t.Helper()
	kb, err := knowledge.LoadDefault()
	if err != nil {
		t.Fatalf("failed to load default knowledge base: %v", err)
	}
	return kb
}
