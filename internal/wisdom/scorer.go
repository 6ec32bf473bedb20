package wisdom

import (
	"math"
	"strings"

	"github.com/alexanderramin/almanac/internal/contract"
	"github.com/alexanderramin/almanac/internal/domain"
	"github.com/alexanderramin/almanac/internal/knowledge"
)

// Default sub-score weights. They sum to 1.0.
const (
	DefaultWeightSituation = 0.30
	DefaultWeightKeywords  = 0.25
	DefaultWeightScenarios = 0.20
	DefaultWeightAffinity  = 0.15
	DefaultWeightGoals     = 0.10

	// PartialSituationCredit applies when a principle's tags name the
	// situation but its category is not the situation's mapped category.
	PartialSituationCredit = 0.5
)

type ScoringWeights struct {
	Situation float64
	Keywords  float64
	Scenarios float64
	Affinity  float64
	Goals     float64
}

func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		Situation: DefaultWeightSituation,
		Keywords:  DefaultWeightKeywords,
		Scenarios: DefaultWeightScenarios,
		Affinity:  DefaultWeightAffinity,
		Goals:     DefaultWeightGoals,
	}
}

func (w ScoringWeights) sum() float64 {
	return w.Situation + w.Keywords + w.Scenarios + w.Affinity + w.Goals
}

// Normalized rescales w so the weights sum to 1.0. Negative weights are
// treated as zero, and an all-zero value yields DefaultWeights.
func (w ScoringWeights) Normalized() ScoringWeights {
	w.Situation = math.Max(w.Situation, 0)
	w.Keywords = math.Max(w.Keywords, 0)
	w.Scenarios = math.Max(w.Scenarios, 0)
	w.Affinity = math.Max(w.Affinity, 0)
	w.Goals = math.Max(w.Goals, 0)

	total := w.sum()
	if total == 0 {
		return DefaultWeights()
	}
	if math.Abs(total-1) < 1e-9 {
		return w
	}
	return ScoringWeights{
		Situation: w.Situation / total,
		Keywords:  w.Keywords / total,
		Scenarios: w.Scenarios / total,
		Affinity:  w.Affinity / total,
		Goals:     w.Goals / total,
	}
}

// situationCategories maps each situation to the category that addresses it.
var situationCategories = map[domain.Situation]domain.Category{
	domain.SituationBudgeting:         domain.CategoryExpenseManagement,
	domain.SituationOverspending:      domain.CategoryExpenseManagement,
	domain.SituationSaving:            domain.CategorySavingStrategies,
	domain.SituationInvesting:         domain.CategoryInvestmentPrinciples,
	domain.SituationDebtManagement:    domain.CategoryDebtManagement,
	domain.SituationFinancialPlanning: domain.CategoryFinancialPlanning,
}

// Score returns the relevance of p to ctx in [0,1] using the default weights.
func Score(ctx domain.UserFinancialContext, p domain.Principle, kb *knowledge.KnowledgeBase) float64 {
	return newScorer(&ctx, kb, DefaultWeights()).breakdown(p).Total
}

// ScoreBreakdown returns every sub-score behind the relevance of p to ctx.
func ScoreBreakdown(ctx domain.UserFinancialContext, p domain.Principle, kb *knowledge.KnowledgeBase, weights ScoringWeights) contract.ScoreBreakdown {
	return newScorer(&ctx, kb, weights).breakdown(p)
}

// scorer holds the per-request values shared by every candidate.
type scorer struct {
	ctx        *domain.UserFinancialContext
	kb         *knowledge.KnowledgeBase
	weights    ScoringWeights
	keywords   keywordSet
	goals      []string
	categories []string
}

func newScorer(ctx *domain.UserFinancialContext, kb *knowledge.KnowledgeBase, weights ScoringWeights) *scorer {
	return &scorer{
		ctx:        ctx,
		kb:         kb,
		weights:    weights.Normalized(),
		keywords:   contextKeywords(ctx),
		goals:      lowerAll(ctx.Goals),
		categories: lowerAll(ctx.SpendingPattern.TopCategories),
	}
}

func (s *scorer) breakdown(p domain.Principle) contract.ScoreBreakdown {
	b := contract.ScoreBreakdown{
		PrincipleID: p.ID,
		Situation:   s.situationMatch(p),
		Keywords:    jaccard(tagSet(p.Tags), s.keywords),
		Scenarios:   s.scenarioMatch(p),
		Affinity:    affinity(s.ctx.LifeStage, s.ctx.RiskProfile, p.Category),
		Goals:       s.goalAlignment(p),
	}
	total := b.Situation*s.weights.Situation +
		b.Keywords*s.weights.Keywords +
		b.Scenarios*s.weights.Scenarios +
		b.Affinity*s.weights.Affinity +
		b.Goals*s.weights.Goals
	b.Total = clamp01(total)
	return b
}

func (s *scorer) situationMatch(p domain.Principle) float64 {
	if cat, ok := situationCategories[s.ctx.Situation]; ok && cat == p.Category {
		return 1.0
	}
	situation := strings.ToLower(string(s.ctx.Situation))
	if situation == "" {
		return 0
	}
	for _, tag := range p.Tags {
		if strings.ToLower(strings.TrimSpace(tag)) == situation {
			return PartialSituationCredit
		}
	}
	return 0
}

// scenarioMatch is the fraction of referenced scenarios with a keyword found
// inside any goal or spending category. No references scores 0.
func (s *scorer) scenarioMatch(p domain.Principle) float64 {
	if len(p.ScenarioIDs) == 0 {
		return 0
	}
	matched := 0
	for _, id := range p.ScenarioIDs {
		if s.kb == nil {
			break
		}
		sc, ok := s.kb.Scenario(id)
		if !ok {
			continue
		}
		if s.scenarioFires(sc) {
			matched++
		}
	}
	return float64(matched) / float64(len(p.ScenarioIDs))
}

func (s *scorer) scenarioFires(sc domain.Scenario) bool {
	for _, kw := range lowerAll(sc.Keywords) {
		for _, g := range s.goals {
			if strings.Contains(g, kw) {
				return true
			}
		}
		for _, c := range s.categories {
			if strings.Contains(c, kw) {
				return true
			}
		}
	}
	return false
}

// goalAlignment is the fraction of goals containing any of the principle's
// financial-application phrases.
func (s *scorer) goalAlignment(p domain.Principle) float64 {
	if len(s.goals) == 0 {
		return 0
	}
	phrases := lowerAll(p.FinancialApplications)
	aligned := 0
	for _, g := range s.goals {
		for _, phrase := range phrases {
			if strings.Contains(g, phrase) {
				aligned++
				break
			}
		}
	}
	return float64(aligned) / float64(len(s.goals))
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
