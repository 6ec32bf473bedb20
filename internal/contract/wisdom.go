package contract

import "github.com/alexanderramin/almanac/internal/domain"

// DefaultMaxSupporting is the supporting-wisdom quota used when neither the
// request nor the configuration sets one.
const DefaultMaxSupporting = 3

type ContextualWisdom struct {
	Principle               domain.Principle
	RelevanceScore          float64
	PersonalizedApplication string
	ActionableSteps         []string
	ModernExamples          []string
	// Warnings is nil when no warning rule applies.
	Warnings []string
}

type ActionPlan struct {
	Immediate []string
	ShortTerm []string
	LongTerm  []string
}

// Steps returns every step across the three horizons in bucket order.
func (p ActionPlan) Steps() []string {
	all := make([]string, 0, len(p.Immediate)+len(p.ShortTerm)+len(p.LongTerm))
	all = append(all, p.Immediate...)
	all = append(all, p.ShortTerm...)
	return append(all, p.LongTerm...)
}

// GlobalInsight is a cross-tradition teaching matched to the request.
type GlobalInsight struct {
	Entry          domain.GlobalWisdomEntry
	RelevanceScore float64
}

type WisdomEngineResponse struct {
	PrimaryWisdom        ContextualWisdom
	SupportingWisdom     []ContextualWisdom
	PersonalizedGuidance string
	CulturalContext      string
	ModernParallels      []string
	ActionPlan           ActionPlan
	GlobalInsights       []GlobalInsight
	// Breakdowns is populated for the selected principles when explanation is requested.
	Breakdowns []ScoreBreakdown

	// Fallback is set when no principle cleared the relevance threshold and
	// the evergreen principle was substituted.
	Fallback bool
}

// ScoreBreakdown carries the unweighted sub-scores behind a relevance score.
type ScoreBreakdown struct {
	PrincipleID string
	Situation   float64
	Keywords    float64
	Scenarios   float64
	Affinity    float64
	Goals       float64
	Total       float64
}

type WisdomRequest struct {
	Context domain.UserFinancialContext
	// MaxSupporting overrides the configured quota when positive.
	MaxSupporting int
	Explain       bool
}

// NewWisdomRequest leaves MaxSupporting unset so the service's configured
// quota applies.
func NewWisdomRequest(ctx domain.UserFinancialContext) WisdomRequest {
	return WisdomRequest{Context: ctx}
}
