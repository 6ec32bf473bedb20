package wisdom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/almanac/internal/contract"
	"github.com/alexanderramin/almanac/internal/domain"
	"github.com/alexanderramin/almanac/internal/knowledge"
)

// Options tunes a recommendation. Zero fields take their defaults.
type Options struct {
	Weights           ScoringWeights
	MaxSupporting     int
	MaxGlobalInsights int
	MinRelevance      float64
	Explain           bool
}

func DefaultOptions() Options {
	return Options{
		Weights:           DefaultWeights(),
		MaxSupporting:     contract.DefaultMaxSupporting,
		MaxGlobalInsights: DefaultMaxGlobalInsights,
		MinRelevance:      MinRelevance,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Weights == (ScoringWeights{}) {
		o.Weights = d.Weights
	}
	if o.MaxSupporting <= 0 {
		o.MaxSupporting = d.MaxSupporting
	}
	if o.MaxGlobalInsights == 0 {
		o.MaxGlobalInsights = d.MaxGlobalInsights
	}
	if o.MinRelevance <= 0 {
		o.MinRelevance = d.MinRelevance
	}
	return o
}

// ValidateContext rejects contexts whose enumerated fields fall outside their sets.
func ValidateContext(ctx domain.UserFinancialContext) error {
	if field, value, ok := ctx.ValidateEnums(); !ok {
		return &contract.InvalidContextError{Field: field, Value: value}
	}
	return nil
}

// ScoreAll scores every principle in the knowledge base against ctx.
func ScoreAll(ctx domain.UserFinancialContext, kb *knowledge.KnowledgeBase, weights ScoringWeights) []ScoredPrinciple {
	s := newScorer(&ctx, kb, weights)
	principles := kb.Principles()
	scored := make([]ScoredPrinciple, 0, len(principles))
	for _, p := range principles {
		b := s.breakdown(p)
		scored = append(scored, ScoredPrinciple{Principle: p, Score: b.Total, Breakdown: b})
	}
	return scored
}

// Recommend selects, personalizes and assembles wisdom for ctx. When no
// principle clears the relevance threshold the evergreen principle becomes
// primary and the response is marked Fallback.
func Recommend(ctx domain.UserFinancialContext, kb *knowledge.KnowledgeBase, opts Options) (*contract.WisdomEngineResponse, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}
	if kb == nil {
		return nil, fmt.Errorf("recommend: knowledge base is nil")
	}
	opts = opts.withDefaults()

	scored := ScoreAll(ctx, kb, opts.Weights)
	primary, supporting, err := SelectWithThreshold(scored, opts.MaxSupporting, opts.MinRelevance)
	fallback := false
	if err != nil {
		var insufficient *contract.InsufficientWisdomError
		if !errors.As(err, &insufficient) {
			return nil, err
		}
		evergreen, ok := kb.Evergreen()
		if !ok {
			return nil, err
		}
		primary = scoredByID(scored, evergreen.ID)
		supporting = nil
		fallback = true
	}

	primaryWisdom := Synthesize(primary.Principle, primary.Score, ctx)
	supportingWisdom := make([]contract.ContextualWisdom, 0, len(supporting))
	for _, s := range supporting {
		supportingWisdom = append(supportingWisdom, Synthesize(s.Principle, s.Score, ctx))
	}

	insights := selectGlobalInsights(kb.GlobalWisdomEntries(), &ctx, primary.Principle.Category, opts.MaxGlobalInsights)

	resp := &contract.WisdomEngineResponse{
		PrimaryWisdom:        primaryWisdom,
		SupportingWisdom:     supportingWisdom,
		PersonalizedGuidance: personalizedGuidance(primaryWisdom, supportingWisdom, &ctx),
		CulturalContext:      primary.Principle.CulturalContext,
		ModernParallels:      modernParallels(primaryWisdom, supportingWisdom, insights),
		ActionPlan:           ComposePlan(primaryWisdom, supportingWisdom),
		GlobalInsights:       insights,
		Fallback:             fallback,
	}
	if opts.Explain {
		resp.Breakdowns = append(resp.Breakdowns, primary.Breakdown)
		for _, s := range supporting {
			resp.Breakdowns = append(resp.Breakdowns, s.Breakdown)
		}
	}
	return resp, nil
}

func scoredByID(scored []ScoredPrinciple, id string) ScoredPrinciple {
	for _, s := range scored {
		if s.Principle.ID == id {
			return s
		}
	}
	return ScoredPrinciple{}
}

func personalizedGuidance(primary contract.ContextualWisdom, supporting []contract.ContextualWisdom, ctx *domain.UserFinancialContext) string {
	var b strings.Builder
	b.WriteString(primary.PersonalizedApplication)

	if rate := ctx.DerivedSavingsRate(); rate != nil {
		fmt.Fprintf(&b, " You currently keep about %.0f%% of your income.", *rate*100)
	}

	for i, s := range supporting {
		if i == 0 {
			b.WriteString(" Alongside it,")
		} else {
			b.WriteString(" Also consider")
		}
		fmt.Fprintf(&b, " %q (%s).", s.Principle.Statement, s.Principle.SourceTerm)
	}
	return b.String()
}

func modernParallels(primary contract.ContextualWisdom, supporting []contract.ContextualWisdom, insights []contract.GlobalInsight) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, s)
	}

	for _, e := range primary.ModernExamples {
		add(e)
	}
	for _, w := range supporting {
		for _, e := range w.ModernExamples {
			add(e)
		}
	}
	for _, in := range insights {
		add(fmt.Sprintf("%q (%s)", in.Entry.Quote, in.Entry.Author))
	}
	return out
}
