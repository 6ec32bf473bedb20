package wisdom

import (
	"sort"
	"strings"

	"github.com/alexanderramin/almanac/internal/contract"
	"github.com/alexanderramin/almanac/internal/domain"
)

const (
	// DefaultMaxGlobalInsights is how many global wisdom entries a response carries.
	DefaultMaxGlobalInsights = 2

	// globalDirectBonus is added when an entry names the situation or the primary category.
	globalDirectBonus = 0.5
)

// ScoreGlobalWisdom scores an entry against the context keywords, with a bonus
// when its relevant contexts name the situation or the primary category.
func ScoreGlobalWisdom(entry domain.GlobalWisdomEntry, ctx domain.UserFinancialContext, primaryCategory domain.Category) float64 {
	return scoreGlobal(entry, contextKeywords(&ctx), ctx.Situation, primaryCategory)
}

func scoreGlobal(entry domain.GlobalWisdomEntry, keywords keywordSet, situation domain.Situation, primaryCategory domain.Category) float64 {
	tags := tagSet(entry.RelevantContexts)
	score := jaccard(tags, keywords)
	if tags[strings.ToLower(string(situation))] || tags[string(primaryCategory)] {
		score += globalDirectBonus
	}
	return clamp01(score)
}

// selectGlobalInsights returns up to limit entries with a positive score,
// best first, ties broken by ID.
func selectGlobalInsights(entries []domain.GlobalWisdomEntry, ctx *domain.UserFinancialContext, primaryCategory domain.Category, limit int) []contract.GlobalInsight {
	if limit <= 0 {
		return nil
	}
	keywords := contextKeywords(ctx)
	var insights []contract.GlobalInsight
	for _, e := range entries {
		if s := scoreGlobal(e, keywords, ctx.Situation, primaryCategory); s > 0 {
			insights = append(insights, contract.GlobalInsight{Entry: e, RelevanceScore: s})
		}
	}
	sort.SliceStable(insights, func(i, j int) bool {
		if insights[i].RelevanceScore != insights[j].RelevanceScore {
			return insights[i].RelevanceScore > insights[j].RelevanceScore
		}
		return insights[i].Entry.ID < insights[j].Entry.ID
	})
	if len(insights) > limit {
		insights = insights[:limit]
	}
	return insights
}
