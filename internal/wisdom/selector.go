package wisdom

import (
	"sort"

	"github.com/alexanderramin/almanac/internal/contract"
	"github.com/alexanderramin/almanac/internal/domain"
)

// MinRelevance is the score a principle must exceed to be selected.
const MinRelevance = 0.05

type ScoredPrinciple struct {
	Principle domain.Principle
	Score     float64
	Breakdown contract.ScoreBreakdown
}

// CanonicalSort orders candidates deterministically:
// 1. Score: higher first
// 2. Category priority: financial-ethics first, trade-commerce last
// 3. Principle ID: lexical ascending
func CanonicalSort(candidates []ScoredPrinciple) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]

		if a.Score != b.Score {
			return a.Score > b.Score
		}

		pa, pb := a.Principle.Category.Priority(), b.Principle.Category.Priority()
		if pa != pb {
			return pa < pb
		}

		return a.Principle.ID < b.Principle.ID
	})
}

// Select picks the primary principle and up to maxSupporting supporting ones
// using the default relevance threshold.
func Select(scored []ScoredPrinciple, maxSupporting int) (ScoredPrinciple, []ScoredPrinciple, error) {
	return SelectWithThreshold(scored, maxSupporting, MinRelevance)
}

// SelectWithThreshold is Select with an explicit minimum relevance. The input
// slice is not modified. Supporting picks take one principle per category.
// Only when every eligible candidate, primary included, spans fewer
// categories than the quota do the best skipped candidates fill the
// remaining slots; otherwise the supporting set may come back short.
func SelectWithThreshold(scored []ScoredPrinciple, maxSupporting int, threshold float64) (ScoredPrinciple, []ScoredPrinciple, error) {
	if maxSupporting <= 0 {
		maxSupporting = contract.DefaultMaxSupporting
	}

	sorted := make([]ScoredPrinciple, len(scored))
	copy(sorted, scored)
	CanonicalSort(sorted)

	var eligible []ScoredPrinciple
	for _, c := range sorted {
		if c.Score > threshold {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		best := 0.0
		if len(sorted) > 0 {
			best = sorted[0].Score
		}
		return ScoredPrinciple{}, nil, &contract.InsufficientWisdomError{Threshold: threshold, BestScore: best}
	}

	primary := eligible[0]
	remainder := eligible[1:]

	supporting := make([]ScoredPrinciple, 0, maxSupporting)
	used := make(map[domain.Category]bool)

	// First pass: one principle per category
	var deferred []ScoredPrinciple
	for _, c := range remainder {
		if len(supporting) >= maxSupporting {
			break
		}
		if used[c.Principle.Category] {
			deferred = append(deferred, c)
			continue
		}
		supporting = append(supporting, c)
		used[c.Principle.Category] = true
	}

	// Second pass: too few categories to fill the quota diversely
	if distinctCategories(eligible) >= maxSupporting {
		deferred = nil
	}
	for _, c := range deferred {
		if len(supporting) >= maxSupporting {
			break
		}
		supporting = append(supporting, c)
	}
	CanonicalSort(supporting)

	return primary, supporting, nil
}

func distinctCategories(candidates []ScoredPrinciple) int {
	seen := make(map[domain.Category]bool, len(candidates))
	for _, c := range candidates {
		seen[c.Principle.Category] = true
	}
	return len(seen)
}
