package knowledge

import (
	"strings"

	"github.com/alexanderramin/almanac/internal/domain"
)

// KnowledgeBase is the indexed, read-only corpus shared by every request.
// Nothing mutates it after Load returns, so concurrent readers need no locking.
type KnowledgeBase struct {
	principles   []domain.Principle
	scenarios    []domain.Scenario
	globalWisdom []domain.GlobalWisdomEntry

	principleIdx map[string]int
	scenarioIdx  map[string]int
	globalIdx    map[string]int

	byTag      map[string][]string
	byCategory map[domain.Category][]string

	evergreen int
}

// Principle returns the principle with the given ID.
func (kb *KnowledgeBase) Principle(id string) (domain.Principle, bool) {
	i, ok := kb.principleIdx[id]
	if !ok {
		return domain.Principle{}, false
	}
	return kb.principles[i], true
}

func (kb *KnowledgeBase) Scenario(id string) (domain.Scenario, bool) {
	i, ok := kb.scenarioIdx[id]
	if !ok {
		return domain.Scenario{}, false
	}
	return kb.scenarios[i], true
}

func (kb *KnowledgeBase) GlobalWisdom(id string) (domain.GlobalWisdomEntry, bool) {
	i, ok := kb.globalIdx[id]
	if !ok {
		return domain.GlobalWisdomEntry{}, false
	}
	return kb.globalWisdom[i], true
}

// Principles returns all principles in declaration order.
func (kb *KnowledgeBase) Principles() []domain.Principle {
	return append([]domain.Principle(nil), kb.principles...)
}

func (kb *KnowledgeBase) Scenarios() []domain.Scenario {
	return append([]domain.Scenario(nil), kb.scenarios...)
}

func (kb *KnowledgeBase) GlobalWisdomEntries() []domain.GlobalWisdomEntry {
	return append([]domain.GlobalWisdomEntry(nil), kb.globalWisdom...)
}

// PrincipleIDsByTag returns the IDs of principles carrying tag (case-insensitive).
func (kb *KnowledgeBase) PrincipleIDsByTag(tag string) []string {
	return append([]string(nil), kb.byTag[normalizeTag(tag)]...)
}

func (kb *KnowledgeBase) PrincipleIDsByCategory(c domain.Category) []string {
	return append([]string(nil), kb.byCategory[c]...)
}

// Evergreen returns the unconditional fallback principle. The second return
// is false only for a zero-value KnowledgeBase that did not come from Load.
func (kb *KnowledgeBase) Evergreen() (domain.Principle, bool) {
	if kb == nil || kb.evergreen < 0 || kb.evergreen >= len(kb.principles) {
		return domain.Principle{}, false
	}
	return kb.principles[kb.evergreen], true
}

// Len returns the number of principles.
func (kb *KnowledgeBase) Len() int {
	return len(kb.principles)
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
