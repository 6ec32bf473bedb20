package knowledge

import (
	"fmt"

	"github.com/alexanderramin/almanac/internal/contract"
	"github.com/alexanderramin/almanac/internal/domain"
)

// Load validates the three corpora and builds an immutable KnowledgeBase.
// Every problem found is reported in a single *contract.ValidationError.
func Load(principles []domain.Principle, scenarios []domain.Scenario, globalWisdom []domain.GlobalWisdomEntry) (*KnowledgeBase, error) {
	var errs []error

	scenarioIdx := make(map[string]int, len(scenarios))
	errs = append(errs, validateScenarios(scenarios, scenarioIdx)...)

	principleIdx := make(map[string]int, len(principles))
	errs = append(errs, validatePrinciples(principles, scenarioIdx, principleIdx)...)

	globalIdx := make(map[string]int, len(globalWisdom))
	errs = append(errs, validateGlobalWisdom(globalWisdom, globalIdx)...)

	evergreen, evergreenErrs := findEvergreen(principles)
	errs = append(errs, evergreenErrs...)

	if len(errs) > 0 {
		problems := make([]string, len(errs))
		for i, err := range errs {
			problems[i] = err.Error()
		}
		return nil, &contract.ValidationError{Problems: problems}
	}

	kb := &KnowledgeBase{
		principles:   make([]domain.Principle, len(principles)),
		scenarios:    make([]domain.Scenario, len(scenarios)),
		globalWisdom: make([]domain.GlobalWisdomEntry, len(globalWisdom)),
		principleIdx: principleIdx,
		scenarioIdx:  scenarioIdx,
		globalIdx:    globalIdx,
		byTag:        make(map[string][]string),
		byCategory:   make(map[domain.Category][]string),
		evergreen:    evergreen,
	}
	for i, p := range principles {
		kb.principles[i] = copyPrinciple(p)
	}
	for i, s := range scenarios {
		kb.scenarios[i] = copyScenario(s)
	}
	for i, g := range globalWisdom {
		g.RelevantContexts = cloneStrings(g.RelevantContexts)
		kb.globalWisdom[i] = g
	}
	buildIndexes(kb)

	return kb, nil
}

func buildIndexes(kb *KnowledgeBase) {
	for _, p := range kb.principles {
		kb.byCategory[p.Category] = append(kb.byCategory[p.Category], p.ID)

		seen := make(map[string]bool, len(p.Tags))
		for _, tag := range p.Tags {
			key := normalizeTag(tag)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			kb.byTag[key] = append(kb.byTag[key], p.ID)
		}
	}
}

func validateScenarios(scenarios []domain.Scenario, idx map[string]int) []error {
	var errs []error
	for i, s := range scenarios {
		prefix := fmt.Sprintf("scenarios[%d]", i)
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
			continue
		}
		if _, dup := idx[s.ID]; dup {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, s.ID))
			continue
		}
		idx[s.ID] = i
	}
	return errs
}

func validatePrinciples(principles []domain.Principle, scenarioIdx map[string]int, idx map[string]int) []error {
	var errs []error
	for i, p := range principles {
		prefix := fmt.Sprintf("principles[%d]", i)

		if p.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if _, dup := idx[p.ID]; dup {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, p.ID))
		} else {
			idx[p.ID] = i
		}

		if !p.Category.Valid() {
			errs = append(errs, fmt.Errorf("%s.category: invalid value %q", prefix, p.Category))
		}

		for j, ref := range p.ScenarioIDs {
			if _, ok := scenarioIdx[ref]; !ok {
				errs = append(errs, fmt.Errorf("%s.scenarios[%d]: scenario %q not found", prefix, j, ref))
			}
		}
	}
	return errs
}

func validateGlobalWisdom(entries []domain.GlobalWisdomEntry, idx map[string]int) []error {
	var errs []error
	for i, g := range entries {
		prefix := fmt.Sprintf("global_wisdom[%d]", i)

		if g.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if _, dup := idx[g.ID]; dup {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, g.ID))
		} else {
			idx[g.ID] = i
		}

		if !domain.ValidSourceCategories[g.SourceCategory] {
			errs = append(errs, fmt.Errorf("%s.source_category: invalid value %q", prefix, g.SourceCategory))
		}
	}
	return errs
}

func findEvergreen(principles []domain.Principle) (int, []error) {
	found := -1
	var errs []error
	for i, p := range principles {
		if !p.Evergreen {
			continue
		}
		if found >= 0 {
			errs = append(errs, fmt.Errorf("principles[%d]: only one evergreen principle allowed (already %q)", i, principles[found].ID))
			continue
		}
		found = i
	}
	if found < 0 {
		errs = append(errs, fmt.Errorf("principles: an evergreen principle is required"))
	}
	return found, errs
}

func copyPrinciple(p domain.Principle) domain.Principle {
	if p.OriginalText != nil {
		text := *p.OriginalText
		p.OriginalText = &text
	}
	p.FinancialApplications = cloneStrings(p.FinancialApplications)
	p.ScenarioIDs = cloneStrings(p.ScenarioIDs)
	p.PracticalAdvice = cloneStrings(p.PracticalAdvice)
	p.Tags = cloneStrings(p.Tags)
	return p
}

func copyScenario(s domain.Scenario) domain.Scenario {
	s.Keywords = cloneStrings(s.Keywords)
	s.CommonPatterns = cloneStrings(s.CommonPatterns)
	return s
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
