package knowledge

import (
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/almanac/internal/contract"
	"github.com/alexanderramin/almanac/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func principle(id string, category domain.Category, scenarios ...string) domain.Principle {
	return domain.Principle{
		ID:          id,
		Statement:   "Statement " + id,
		Category:    category,
		ScenarioIDs: scenarios,
	}
}

func evergreen(p domain.Principle) domain.Principle {
	p.Evergreen = true
	return p
}

func validationProblems(t *testing.T, err error) []string {
	t.Helper()
	var verr *contract.ValidationError
	require.True(t, errors.As(err, &verr), "expected *contract.ValidationError, got %v", err)
	return verr.Problems
}

func TestLoad_Valid(t *testing.T) {
	scenarios := []domain.Scenario{{ID: "impulse", Name: "Impulse spending", Keywords: []string{"dining"}}}
	principles := []domain.Principle{
		evergreen(principle("within-income", domain.CategoryExpenseManagement, "impulse")),
		principle("ant", domain.CategorySavingStrategies),
	}
	global := []domain.GlobalWisdomEntry{{ID: "smith", SourceCategory: domain.SourceClassicalTreatise}}

	kb, err := Load(principles, scenarios, global)
	require.NoError(t, err)

	assert.Equal(t, 2, kb.Len())
	p, ok := kb.Principle("ant")
	require.True(t, ok)
	assert.Equal(t, domain.CategorySavingStrategies, p.Category)

	s, ok := kb.Scenario("impulse")
	require.True(t, ok)
	assert.Equal(t, "Impulse spending", s.Name)

	_, ok = kb.GlobalWisdom("smith")
	assert.True(t, ok)

	eg, ok := kb.Evergreen()
	require.True(t, ok)
	assert.Equal(t, "within-income", eg.ID)
}

func TestLoad_PreservesDeclarationOrder(t *testing.T) {
	principles := []domain.Principle{
		principle("zeta", domain.CategoryTradeCommerce),
		evergreen(principle("alpha", domain.CategoryFinancialEthics)),
		principle("mid", domain.CategoryRiskManagement),
	}

	kb, err := Load(principles, nil, nil)
	require.NoError(t, err)

	var got []string
	for _, p := range kb.Principles() {
		got = append(got, p.ID)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, got)
}

func TestLoad_UnknownScenarioReference(t *testing.T) {
	principles := []domain.Principle{
		evergreen(principle("p", domain.CategoryDebtManagement, "missing")),
	}

	_, err := Load(principles, nil, nil)

	assert.Equal(t, []string{`principles[0].scenarios[0]: scenario "missing" not found`}, validationProblems(t, err))
}

func TestLoad_InvalidEnums(t *testing.T) {
	principles := []domain.Principle{evergreen(principle("p", "astrology"))}
	global := []domain.GlobalWisdomEntry{{ID: "g", SourceCategory: "blog"}}

	_, err := Load(principles, nil, global)

	problems := validationProblems(t, err)
	assert.Contains(t, problems, `principles[0].category: invalid value "astrology"`)
	assert.Contains(t, problems, `global_wisdom[0].source_category: invalid value "blog"`)
}

func TestLoad_DuplicateIDs(t *testing.T) {
	scenarios := []domain.Scenario{{ID: "s"}, {ID: "s"}}
	principles := []domain.Principle{
		evergreen(principle("p", domain.CategorySavingStrategies)),
		principle("p", domain.CategoryDebtManagement),
	}
	global := []domain.GlobalWisdomEntry{
		{ID: "g", SourceCategory: domain.SourceAncientWisdom},
		{ID: "g", SourceCategory: domain.SourceAncientWisdom},
	}

	_, err := Load(principles, scenarios, global)

	problems := validationProblems(t, err)
	assert.Contains(t, problems, `scenarios[1].id: duplicate id "s"`)
	assert.Contains(t, problems, `principles[1].id: duplicate id "p"`)
	assert.Contains(t, problems, `global_wisdom[1].id: duplicate id "g"`)
}

func TestLoad_EmptyIDs(t *testing.T) {
	principles := []domain.Principle{evergreen(principle("", domain.CategorySavingStrategies))}

	_, err := Load(principles, []domain.Scenario{{}}, nil)

	problems := validationProblems(t, err)
	assert.Contains(t, problems, "scenarios[0].id is required")
	assert.Contains(t, problems, "principles[0].id is required")
}

func TestLoad_EvergreenRules(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := Load([]domain.Principle{principle("p", domain.CategorySavingStrategies)}, nil, nil)

		assert.Equal(t, []string{"principles: an evergreen principle is required"}, validationProblems(t, err))
	})

	t.Run("more than one", func(t *testing.T) {
		_, err := Load([]domain.Principle{
			evergreen(principle("a", domain.CategorySavingStrategies)),
			evergreen(principle("b", domain.CategoryDebtManagement)),
		}, nil, nil)

		problems := validationProblems(t, err)
		require.Len(t, problems, 1)
		assert.True(t, strings.HasPrefix(problems[0], "principles[1]: only one evergreen principle allowed"))
	})
}

func TestLoad_CollectsEveryProblem(t *testing.T) {
	principles := []domain.Principle{
		principle("a", "nope", "ghost"),
		principle("a", domain.CategoryWealthCreation),
	}

	_, err := Load(principles, nil, nil)

	problems := validationProblems(t, err)
	assert.Len(t, problems, 4)
	assert.Contains(t, err.Error(), "ghost")
}

func TestLoad_Indexes(t *testing.T) {
	a := principle("a", domain.CategorySavingStrategies)
	a.Tags = []string{"Emergency", "saving", "emergency"}
	b := evergreen(principle("b", domain.CategorySavingStrategies))
	b.Tags = []string{" EMERGENCY "}
	c := principle("c", domain.CategoryDebtManagement)

	kb, err := Load([]domain.Principle{a, b, c}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, kb.PrincipleIDsByTag("emergency"))
	assert.Equal(t, []string{"a", "b"}, kb.PrincipleIDsByTag("Emergency"))
	assert.Equal(t, []string{"a"}, kb.PrincipleIDsByTag("saving"))
	assert.Empty(t, kb.PrincipleIDsByTag("unknown"))
	assert.Equal(t, []string{"a", "b"}, kb.PrincipleIDsByCategory(domain.CategorySavingStrategies))
	assert.Equal(t, []string{"c"}, kb.PrincipleIDsByCategory(domain.CategoryDebtManagement))
}

func TestLoad_IsolatedFromCallerMutation(t *testing.T) {
	p := evergreen(principle("p", domain.CategorySavingStrategies))
	p.Tags = []string{"saving"}
	input := []domain.Principle{p}

	kb, err := Load(input, nil, nil)
	require.NoError(t, err)

	input[0].Tags[0] = "mutated"
	input[0].Statement = "mutated"

	got, _ := kb.Principle("p")
	assert.Equal(t, []string{"saving"}, got.Tags)
	assert.Equal(t, "Statement p", got.Statement)
}

func TestKnowledgeBase_AccessorsReturnCopies(t *testing.T) {
	kb, err := Load([]domain.Principle{
		evergreen(principle("a", domain.CategorySavingStrategies)),
		principle("b", domain.CategoryDebtManagement),
	}, nil, nil)
	require.NoError(t, err)

	list := kb.Principles()
	list[0] = domain.Principle{ID: "replaced"}

	ids := kb.PrincipleIDsByCategory(domain.CategorySavingStrategies)
	ids[0] = "replaced"

	first := kb.Principles()[0]
	assert.Equal(t, "a", first.ID)
	assert.Equal(t, []string{"a"}, kb.PrincipleIDsByCategory(domain.CategorySavingStrategies))
}

func TestKnowledgeBase_ZeroValueHasNoEvergreen(t *testing.T) {
	var kb KnowledgeBase

	_, ok := kb.Evergreen()

	assert.False(t, ok)
}
