package domain

// Principle is an immutable knowledge-base entry. Cross references to
// scenarios are held by ID and resolved through the knowledge base.
type Principle struct {
	ID                    string
	Statement             string
	SourceTerm            string
	OriginalText          *string
	Translation           string
	ModernInterpretation  string
	FinancialApplications []string
	ScenarioIDs           []string
	CulturalContext       string
	PracticalAdvice       []string
	Category              Category
	Tags                  []string

	// Evergreen marks the unconditional fallback principle.
	Evergreen bool
}

// Scenario is a named situational pattern referenced by principles.
type Scenario struct {
	ID             string
	Name           string
	Keywords       []string
	CommonPatterns []string
}

// GlobalWisdomEntry is a cross-tradition teaching scored independently of principles.
type GlobalWisdomEntry struct {
	ID                string
	SourceCategory    SourceCategory
	Author            string
	Principle         string
	Quote             string
	ModernApplication string
	RelevantContexts  []string
}
