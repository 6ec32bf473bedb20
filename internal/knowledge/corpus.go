package knowledge

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/almanac/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/corpus.yaml
var defaultCorpus []byte

// Format identifies the encoding of a corpus file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Corpus is the on-disk shape of the three static collections.
type Corpus struct {
	Principles   []PrincipleRecord    `json:"principles" yaml:"principles"`
	Scenarios    []ScenarioRecord     `json:"scenarios" yaml:"scenarios"`
	GlobalWisdom []GlobalWisdomRecord `json:"global_wisdom" yaml:"global_wisdom"`
}

type PrincipleRecord struct {
	ID                    string   `json:"id" yaml:"id"`
	Statement             string   `json:"principle" yaml:"principle"`
	SourceTerm            string   `json:"source_term" yaml:"source_term"`
	OriginalText          *string  `json:"original_text,omitempty" yaml:"original_text,omitempty"`
	Translation           string   `json:"translation" yaml:"translation"`
	ModernInterpretation  string   `json:"modern_interpretation" yaml:"modern_interpretation"`
	FinancialApplications []string `json:"financial_applications" yaml:"financial_applications"`
	Scenarios             []string `json:"scenarios,omitempty" yaml:"scenarios,omitempty"`
	CulturalContext       string   `json:"cultural_context" yaml:"cultural_context"`
	PracticalAdvice       []string `json:"practical_advice" yaml:"practical_advice"`
	Category              string   `json:"category" yaml:"category"`
	Tags                  []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Evergreen             bool     `json:"evergreen,omitempty" yaml:"evergreen,omitempty"`
}

type ScenarioRecord struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Keywords       []string `json:"keywords" yaml:"keywords"`
	CommonPatterns []string `json:"common_patterns,omitempty" yaml:"common_patterns,omitempty"`
}

type GlobalWisdomRecord struct {
	ID                string   `json:"id" yaml:"id"`
	SourceCategory    string   `json:"source_category" yaml:"source_category"`
	Author            string   `json:"author" yaml:"author"`
	Principle         string   `json:"principle" yaml:"principle"`
	Quote             string   `json:"quote" yaml:"quote"`
	ModernApplication string   `json:"modern_application" yaml:"modern_application"`
	RelevantContexts  []string `json:"relevant_contexts,omitempty" yaml:"relevant_contexts,omitempty"`
}

// ParseCorpus decodes a corpus in the given format.
func ParseCorpus(data []byte, format Format) (*Corpus, error) {
	var c Corpus
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parsing corpus json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parsing corpus yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported corpus format %q", format)
	}
	return &c, nil
}

// FormatForPath picks the corpus format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("cannot infer corpus format from %q (want .json, .yaml or .yml)", path)
	}
}

// LoadCorpusFile reads and parses a corpus file.
func LoadCorpusFile(path string) (*Corpus, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCorpus(data, format)
}

// Build converts the corpus records to domain values and runs Load.
func (c *Corpus) Build() (*KnowledgeBase, error) {
	return Load(c.DomainPrinciples(), c.DomainScenarios(), c.DomainGlobalWisdom())
}

func (c *Corpus) DomainPrinciples() []domain.Principle {
	out := make([]domain.Principle, 0, len(c.Principles))
	for _, r := range c.Principles {
		out = append(out, domain.Principle{
			ID:                    r.ID,
			Statement:             r.Statement,
			SourceTerm:            r.SourceTerm,
			OriginalText:          r.OriginalText,
			Translation:           r.Translation,
			ModernInterpretation:  r.ModernInterpretation,
			FinancialApplications: r.FinancialApplications,
			ScenarioIDs:           r.Scenarios,
			CulturalContext:       r.CulturalContext,
			PracticalAdvice:       r.PracticalAdvice,
			Category:              domain.Category(r.Category),
			Tags:                  r.Tags,
			Evergreen:             r.Evergreen,
		})
	}
	return out
}

func (c *Corpus) DomainScenarios() []domain.Scenario {
	out := make([]domain.Scenario, 0, len(c.Scenarios))
	for _, r := range c.Scenarios {
		out = append(out, domain.Scenario{
			ID:             r.ID,
			Name:           r.Name,
			Keywords:       r.Keywords,
			CommonPatterns: r.CommonPatterns,
		})
	}
	return out
}

func (c *Corpus) DomainGlobalWisdom() []domain.GlobalWisdomEntry {
	out := make([]domain.GlobalWisdomEntry, 0, len(c.GlobalWisdom))
	for _, r := range c.GlobalWisdom {
		out = append(out, domain.GlobalWisdomEntry{
			ID:                r.ID,
			SourceCategory:    domain.SourceCategory(r.SourceCategory),
			Author:            r.Author,
			Principle:         r.Principle,
			Quote:             r.Quote,
			ModernApplication: r.ModernApplication,
			RelevantContexts:  r.RelevantContexts,
		})
	}
	return out
}

// LoadFile parses and validates a corpus file into a KnowledgeBase.
func LoadFile(path string) (*KnowledgeBase, error) {
	c, err := LoadCorpusFile(path)
	if err != nil {
		return nil, err
	}
	return c.Build()
}

// LoadDefault builds the KnowledgeBase from the embedded corpus.
func LoadDefault() (*KnowledgeBase, error) {
	c, err := ParseCorpus(defaultCorpus, FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded corpus: %w", err)
	}
	return c.Build()
}
