package wisdom

import (
	"strings"
	"unicode"

	"github.com/alexanderramin/almanac/internal/domain"
)

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "your": true, "you": true,
	"our": true, "are": true, "was": true, "but": true, "not": true, "all": true,
	"any": true, "can": true, "into": true, "from": true, "that": true, "this": true,
	"than": true, "then": true, "them": true, "they": true, "each": true, "every": true,
	"out": true, "own": true, "more": true, "less": true, "some": true, "get": true,
	"its": true, "it's": true, "what": true, "when": true, "how": true, "have": true,
	"has": true, "will": true, "want": true, "need": true, "over": true, "per": true,
	"one": true, "two": true, "my": true, "me": true, "set": true, "put": true,
	"before": true, "after": true, "least": true, "even": true, "only": true, "now": true,
	"today": true, "week": true, "month": true, "year": true, "years": true,
}

// tokenize lower-cases s and splits it into words. Hyphens and underscores
// stay inside words; words shorter than three runes and stop words are dropped.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' && r != '\''
	})
	out := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, "-_'")
		if len([]rune(f)) < 3 || stopWords[f] {
			continue
		}
		out = append(out, f)
	}
	return out
}

// keywordSet is a case-folded, deduplicated set of context keywords.
type keywordSet map[string]bool

// contextKeywords builds the keyword set for a context: words from goals and
// top spending categories plus the situation name verbatim.
func contextKeywords(ctx *domain.UserFinancialContext) keywordSet {
	set := make(keywordSet)
	for _, g := range ctx.Goals {
		for _, w := range tokenize(g) {
			set[w] = true
		}
	}
	for _, c := range ctx.SpendingPattern.TopCategories {
		for _, w := range tokenize(c) {
			set[w] = true
		}
	}
	if s := strings.ToLower(string(ctx.Situation)); s != "" {
		set[s] = true
	}
	return set
}

// expanded returns a copy of the set that also contains the parts of any
// hyphenated or underscored keyword and their singular forms.
func (k keywordSet) expanded() keywordSet {
	out := make(keywordSet, len(k)*2)
	for w := range k {
		out[w] = true
		out[singular(w)] = true
		for _, part := range strings.FieldsFunc(w, func(r rune) bool { return r == '-' || r == '_' }) {
			if len(part) >= 3 && !stopWords[part] {
				out[part] = true
				out[singular(part)] = true
			}
		}
	}
	return out
}

func (k keywordSet) intersects(words []string) bool {
	for _, w := range words {
		if k[w] || k[singular(w)] {
			return true
		}
	}
	return false
}

// singular strips a trailing plural "s" from longer words.
func singular(w string) string {
	if len(w) > 4 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") {
		return strings.TrimSuffix(w, "s")
	}
	return w
}

func tagSet(tags []string) keywordSet {
	set := make(keywordSet, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			set[t] = true
		}
	}
	return set
}

// jaccard returns |a∩b| / |a∪b|, with 0/0 defined as 0.
func jaccard(a, b keywordSet) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if b[w] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
