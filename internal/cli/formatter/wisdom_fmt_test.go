package formatter

import (
	"testing"

	"github.com/alexanderramin/almanac/internal/contract"
	"github.com/alexanderramin/almanac/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleResponse() *contract.WisdomEngineResponse {
	original := "செல்வத்துள் செல்வம்"
	return &contract.WisdomEngineResponse{
		PrimaryWisdom: contract.ContextualWisdom{
			Principle: domain.Principle{
				ID:           "small-leaks",
				Statement:    "Beware of little expenses",
				SourceTerm:   "Poor Richard's Almanack",
				OriginalText: &original,
				Category:     domain.CategoryExpenseManagement,
			},
			RelevanceScore:          0.71,
			PersonalizedApplication: "Start with dining.",
			Warnings:                []string{"Watch the small stuff"},
		},
		SupportingWisdom: []contract.ContextualWisdom{{
			Principle:      domain.Principle{ID: "ant", Statement: "Go to the ant", Category: domain.CategorySavingStrategies},
			RelevanceScore: 0.4,
		}},
		PersonalizedGuidance: "Start with dining. Alongside it, save.",
		CulturalContext:      "Colonial Philadelphia",
		ModernParallels:      []string{"Cancel unused subscriptions"},
		ActionPlan: contract.ActionPlan{
			Immediate: []string{"Cancel one subscription today"},
			LongTerm:  []string{"Review once a year"},
		},
	}
}

func TestFormatWisdom_Sections(t *testing.T) {
	out := stripANSI(FormatWisdom(sampleResponse()))

	assert.Contains(t, out, "ALMANAC")
	assert.Contains(t, out, `"Beware of little expenses"`)
	assert.Contains(t, out, "● 0.71")
	assert.Contains(t, out, "Expense Management")
	assert.Contains(t, out, "செல்வத்துள் செல்வம்")
	assert.Contains(t, out, "WARNING: Watch the small stuff")
	assert.Contains(t, out, "SUPPORTING WISDOM")
	assert.Contains(t, out, "Go to the ant")
	assert.Contains(t, out, "Colonial Philadelphia")
	assert.Contains(t, out, "Cancel one subscription today")
	assert.Contains(t, out, "Long term")
	assert.NotContains(t, out, "This month", "empty horizons are omitted")
	assert.Contains(t, out, "Cancel unused subscriptions")
	assert.NotContains(t, out, "SCORE BREAKDOWN")
	assert.NotContains(t, out, "closely")
}

func TestFormatWisdom_FallbackNotice(t *testing.T) {
	resp := sampleResponse()
	resp.Fallback = true
	resp.SupportingWisdom = nil

	out := stripANSI(FormatWisdom(resp))

	assert.Contains(t, out, "No principle matched your situation closely")
	assert.NotContains(t, out, "SUPPORTING WISDOM")
}

func TestFormatWisdom_Breakdowns(t *testing.T) {
	resp := sampleResponse()
	resp.Breakdowns = []contract.ScoreBreakdown{
		{PrincipleID: "small-leaks", Situation: 1, Keywords: 0.6, Affinity: 0.6, Total: 0.54},
	}

	out := stripANSI(FormatWisdom(resp))

	assert.Contains(t, out, "SCORE BREAKDOWN")
	assert.Contains(t, out, "0.540")
}

func TestFormatActionPlan_Empty(t *testing.T) {
	out := stripANSI(FormatActionPlan(contract.ActionPlan{}))

	assert.Contains(t, out, "No concrete steps")
}
