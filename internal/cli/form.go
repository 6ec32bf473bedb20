package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/alexanderramin/almanac/internal/cli/formatter"
	"github.com/alexanderramin/almanac/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// almanacHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func almanacHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// contextFormInput holds the raw answers of the interactive context form.
// Numeric answers stay strings so a blank answer can mean "unknown".
type contextFormInput struct {
	Situation   string
	Risk        string
	Stage       string
	Goals       string
	Categories  string
	Income      string
	Expenses    string
	SavingsRate string
}

// newContextForm asks for a full financial context. Defaults come from in.
func newContextForm(in *contextFormInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What best describes your situation?").
				Options(enumOptions(domain.ValidSituations)...).
				Value(&in.Situation),
			huh.NewSelect[string]().
				Title("Risk profile").
				Options(enumOptions(domain.ValidRiskProfiles)...).
				Value(&in.Risk),
			huh.NewSelect[string]().
				Title("Life stage").
				Options(enumOptions(domain.ValidLifeStages)...).
				Value(&in.Stage),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Goals").
				Description("Comma-separated, most important first").
				Placeholder("build an emergency fund, pay off credit card").
				Value(&in.Goals),
			huh.NewInput().
				Title("Top spending categories").
				Description("Comma-separated, largest first").
				Placeholder("dining, rent").
				Value(&in.Categories),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly income").
				Description("Leave blank if unsure").
				Validate(validateOptionalAmount).
				Value(&in.Income),
			huh.NewInput().
				Title("Monthly expenses").
				Description("Leave blank if unsure").
				Validate(validateOptionalAmount).
				Value(&in.Expenses),
			huh.NewInput().
				Title("Savings rate").
				Description("Fraction of income saved, e.g. 0.10; blank if unsure").
				Validate(validateOptionalRate).
				Value(&in.SavingsRate),
		),
	).WithTheme(almanacHuhTheme()).WithShowHelp(false)
}

// toContext converts the answers. Blank numeric answers stay nil.
func (in *contextFormInput) toContext() (domain.UserFinancialContext, error) {
	ctx := domain.UserFinancialContext{
		Situation:   domain.Situation(in.Situation),
		RiskProfile: domain.RiskProfile(in.Risk),
		LifeStage:   domain.LifeStage(in.Stage),
		Goals:       nonEmpty(strings.Split(in.Goals, ",")),
		SpendingPattern: domain.SpendingPattern{
			TopCategories: nonEmpty(strings.Split(in.Categories, ",")),
		},
	}

	var err error
	if ctx.SpendingPattern.MonthlyIncome, err = parseOptionalFloat("income", in.Income); err != nil {
		return ctx, err
	}
	if ctx.SpendingPattern.MonthlyExpenses, err = parseOptionalFloat("expenses", in.Expenses); err != nil {
		return ctx, err
	}
	if ctx.SpendingPattern.SavingsRate, err = parseOptionalFloat("savings rate", in.SavingsRate); err != nil {
		return ctx, err
	}
	return ctx, nil
}

func parseOptionalFloat(field, s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return &v, nil
}

func validateOptionalAmount(s string) error {
	v, err := parseOptionalFloat("amount", s)
	if err != nil {
		return err
	}
	if v != nil && *v < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	return nil
}

func validateOptionalRate(s string) error {
	v, err := parseOptionalFloat("rate", s)
	if err != nil {
		return err
	}
	if v != nil && (*v < -1 || *v > 1) {
		return fmt.Errorf("rate must be a fraction between -1 and 1")
	}
	return nil
}

// enumOptions builds select options for an enum set, labelled in title case.
func enumOptions[T ~string](set map[T]bool) []huh.Option[string] {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, string(v))
	}
	slices.Sort(values)

	options := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		options = append(options, huh.NewOption(formatter.TitleWords(v), v))
	}
	return options
}
