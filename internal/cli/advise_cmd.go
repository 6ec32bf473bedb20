package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/almanac/internal/cli/formatter"
	"github.com/alexanderramin/almanac/internal/contract"
	"github.com/alexanderramin/almanac/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// runContextForm runs the interactive context form. Tests replace it.
var runContextForm = func(in *contextFormInput) error {
	return newContextForm(in).Run()
}

func newAdviseCmd(app *App) *cobra.Command {
	var (
		flags         contextFlags
		profileRef    string
		maxSupporting int
		asJSON        bool
		explain       bool
	)

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Recommend wisdom for a financial situation",
		Long: `Recommend a primary principle, supporting wisdom and an action plan.

Describe the situation with flags, name a saved profile with --profile, or run
without --situation in a terminal to answer a short form.`,
		Example: `  almanac advise --situation overspending --category dining --goal "cut dining spend"
  almanac advise --profile household --explain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var (
				resp *contract.WisdomEngineResponse
				err  error
			)
			switch {
			case profileRef != "":
				req := contract.WisdomRequest{MaxSupporting: maxSupporting, Explain: explain}
				resp, err = app.Wisdom.RecommendForProfile(ctx, profileRef, req)
			default:
				var userCtx domain.UserFinancialContext
				userCtx, err = adviseContext(cmd, app, &flags)
				if err != nil {
					return err
				}
				req := contract.NewWisdomRequest(userCtx)
				req.MaxSupporting = maxSupporting
				req.Explain = explain
				resp, err = app.Wisdom.Recommend(ctx, req)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWisdom(resp))
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&profileRef, "profile", "", "Use a saved profile (ID or name) instead of context flags")
	cmd.Flags().IntVar(&maxSupporting, "max-supporting", 0, "Maximum supporting principles (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw response as JSON")
	cmd.Flags().BoolVar(&explain, "explain", false, "Include the score breakdown of each selected principle")
	cmd.MarkFlagsMutuallyExclusive("profile", "situation")

	return cmd
}

// adviseContext builds the request context from flags, falling back to the
// interactive form when no situation was given on a terminal.
func adviseContext(cmd *cobra.Command, app *App, flags *contextFlags) (domain.UserFinancialContext, error) {
	if flags.situation != "" {
		return flags.build(cmd.Flags())
	}
	if !app.interactive() {
		return domain.UserFinancialContext{}, fmt.Errorf("--situation or --profile is required when not running in a terminal")
	}

	in := &contextFormInput{
		Situation: string(domain.SituationBudgeting),
		Risk:      flags.risk,
		Stage:     flags.stage,
	}
	if err := runContextForm(in); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return domain.UserFinancialContext{}, fmt.Errorf("cancelled")
		}
		return domain.UserFinancialContext{}, err
	}
	return in.toContext()
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
