package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/almanac/internal/cli/formatter"
	"github.com/alexanderramin/almanac/internal/contract"
	"github.com/alexanderramin/almanac/internal/domain"
	"github.com/alexanderramin/almanac/internal/knowledge"
	"github.com/spf13/cobra"
)

const embeddedSource = "embedded corpus"

func newKnowledgeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "kb",
		Aliases: []string{"knowledge"},
		Short:   "Inspect and validate the knowledge base",
	}

	cmd.AddCommand(
		newKnowledgeValidateCmd(app),
		newKnowledgeListCmd(app),
		newKnowledgeShowCmd(app),
	)

	return cmd
}

func newKnowledgeValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a corpus file (default: the configured knowledge base)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.KnowledgeFile
			if len(args) == 1 {
				path = args[0]
			}

			source := path
			var (
				kb  *knowledge.KnowledgeBase
				err error
			)
			if path == "" {
				source = embeddedSource
				kb, err = knowledge.LoadDefault()
			} else {
				kb, err = knowledge.LoadFile(path)
			}

			var verr *contract.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatValidationError(source, verr))
				return fmt.Errorf("%s is not a valid knowledge base", source)
			}
			if err != nil {
				return fmt.Errorf("loading %s: %w", source, err)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatKnowledgeSummary(
				source, len(kb.Principles()), len(kb.Scenarios()), len(kb.GlobalWisdomEntries())))
			return nil
		},
	}
}

func newKnowledgeListCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List principles",
		RunE: func(cmd *cobra.Command, args []string) error {
			principles := app.Knowledge.Principles()
			if category != "" {
				c := domain.Category(category)
				if !c.Valid() {
					return fmt.Errorf("unknown category %q", category)
				}
				filtered := principles[:0]
				for _, p := range principles {
					if p.Category == c {
						filtered = append(filtered, p)
					}
				}
				principles = filtered
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPrincipleList(principles))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list principles in this category")
	return cmd
}

func newKnowledgeShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <principle-id>",
		Short: "Show every field of a principle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := app.Knowledge.Principle(args[0])
			if !ok {
				return fmt.Errorf("principle not found: %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPrinciple(p))
			return nil
		},
	}
}
