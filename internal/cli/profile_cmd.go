package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/almanac/internal/cli/formatter"
	"github.com/alexanderramin/almanac/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved financial contexts",
	}

	cmd.AddCommand(
		newProfileAddCmd(app),
		newProfileListCmd(app),
		newProfileShowCmd(app),
		newProfileDeleteCmd(app),
	)

	return cmd
}

func newProfileAddCmd(app *App) *cobra.Command {
	var (
		flags   contextFlags
		name    string
		replace bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a financial context under a name",
		RunE: func(cmd *cobra.Command, args []string) error {
			userCtx, err := flags.build(cmd.Flags())
			if err != nil {
				return err
			}

			p := &domain.Profile{Name: name, Context: userCtx}
			if replace {
				err = app.Profiles.Save(context.Background(), p)
			} else {
				err = app.Profiles.Create(context.Background(), p)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile %s %s\n", p.Name, formatter.TruncID(p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Profile name")
	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the context of an existing profile with the same name")
	flags.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("situation")

	return cmd
}

func newProfileListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := app.Profiles.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfileList(profiles, time.Now()))
			return nil
		},
	}
}

func newProfileShowCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id-or-name>",
		Short: "Show a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("profile %q: %w", args[0], err)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), p)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the profile as JSON")
	return cmd
}

func newProfileDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id-or-name>",
		Short: "Delete a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Profiles.Delete(context.Background(), args[0]); err != nil {
				return fmt.Errorf("profile %q: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %s\n", args[0])
			return nil
		},
	}
}
