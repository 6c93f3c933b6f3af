package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pageza/recipe-translate/backend/internal/provider/translation"
	"github.com/pageza/recipe-translate/backend/internal/service"
	"github.com/pageza/recipe-translate/backend/internal/types"
)

// Builder constructs the pipeline and translation provider, usually from config.LoadConfig
type Builder func() (service.IRecipeService, translation.Provider, error)

// Flags holds all command-line flag values
type Flags struct {
	Cuisine  string
	Language string
	Summary  bool
	Timeout  time.Duration
}

// ResultError is returned when the pipeline finished with a non-ok status class
type ResultError struct {
	Status  types.StatusClass
	Message string
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(build Builder) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "recipectl",
		Short: "Fetch a recipe and translate it",
		Long: `recipectl runs the same fetch-translate pipeline as the API server from the terminal.

Examples:
  recipectl search ratatouille
  recipectl search "salade niçoise" --lang de --summary
  recipectl usage`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newSearchCommand(build), newUsageCommand(build))
	return rootCmd
}

func newSearchCommand(build Builder) *cobra.Command {
	flags := &Flags{Timeout: time.Minute}

	cmd := &cobra.Command{
		Use:   "search <dish>",
		Short: "Search a dish and print the translated recipe envelope",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := build()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), flags.Timeout)
			defer cancel()

			query := types.RecipeQuery{
				Dish:           strings.Join(args, " "),
				Cuisine:        flags.Cuisine,
				TargetLanguage: flags.Language,
			}
			result, status := svc.Run(ctx, query)

			out := cmd.OutOrStdout()
			if flags.Summary {
				printSummary(out, result)
			} else {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return fmt.Errorf("failed to encode result: %w", err)
				}
			}

			if status != types.StatusOK {
				msg := ""
				if result.Error != nil {
					msg = *result.Error
				}
				return &ResultError{Status: status, Message: msg}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Cuisine, "cuisine", "c", "", "Cuisine filter (default from DEFAULT_CUISINE)")
	cmd.Flags().StringVarP(&flags.Language, "lang", "l", "", "Target language code (default from DEFAULT_TARGET_LANGUAGE)")
	cmd.Flags().BoolVar(&flags.Summary, "summary", false, "Print a human-readable summary instead of JSON")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Overall deadline for the search")

	return cmd
}

func newUsageCommand(build Builder) *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show the translation provider's character usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, provider, err := build()
			if err != nil {
				return err
			}

			usage, err := translation.QueryUsage(cmd.Context(), provider)
			if err != nil {
				return fmt.Errorf("%s: %w", provider.Name(), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d of %d characters used, %d remaining\n",
				provider.Name(), usage.CharacterCount, usage.CharacterLimit, usage.Remaining())
			return nil
		},
	}
}

func printSummary(w io.Writer, r *types.RecipeResult) {
	if r.Error != nil {
		fmt.Fprintf(w, "Error: %s\n", *r.Error)
	}
	if r.TitleSource != nil {
		target := ""
		if r.TitleTarget != nil {
			target = *r.TitleTarget
		}
		fmt.Fprintf(w, "Title: %s (%s)\n", *r.TitleSource, target)
		if r.CookingTimeMinutes != nil {
			fmt.Fprintf(w, "Cooking Time: %d minutes\n", *r.CookingTimeMinutes)
		} else {
			fmt.Fprintln(w, "Cooking Time: Not available")
		}
		fmt.Fprintln(w, "Ingredients:")
		if len(r.Ingredients) == 0 {
			fmt.Fprintln(w, "  No ingredients found.")
		}
		for _, ing := range r.Ingredients {
			fmt.Fprintf(w, "  - %s => %s\n", ing.Source, ing.Target)
		}
	}

	if r.Quota.Empty() {
		fmt.Fprintln(w, "Quota: not reported")
		return
	}
	fmt.Fprintf(w, "Quota: request=%s used=%s left=%s\n",
		deref(r.Quota.RequestCost), deref(r.Quota.Used), deref(r.Quota.Remaining))
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
