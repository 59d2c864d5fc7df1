// Package remove provides the command that bulk-removes a matched option
// from every product carrying it.
package remove

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	optionremoveapp "github.com/Earnest-Minds/option-remove-app"
	"github.com/Earnest-Minds/option-remove-app/pkg/catalog"
	"github.com/Earnest-Minds/option-remove-app/pkg/constants"
	"github.com/Earnest-Minds/option-remove-app/pkg/logging"
)

// AppContext defines the interface that the remove command needs from the app.
type AppContext interface {
	Client() (optionremoveapp.Client, error)
	Shop() string
	Logger() *zerolog.Logger
}

// NewCommand creates the remove command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "remove <option-name>",
		GroupID: "options",
		Short:   "Remove a matched option from every product",
		Long: `Remove re-reads the full catalog and, for each product, removes the first
option whose name contains the given term (case-insensitive substring
match). Options holding more than one value have all values but the first
deleted before the option itself is removed; variants depending on deleted
values are deleted by the platform.

Per-product errors reported by the platform are collected and the run
continues; the command fails at the end with all error messages joined. A
product whose value trim fails keeps its option in single-value state.`,
		Example: `  option-remove-app remove Color
  option-remove-app remove weight            # Matches "Pack weight" too
  option-remove-app remove Color --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, args[0], dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the options that would be removed, without mutating")

	return cmd
}

func run(cmd *cobra.Command, app AppContext, term string, dryRun bool) error {
	client, err := app.Client()
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), app.Logger())
	ctx = logging.WithShop(ctx, app.Shop())
	ctx = logging.WithOperation(ctx, "remove")
	ctx, cancel := context.WithTimeout(ctx, constants.CommandTimeout)
	defer cancel()

	if dryRun {
		search, err := catalog.ValidateRemoveTerm(term)
		if err != nil {
			return err
		}
		allProducts, err := client.Products(ctx)
		if err != nil {
			return err
		}
		matched := 0
		for _, p := range allProducts {
			opt, ok := p.FindOption(search)
			if !ok {
				continue
			}
			matched++
			cmd.Printf("  %s: option %q with %d values (%s)\n", p.Title, opt.Name, len(opt.Values), p.ID)
		}
		cmd.Printf("%d of %d products match %q\n", matched, len(allProducts), search)
		return nil
	}

	result, err := client.RemoveOption(ctx, term)
	if err != nil {
		return err
	}
	if !result.Success() {
		return result.Err()
	}

	if result.Matched == 0 {
		cmd.Printf("No product has an option matching %q\n", term)
		return nil
	}
	cmd.Printf("Removed option matching %q from %d products\n", term, result.Removed)
	return nil
}
