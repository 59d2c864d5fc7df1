// Package add provides the command that bulk-adds an option to every
// product missing it.
package add

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	optionremoveapp "github.com/Earnest-Minds/option-remove-app"
	"github.com/Earnest-Minds/option-remove-app/pkg/catalog"
	"github.com/Earnest-Minds/option-remove-app/pkg/constants"
	"github.com/Earnest-Minds/option-remove-app/pkg/logging"
)

// AppContext defines the interface that the add command needs from the app.
type AppContext interface {
	Client() (optionremoveapp.Client, error)
	Shop() string
	Logger() *zerolog.Logger
}

// NewCommand creates the add command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var valuesFlag string
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "add <option-name>",
		GroupID: "options",
		Short:   "Add an option to every product missing it",
		Long: `Add re-reads the full catalog, finds every product that does not already
carry an option with the given name (case-insensitive exact match), and
issues one create call per product with the supplied values. Existing
variants are left untouched.

Per-product errors reported by the platform are collected and the run
continues; the command fails at the end with all error messages joined.
Nothing is rolled back.`,
		Example: `  option-remove-app add Color --values "Red,Green,Yellow"
  option-remove-app add "Pack weight" --values "Light,Medium,Heavy" --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, args[0], splitValues(valuesFlag), dryRun)
		},
	}

	cmd.Flags().StringVar(&valuesFlag, "values", "", "comma-separated option values, e.g. \"Red,Green,Yellow\"")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the products that would get the option, without mutating")
	_ = cmd.MarkFlagRequired("values")

	return cmd
}

func run(cmd *cobra.Command, app AppContext, optionName string, values []string, dryRun bool) error {
	client, err := app.Client()
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), app.Logger())
	ctx = logging.WithShop(ctx, app.Shop())
	ctx = logging.WithOperation(ctx, "add")
	ctx, cancel := context.WithTimeout(ctx, constants.CommandTimeout)
	defer cancel()

	if dryRun {
		name, err := catalog.ValidateAddInput(optionName, values)
		if err != nil {
			return err
		}
		allProducts, err := client.Products(ctx)
		if err != nil {
			return err
		}
		missing := catalog.MissingOption(allProducts, name)
		cmd.Printf("%d of %d products are missing option %q:\n", len(missing), len(allProducts), name)
		for _, p := range missing {
			cmd.Printf("  %s (%s)\n", p.Title, p.ID)
		}
		return nil
	}

	result, err := client.AddOption(ctx, optionName, values)
	if err != nil {
		return err
	}
	if !result.Success() {
		return result.Err()
	}

	cmd.Printf("Added option %q to %d products (%d already had it)\n",
		optionName, result.Added, result.Skipped)
	return nil
}

// splitValues parses the comma-separated --values flag, trimming whitespace
// and dropping empty entries.
func splitValues(flag string) []string {
	var values []string
	for _, value := range strings.Split(flag, ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			values = append(values, value)
		}
	}
	return values
}
