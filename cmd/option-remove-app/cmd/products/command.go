// Package products provides the command that lists the catalog snapshot.
package products

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	optionremoveapp "github.com/Earnest-Minds/option-remove-app"
	"github.com/Earnest-Minds/option-remove-app/internal/cmd/output"
	"github.com/Earnest-Minds/option-remove-app/internal/cmd/table"
	"github.com/Earnest-Minds/option-remove-app/pkg/constants"
	"github.com/Earnest-Minds/option-remove-app/pkg/logging"
)

// AppContext defines the interface that the products command needs from the
// app. This allows for better testability and decoupling from the full app.
type AppContext interface {
	Client() (optionremoveapp.Client, error)
	Shop() string
	Logger() *zerolog.Logger
	OutputFormat() string
}

// NewCommand creates the products command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		GroupID: "catalog",
		Short:   "List all products and their options",
		Long: `Products reads the entire catalog through cursor-based pagination and
prints every product with its options. This is the same snapshot the add
and remove commands operate on.`,
		Example: `  option-remove-app products                # Table of all products
  option-remove-app products -o wide        # Include option values
  option-remove-app products -o json        # Machine-readable snapshot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app)
		},
	}
	return cmd
}

func run(cmd *cobra.Command, app AppContext) error {
	client, err := app.Client()
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), app.Logger())
	ctx = logging.WithShop(ctx, app.Shop())
	ctx, cancel := context.WithTimeout(ctx, constants.CommandTimeout)
	defer cancel()

	allProducts, err := client.Products(ctx)
	if err != nil {
		return err
	}

	format := output.Format(app.OutputFormat())
	formatter := output.NewFormatter(format)

	var outputData any
	switch format {
	case output.FormatTable, output.FormatWide, "":
		tableData := table.ProductsToTableData(allProducts, format == output.FormatWide)
		outputData = output.Data{
			Headers:         tableData.Headers,
			Rows:            tableData.Rows,
			ColumnAlignment: tableData.ColumnAlignment,
		}
	default:
		outputData = allProducts
	}

	return formatter.Format(cmd.OutOrStdout(), outputData)
}
