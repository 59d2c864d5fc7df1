// Package audit provides the command that writes a Markdown report of
// option usage across the catalog.
package audit

import (
	"bytes"
	"context"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	optionremoveapp "github.com/Earnest-Minds/option-remove-app"
	"github.com/Earnest-Minds/option-remove-app/internal/report"
	"github.com/Earnest-Minds/option-remove-app/pkg/constants"
	"github.com/Earnest-Minds/option-remove-app/pkg/errors"
	"github.com/Earnest-Minds/option-remove-app/pkg/logging"
)

// AppContext defines the interface that the audit command needs from the app.
type AppContext interface {
	Client() (optionremoveapp.Client, error)
	Shop() string
	Logger() *zerolog.Logger
}

// NewCommand creates the audit command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var optionName string
	var filePath string

	cmd := &cobra.Command{
		Use:     "audit",
		GroupID: "catalog",
		Short:   "Write a Markdown report of option usage",
		Long: `Audit reads the full catalog and summarizes option usage: which option
names exist, how many products carry each, and how many distinct values
each has. With --option, the report also lists every product missing that
option, which is exactly the set the add command would mutate.`,
		Example: `  option-remove-app audit                        # Print report to stdout
  option-remove-app audit --option Color        # Include missing-products list
  option-remove-app audit --file report.md      # Write to a file
  option-remove-app audit --file auto           # Timestamped file name`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, optionName, filePath)
		},
	}

	cmd.Flags().StringVar(&optionName, "option", "", "option name to check coverage for")
	cmd.Flags().StringVar(&filePath, "file", "", "write the report to this file instead of stdout (\"auto\" picks a timestamped name)")

	return cmd
}

func run(cmd *cobra.Command, app AppContext, optionName, filePath string) error {
	client, err := app.Client()
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), app.Logger())
	ctx = logging.WithShop(ctx, app.Shop())
	ctx = logging.WithOperation(ctx, "audit")
	ctx, cancel := context.WithTimeout(ctx, constants.CommandTimeout)
	defer cancel()

	allProducts, err := client.Products(ctx)
	if err != nil {
		return err
	}

	// The coverage section mirrors the add workflow's exact-match view, so
	// the name gets the same trimming.
	audit := report.Audit{
		Shop:        app.Shop(),
		GeneratedAt: time.Now().UTC(),
		Products:    allProducts,
		OptionName:  strings.TrimSpace(optionName),
	}

	if filePath == "" {
		return report.WriteMarkdown(cmd.OutOrStdout(), audit)
	}

	if filePath == "auto" {
		filePath = report.Filename(audit.GeneratedAt)
	}

	var buf bytes.Buffer
	if err := report.WriteMarkdown(&buf, audit); err != nil {
		return err
	}
	if err := os.WriteFile(filePath, buf.Bytes(), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", filePath, err)
	}

	cmd.Printf("Wrote audit report to %s\n", filePath)
	return nil
}
