package app

import (
	"github.com/spf13/cobra"

	"github.com/Earnest-Minds/option-remove-app/cmd/option-remove-app/cmd/add"
	"github.com/Earnest-Minds/option-remove-app/cmd/option-remove-app/cmd/audit"
	"github.com/Earnest-Minds/option-remove-app/cmd/option-remove-app/cmd/products"
	"github.com/Earnest-Minds/option-remove-app/cmd/option-remove-app/cmd/remove"
)

// registerCommands registers all subcommands with the root command.
// This is where we wire up all the command handlers.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Catalog commands
	rootCmd.AddCommand(a.CreateProductsCommand())
	rootCmd.AddCommand(a.CreateAuditCommand())

	// Option commands
	rootCmd.AddCommand(a.CreateAddCommand())
	rootCmd.AddCommand(a.CreateRemoveCommand())

	// Utility commands
	rootCmd.AddCommand(a.CreateVersionCommand())
}

// CreateProductsCommand creates the products command with app dependencies.
func (a *App) CreateProductsCommand() *cobra.Command {
	return products.NewCommand(a)
}

// CreateAuditCommand creates the audit command with app dependencies.
func (a *App) CreateAuditCommand() *cobra.Command {
	return audit.NewCommand(a)
}

// CreateAddCommand creates the add command with app dependencies.
func (a *App) CreateAddCommand() *cobra.Command {
	return add.NewCommand(a)
}

// CreateRemoveCommand creates the remove command with app dependencies.
func (a *App) CreateRemoveCommand() *cobra.Command {
	return remove.NewCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("option-remove-app %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
