package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jkeenum/kindred-core/internal/application/handlers"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <directory>",
		Short: "Import people and relationships from CSV files",
		Long: `Imports a directory containing people.csv and optionally
relationships.csv and partnerships.csv. Rows that fail validation are
reported and skipped.

Examples:
  kindred import ./census-1880
  kindred import ./census-1880 --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("dry-run", false, "Validate and count without writing")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	return withDeps(func(d *Deps) error {
		result, err := d.ImportHandler.Handle(ctx, args[0], handlers.ImportOptions{DryRun: dryRun})
		if err != nil {
			return fmt.Errorf("importing %s: %w", args[0], err)
		}

		if dryRun {
			fmt.Println("Dry run; nothing was written.")
		}
		fmt.Printf("Imported %d people, %d relationships, %d partnerships (batch %s)\n",
			result.People, result.Relationships, result.Partnerships, result.BatchID)
		if result.Skipped > 0 {
			fmt.Printf("Skipped %d duplicate edge(s)\n", result.Skipped)
		}
		for _, importErr := range result.Errors {
			fmt.Printf("  error: %s\n", importErr.Error())
		}
		return nil
	})
}
