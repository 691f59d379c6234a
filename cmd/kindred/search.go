package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search people by name",
		Long: `Searches people by name and ranks matches by relevance.

Examples:
  kindred search mary
  kindred search "Mary Keenum"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSearch,
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	term := strings.Join(args, " ")

	return withDeps(func(d *Deps) error {
		result, err := d.SearchHandler.Handle(ctx, term)
		if err != nil {
			return err
		}

		if result.Count == 0 {
			fmt.Printf("No matches for %q.\n", result.Query)
			return nil
		}

		fmt.Printf("Found %d match(es) for %q:\n", result.Count, result.Query)
		for i := range result.Results {
			r := &result.Results[i]
			fmt.Printf("%4d  %s\n", r.Person.ID, r.DisplayName)
		}
		return nil
	})
}
