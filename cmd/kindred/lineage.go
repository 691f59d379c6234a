package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLineageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lineage <person-id>",
		Short: "Trace a person's ancestry to the family's earliest ancestor",
		Long: `Traces a person's ancestry up to the earliest known ancestor of a
family, showing the path and the derived relationship.

Examples:
  kindred lineage 12 --surname Keenum
  kindred lineage 12 --all`,
		Args: cobra.ExactArgs(1),
		RunE: runLineage,
	}

	cmd.Flags().String("surname", "", "Family to trace toward (defaults to the configured family)")
	cmd.Flags().Bool("all", false, "Show every root path instead of a single family line")

	return cmd
}

func runLineage(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := parsePersonID(args[0])
	if err != nil {
		return err
	}

	surname, _ := cmd.Flags().GetString("surname")
	showAll, _ := cmd.Flags().GetBool("all")

	return withDeps(func(d *Deps) error {
		if showAll {
			paths, err := d.LineageHandler.HandleRootPaths(ctx, id)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				fmt.Println("No ancestry recorded.")
				return nil
			}
			for i, path := range paths {
				fmt.Printf("Path %d (%d generations):\n", i+1, path.Generations())
				for j := range path {
					fmt.Printf("  %s%s\n", indent(j), path[j].DisplayName())
				}
			}
			return nil
		}

		result, err := d.LineageHandler.Handle(ctx, id, surname)
		if err != nil {
			return err
		}
		if result.Path == nil {
			fmt.Printf("No %s ancestry found for %s.\n", result.Surname, result.Person.DisplayName())
			return nil
		}

		fmt.Println(result.Path.Description)
		fmt.Println()
		for i := range result.Path.Path {
			fmt.Printf("%s%s\n", indent(i), result.Path.Path[i].DisplayName())
		}
		return nil
	})
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
