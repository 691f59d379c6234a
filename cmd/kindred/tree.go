package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jkeenum/kindred-core/internal/domain/services"
)

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Extract a family tree graph",
		Long: `Extracts a bounded family tree graph, laid out by generation.

Examples:
  kindred tree
  kindred tree --root 12 --generations 3 --ancestors=false
  kindred tree --surname Keenum --json`,
		RunE: runTree,
	}

	cmd.Flags().Int64("root", 0, "Root person id (0 selects everyone)")
	cmd.Flags().Int("generations", 0, "Maximum generations from the root (0 is unbounded)")
	cmd.Flags().Bool("ancestors", true, "Include ancestors of the root")
	cmd.Flags().Bool("descendants", true, "Include descendants of the root")
	cmd.Flags().String("surname", "", "Restrict the tree to one surname")
	cmd.Flags().Bool("json", false, "Emit the graph as JSON")

	return cmd
}

func runTree(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rootID, _ := cmd.Flags().GetInt64("root")
	generations, _ := cmd.Flags().GetInt("generations")
	ancestors, _ := cmd.Flags().GetBool("ancestors")
	descendants, _ := cmd.Flags().GetBool("descendants")
	surname, _ := cmd.Flags().GetString("surname")
	asJSON, _ := cmd.Flags().GetBool("json")

	return withDeps(func(d *Deps) error {
		result, err := d.TreeHandler.Handle(ctx, services.BuildOptions{
			RootID:             rootID,
			MaxGenerations:     generations,
			IncludeAncestors:   ancestors,
			IncludeDescendants: descendants,
			SurnameFilter:      surname,
			MaxNodes:           d.Config.Tree.MaxNodes,
		})
		var overBudget *services.OverBudgetError
		if errors.As(err, &overBudget) {
			return fmt.Errorf("tree has %d people, exceeding the limit of %d; narrow it with --root, --generations or --surname",
				overBudget.Count, overBudget.Limit)
		}
		if err != nil {
			return err
		}

		if asJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(result)
		}

		fmt.Printf("Tree: %d people, %d edges, %d surnames\n",
			result.Metadata.TotalPeople, result.Metadata.TotalEdges, len(result.Metadata.Surnames))
		for i := range result.Nodes {
			n := &result.Nodes[i]
			fmt.Printf("%s%4d  %s\n", indent(n.Generation), n.ID, n.DisplayName)
		}
		return nil
	})
}
