package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRelateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relate <parent-id> <child-id>",
		Short: "Record a parent-child relationship",
		Long: `Records a parent-child relationship between two people.

Examples:
  kindred relate 1 3
  kindred relate 2 3 --type adoptive --confidence possible`,
		Args: cobra.ExactArgs(2),
		RunE: runRelate,
	}

	cmd.Flags().String("type", "", "Relationship type (biological, adoptive, step)")
	cmd.Flags().String("confidence", "", "Confidence level (confirmed, likely, possible, uncertain)")

	return cmd
}

func runRelate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	parentID, err := parsePersonID(args[0])
	if err != nil {
		return err
	}
	childID, err := parsePersonID(args[1])
	if err != nil {
		return err
	}

	relType, _ := cmd.Flags().GetString("type")
	confidence, _ := cmd.Flags().GetString("confidence")

	return withDeps(func(d *Deps) error {
		edge, err := d.RelationshipHandler.HandleRelate(ctx, parentID, childID, relType, confidence)
		if err != nil {
			return fmt.Errorf("relating persons: %w", err)
		}

		fmt.Printf("Recorded %s parent-child relationship: %d -> %d\n", edge.Type, edge.ParentID, edge.ChildID)
		return nil
	})
}
