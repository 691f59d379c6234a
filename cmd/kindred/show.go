package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <person-id>",
		Short: "Show a person's details",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := parsePersonID(args[0])
	if err != nil {
		return err
	}

	return withDeps(func(d *Deps) error {
		person, err := d.PersonHandler.HandleShow(ctx, id)
		if err != nil {
			return err
		}

		fmt.Printf("Person %d\n", person.ID)
		fmt.Printf("  Name:       %s\n", person.FullName())
		if person.MaidenName != "" {
			fmt.Printf("  Maiden:     %s\n", person.MaidenName)
		}
		if dates := person.DateString(); dates != "" {
			fmt.Printf("  Dates:      %s\n", dates)
		}
		if person.Generation != nil {
			fmt.Printf("  Generation: %d\n", *person.Generation)
		}
		fmt.Printf("  Confidence: %s\n", person.Confidence)

		edges, err := d.RelationshipHandler.HandleEdges(ctx, id)
		if err != nil {
			return fmt.Errorf("listing relationships: %w", err)
		}
		if len(edges) > 0 {
			fmt.Println("  Relationships:")
			for i := range edges {
				e := &edges[i]
				fmt.Printf("    %s -> %s (%s, %s)\n", e.Parent, e.Child, e.Edge.Type, e.Edge.Confidence)
			}
		}
		return nil
	})
}
