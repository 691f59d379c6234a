package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
)

func newFamilyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "family <person-id>",
		Short: "Show a person's direct family",
		Long:  "Shows a person's parents, siblings, spouses and children.",
		Args:  cobra.ExactArgs(1),
		RunE:  runFamily,
	}
}

func runFamily(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := parsePersonID(args[0])
	if err != nil {
		return err
	}

	return withDeps(func(d *Deps) error {
		result, err := d.FamilyHandler.Handle(ctx, id)
		if err != nil {
			return err
		}

		fmt.Printf("Family of %s\n", result.Person.DisplayName())
		printPersonGroup("Parents", result.Parents)
		printPersonGroup("Siblings", result.Siblings)

		fmt.Println("Spouses:")
		if len(result.Spouses) == 0 {
			fmt.Println("  (none)")
		}
		for i := range result.Spouses {
			s := &result.Spouses[i]
			fmt.Printf("  %4d  %s (%s)\n", s.Person.ID, s.Person.DisplayName(), s.Details)
		}

		printPersonGroup("Children", result.Children)
		return nil
	})
}

func printPersonGroup(label string, persons []entities.Person) {
	fmt.Printf("%s:\n", label)
	if len(persons) == 0 {
		fmt.Println("  (none)")
		return
	}
	for i := range persons {
		fmt.Printf("  %4d  %s\n", persons[i].ID, persons[i].DisplayName())
	}
}
