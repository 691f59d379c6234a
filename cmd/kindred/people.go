package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPeopleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "people",
		Short: "List people",
		Long: `Lists people in the database, optionally filtered by name.

Examples:
  kindred people
  kindred people --surname Keenum
  kindred people --given Mar --surname Hollis`,
		RunE: runPeople,
	}

	cmd.Flags().String("given", "", "Filter by given-name substring")
	cmd.Flags().String("surname", "", "Filter by surname substring")

	return cmd
}

func runPeople(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	given, _ := cmd.Flags().GetString("given")
	surname, _ := cmd.Flags().GetString("surname")

	return withDeps(func(d *Deps) error {
		persons, err := d.PersonHandler.HandleList(ctx, given, surname)
		if err != nil {
			return fmt.Errorf("listing people: %w", err)
		}

		if len(persons) == 0 {
			fmt.Println("No people found.")
			return nil
		}

		for i := range persons {
			fmt.Printf("%4d  %s\n", persons[i].ID, persons[i].DisplayName())
		}
		fmt.Printf("\n%d people\n", len(persons))
		return nil
	})
}
