package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <given-name> <surname>",
		Short: "Add a person",
		Long: `Adds a person record to the database.

Examples:
  kindred add James Keenum --birth 1850 --death 1920
  kindred add Mary Keenum --middle Elizabeth --maiden Hollis --confidence confirmed`,
		Args: cobra.ExactArgs(2),
		RunE: runAdd,
	}

	addPersonFlags(cmd)

	return cmd
}

func addPersonFlags(cmd *cobra.Command) {
	cmd.Flags().String("middle", "", "Middle name")
	cmd.Flags().String("maiden", "", "Maiden name")
	cmd.Flags().Int("birth", 0, "Birth year")
	cmd.Flags().Int("death", 0, "Death year")
	cmd.Flags().Int("generation", 0, "Chart generation number")
	cmd.Flags().String("confidence", "", "Confidence level (confirmed, likely, possible, uncertain)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	person, err := personFromFlags(cmd, args[0], args[1])
	if err != nil {
		return err
	}

	return withDeps(func(d *Deps) error {
		added, err := d.PersonHandler.HandleAdd(ctx, person)
		if err != nil {
			return fmt.Errorf("adding person: %w", err)
		}

		fmt.Printf("Added person %d: %s\n", added.ID, added.DisplayName())
		return nil
	})
}

// personFromFlags builds a person from the shared add/edit flag set.
func personFromFlags(cmd *cobra.Command, given, surname string) (*entities.Person, error) {
	middle, _ := cmd.Flags().GetString("middle")
	maiden, _ := cmd.Flags().GetString("maiden")

	person := &entities.Person{
		GivenName:  given,
		MiddleName: middle,
		Surname:    surname,
		MaidenName: maiden,
		BirthYear:  intFlag(cmd, "birth"),
		DeathYear:  intFlag(cmd, "death"),
		Generation: intFlag(cmd, "generation"),
	}

	if confidence, _ := cmd.Flags().GetString("confidence"); confidence != "" {
		parsed, err := entities.ParseConfidence(confidence)
		if err != nil {
			return nil, err
		}
		person.Confidence = parsed
	}

	return person, nil
}

// intFlag returns the flag value as a pointer, or nil when the flag was not
// set.
func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, _ := cmd.Flags().GetInt(name)
	return &value
}
