package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
)

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <person-id>",
		Short: "Edit a person",
		Long: `Updates fields of an existing person record. Only the flags you
pass are changed.

Examples:
  kindred edit 12 --birth 1851
  kindred edit 12 --given Jim --confidence possible`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("given", "", "Given name")
	cmd.Flags().String("surname", "", "Surname")
	addPersonFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
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

		if err := applyEditFlags(cmd, person); err != nil {
			return err
		}

		if err := d.PersonHandler.HandleEdit(ctx, person); err != nil {
			return fmt.Errorf("updating person: %w", err)
		}

		fmt.Printf("Updated person %d: %s\n", person.ID, person.DisplayName())
		return nil
	})
}

// applyEditFlags overlays the flags that were set onto the stored record.
func applyEditFlags(cmd *cobra.Command, person *entities.Person) error {
	if cmd.Flags().Changed("given") {
		person.GivenName, _ = cmd.Flags().GetString("given")
	}
	if cmd.Flags().Changed("surname") {
		person.Surname, _ = cmd.Flags().GetString("surname")
	}
	if cmd.Flags().Changed("middle") {
		person.MiddleName, _ = cmd.Flags().GetString("middle")
	}
	if cmd.Flags().Changed("maiden") {
		person.MaidenName, _ = cmd.Flags().GetString("maiden")
	}
	if value := intFlag(cmd, "birth"); value != nil {
		person.BirthYear = value
	}
	if value := intFlag(cmd, "death"); value != nil {
		person.DeathYear = value
	}
	if value := intFlag(cmd, "generation"); value != nil {
		person.Generation = value
	}
	if cmd.Flags().Changed("confidence") {
		raw, _ := cmd.Flags().GetString("confidence")
		confidence, err := entities.ParseConfidence(raw)
		if err != nil {
			return err
		}
		person.Confidence = confidence
	}
	return nil
}

// parsePersonID parses a positional person id argument.
func parsePersonID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid person id: %s", arg)
	}
	return id, nil
}
