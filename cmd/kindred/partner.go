package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jkeenum/kindred-core/internal/application/handlers"
)

func newPartnerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partner <person-id> <person-id>",
		Short: "Record a partnership",
		Long: `Records a marriage or partnership between two people.

Examples:
  kindred partner 1 2 --start 1870
  kindred partner 1 4 --type partnership --start 1925 --sequence 2`,
		Args: cobra.ExactArgs(2),
		RunE: runPartner,
	}

	cmd.Flags().String("type", "", "Partnership type (marriage, partnership)")
	cmd.Flags().Int("start", 0, "Start year")
	cmd.Flags().Int("end", 0, "End year")
	cmd.Flags().Int("sequence", 0, "Sequence number (1st marriage, 2nd marriage, ...)")
	cmd.Flags().String("confidence", "", "Confidence level (confirmed, likely, possible, uncertain)")

	return cmd
}

func runPartner(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	person1ID, err := parsePersonID(args[0])
	if err != nil {
		return err
	}
	person2ID, err := parsePersonID(args[1])
	if err != nil {
		return err
	}

	ptype, _ := cmd.Flags().GetString("type")
	confidence, _ := cmd.Flags().GetString("confidence")
	opts := handlers.PartnerOptions{
		Type:           ptype,
		StartYear:      intFlag(cmd, "start"),
		EndYear:        intFlag(cmd, "end"),
		SequenceNumber: intFlag(cmd, "sequence"),
		Confidence:     confidence,
	}

	return withDeps(func(d *Deps) error {
		edge, err := d.RelationshipHandler.HandlePartner(ctx, person1ID, person2ID, opts)
		if err != nil {
			return fmt.Errorf("recording partnership: %w", err)
		}

		fmt.Printf("Recorded %s: %d and %d\n", edge.Type, edge.Person1ID, edge.Person2ID)
		return nil
	})
}
