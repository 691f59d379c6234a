package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
)

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show the audit log",
		Long: `Shows recorded data changes, filtered by person or action.

Examples:
  kindred audit --person 12
  kindred audit --action import --limit 5`,
		RunE: runAudit,
	}

	cmd.Flags().Int64("person", 0, "Show entries for one person")
	cmd.Flags().String("action", "", "Show entries for one action type")
	cmd.Flags().Int("limit", 20, "Maximum entries to show")

	return cmd
}

func runAudit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	personID, _ := cmd.Flags().GetInt64("person")
	action, _ := cmd.Flags().GetString("action")
	limit, _ := cmd.Flags().GetInt("limit")

	if personID == 0 && action == "" {
		return fmt.Errorf("pass --person or --action")
	}

	return withDeps(func(d *Deps) error {
		var entries []entities.AuditEntry
		var err error
		if personID != 0 {
			entries, err = d.AuditHandler.HandleForPerson(ctx, personID)
		} else {
			entries, err = d.AuditHandler.HandleByAction(ctx, action, limit)
		}
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No audit entries found.")
			return nil
		}
		for i := range entries {
			e := &entries[i]
			fmt.Printf("%s  %-16s person=%d %v\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Action, e.PersonID, e.Details)
		}
		return nil
	})
}
