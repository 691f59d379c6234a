package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSurnamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "surnames",
		Short: "List the surnames in the database",
		RunE:  runSurnames,
	}
}

func runSurnames(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		result, err := d.PersonHandler.HandleSurnames(ctx)
		if err != nil {
			return err
		}

		for _, surname := range result.Surnames {
			fmt.Println(surname)
		}
		fmt.Printf("\n%d surnames, %d people\n", len(result.Surnames), result.Total)
		return nil
	})
}
