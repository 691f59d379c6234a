package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jkeenum/kindred-core/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the genealogy read API over HTTP",
		Long: `Starts the HTTP server exposing search, lineage, family and tree
queries. Stop it with Ctrl-C.

Examples:
  kindred serve
  kindred serve --host 0.0.0.0 --port 9000`,
		RunE: runServe,
	}

	cmd.Flags().String("host", "", "Host to bind (overrides config)")
	cmd.Flags().Int("port", 0, "Port to bind (overrides config)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		if host, _ := cmd.Flags().GetString("host"); host != "" {
			d.Config.Server.Host = host
		}
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			d.Config.Server.Port = port
		}

		srv := server.New(server.Handlers{
			Person:       d.PersonHandler,
			Search:       d.SearchHandler,
			Lineage:      d.LineageHandler,
			Family:       d.FamilyHandler,
			Tree:         d.TreeHandler,
			Relationship: d.RelationshipHandler,
		})

		fmt.Printf("Serving on http://%s\n", d.Config.Server.Addr())
		return srv.Start(ctx, d.Config.Server.Addr())
	})
}
