package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jkeenum/kindred-core/internal/infrastructure/config"
	"github.com/jkeenum/kindred-core/internal/infrastructure/store/sqlite"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new kindred database",
		Long:  "Creates a .kindred directory with default configuration and an empty SQLite database.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if config.Exists(cwd) {
		return fmt.Errorf("kindred already initialized in %s", cwd)
	}

	if err := config.WriteDefault(cwd); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}

	fmt.Printf("Created %s\n", config.ConfigFilePath(cwd))

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	repo, err := sqlite.NewRepository(cfg.SQLite)
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer repo.Close()

	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	fmt.Printf("Created database: %s\n", cfg.SQLite.Path)
	fmt.Println("Kindred initialized successfully!")

	return nil
}
