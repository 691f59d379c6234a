package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jkeenum/kindred-core/internal/application/handlers"
	"github.com/jkeenum/kindred-core/internal/domain/ports"
	"github.com/jkeenum/kindred-core/internal/domain/services"
	"github.com/jkeenum/kindred-core/internal/infrastructure/config"
	"github.com/jkeenum/kindred-core/internal/infrastructure/store/sqlite"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and the store are internal.
type Deps struct {
	Config              *config.Config
	PersonHandler       *handlers.PersonHandler
	RelationshipHandler *handlers.RelationshipHandler
	FamilyHandler       *handlers.FamilyHandler
	LineageHandler      *handlers.LineageHandler
	TreeHandler         *handlers.TreeHandler
	SearchHandler       *handlers.SearchHandler
	ImportHandler       *handlers.ImportHandler
	AuditHandler        *handlers.AuditHandler
}

// internalDeps holds all dependencies including low-level components.
type internalDeps struct {
	Deps
	store ports.Store
}

// withDeps loads config and builds dependencies, then calls the provided
// function. It handles cleanup automatically.
func withDeps(fn func(*Deps) error) error {
	return withInternalDeps(func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withInternalDeps provides access to all dependencies including the store.
func withInternalDeps(fn func(*internalDeps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	repo, err := sqlite.NewRepository(cfg.SQLite)
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer repo.Close()

	if err := repo.EnsureSchema(context.Background()); err != nil {
		return fmt.Errorf("ensuring sqlite schema: %w", err)
	}

	personService := services.NewPersonService(repo)
	relationshipService := services.NewRelationshipService(repo)
	familyService := services.NewFamilyService(repo)
	lineageService := services.NewLineageService(repo)
	treeService := services.NewTreeService(repo)
	searchService := services.NewSearchService(repo)
	importService := services.NewImportService(repo)

	deps := &internalDeps{
		Deps: Deps{
			Config:              cfg,
			PersonHandler:       handlers.NewPersonHandler(personService),
			RelationshipHandler: handlers.NewRelationshipHandler(relationshipService, personService),
			FamilyHandler:       handlers.NewFamilyHandler(familyService, personService),
			LineageHandler:      handlers.NewLineageHandler(lineageService, personService, cfg.Lineage.DefaultSurname),
			TreeHandler:         handlers.NewTreeHandler(treeService),
			SearchHandler:       handlers.NewSearchHandler(searchService),
			ImportHandler:       handlers.NewImportHandler(importService),
			AuditHandler:        handlers.NewAuditHandler(repo),
		},
		store: repo,
	}

	return fn(deps)
}
