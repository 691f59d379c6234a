package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
	"github.com/jkeenum/kindred-core/internal/domain/ports"
)

// AncestorPath is a resolved lineage from the earliest matching root ancestor
// down to the queried person.
type AncestorPath struct {
	Path         entities.LineagePath `json:"path"`
	Relationship string               `json:"relationship"`
	Description  string               `json:"description"`
	Generations  int                  `json:"generations_from_ancestor"`
}

// LineageService resolves ancestor paths through the parent-child relation.
type LineageService struct {
	store ports.Store
}

// NewLineageService creates a new LineageService.
func NewLineageService(store ports.Store) *LineageService {
	return &LineageService{store: store}
}

// FindRootPaths returns every path from a root ancestor (a person with no
// recorded parents) down to the given person. A person with no parents yields
// the single one-element path; an unknown person yields no paths. Cyclic
// parent data terminates the affected branch rather than recursing forever.
func (s *LineageService) FindRootPaths(ctx context.Context, personID int64) ([]entities.LineagePath, error) {
	return s.findPathsToRoot(ctx, personID, make(map[int64]bool))
}

// findPathsToRoot walks upward through parent edges. Each branch receives its
// own copy of the visited set so that the two sides of a diamond pedigree do
// not prune each other; the set only guards against revisiting a person
// within a single branch.
func (s *LineageService) findPathsToRoot(ctx context.Context, personID int64, visited map[int64]bool) ([]entities.LineagePath, error) {
	if visited[personID] {
		return nil, nil
	}
	visited[personID] = true

	person, err := s.store.FindPersonByID(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("finding person %d: %w", personID, err)
	}
	if person == nil {
		return nil, nil
	}

	parents, err := s.parents(ctx, personID)
	if err != nil {
		return nil, err
	}
	if len(parents) == 0 {
		return []entities.LineagePath{{*person}}, nil
	}

	var all []entities.LineagePath
	for i := range parents {
		branchVisited := make(map[int64]bool, len(visited))
		for id := range visited {
			branchVisited[id] = true
		}

		parentPaths, err := s.findPathsToRoot(ctx, parents[i].ID, branchVisited)
		if err != nil {
			return nil, err
		}
		for _, path := range parentPaths {
			extended := make(entities.LineagePath, 0, len(path)+1)
			extended = append(extended, path...)
			extended = append(extended, *person)
			all = append(all, extended)
		}
	}
	return all, nil
}

// parents resolves the parent persons of personID in edge order.
func (s *LineageService) parents(ctx context.Context, personID int64) ([]entities.Person, error) {
	edges, err := s.store.FindParentEdges(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("finding parent edges for %d: %w", personID, err)
	}

	parents := make([]entities.Person, 0, len(edges))
	for i := range edges {
		parent, err := s.store.FindPersonByID(ctx, edges[i].ParentID)
		if err != nil {
			return nil, fmt.Errorf("finding parent %d: %w", edges[i].ParentID, err)
		}
		if parent != nil {
			parents = append(parents, *parent)
		}
	}
	return parents, nil
}

// AncestorPath finds the path from the person to their earliest ancestor
// whose surname contains the given family name (case-insensitive). Among
// matching paths the earliest root wins, ordered by assigned generation
// ascending, then birth year ascending, with missing values sorting last;
// remaining ties go to the lowest root person id. Returns nil when no path
// leads to a matching ancestor.
func (s *LineageService) AncestorPath(ctx context.Context, personID int64, surname string) (*AncestorPath, error) {
	target := strings.ToLower(strings.TrimSpace(surname))
	if target == "" {
		return nil, errors.New("target surname is required")
	}

	paths, err := s.FindRootPaths(ctx, personID)
	if err != nil {
		return nil, err
	}

	var matching []entities.LineagePath
	for _, path := range paths {
		root := path.Root()
		if root != nil && strings.Contains(strings.ToLower(root.Surname), target) {
			matching = append(matching, path)
		}
	}
	if len(matching) == 0 {
		return nil, nil
	}

	best := matching[0]
	for _, candidate := range matching[1:] {
		if earlierRoot(candidate.Root(), best.Root()) {
			best = candidate
		}
	}

	generations := best.Generations()
	relationship := entities.DescribeRelationship(generations)

	subject := best.Subject()
	root := best.Root()
	var description string
	if generations == 0 {
		description = fmt.Sprintf("%s is a root ancestor", subject.FullName())
	} else {
		description = fmt.Sprintf("%s is the %s of %s", subject.FullName(), relationship, root.FullName())
	}

	return &AncestorPath{
		Path:         best,
		Relationship: relationship,
		Description:  description,
		Generations:  generations,
	}, nil
}

// earlierRoot orders root ancestors by (generation, birth year, id) ascending
// with missing values treated as +infinity.
func earlierRoot(a, b *entities.Person) bool {
	ag, bg := yearOrInf(a.Generation), yearOrInf(b.Generation)
	if ag != bg {
		return ag < bg
	}
	ab, bb := yearOrInf(a.BirthYear), yearOrInf(b.BirthYear)
	if ab != bb {
		return ab < bb
	}
	return a.ID < b.ID
}

func yearOrInf(v *int) int {
	if v == nil {
		return math.MaxInt
	}
	return *v
}
