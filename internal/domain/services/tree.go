package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
	"github.com/jkeenum/kindred-core/internal/domain/ports"
)

// DefaultMaxNodes caps subgraph size when BuildOptions.MaxNodes is zero.
const DefaultMaxNodes = 200

// OverBudgetError signals that a subgraph exceeded the node budget. The
// extractor never truncates membership instead, since an arbitrarily cut
// tree would be structurally misleading; callers should narrow the query.
type OverBudgetError struct {
	Count int
	Limit int
}

func (e *OverBudgetError) Error() string {
	return fmt.Sprintf("subgraph has %d nodes, exceeding the limit of %d; narrow the query by root person, generations or surname", e.Count, e.Limit)
}

// BuildOptions controls subgraph extraction.
type BuildOptions struct {
	// RootID is the starting person; 0 selects every person in the store.
	RootID int64
	// MaxGenerations bounds the expansion distance; 0 means unbounded.
	MaxGenerations int
	// IncludeAncestors expands upward through parent edges.
	IncludeAncestors bool
	// IncludeDescendants expands downward through child edges.
	IncludeDescendants bool
	// SurnameFilter restricts the node set to an exact surname match.
	SurnameFilter string
	// MaxNodes overrides DefaultMaxNodes when positive.
	MaxNodes int
}

// TreeService extracts bounded family subgraphs for visualization.
type TreeService struct {
	store ports.Store
}

// NewTreeService creates a new TreeService.
func NewTreeService(store ports.Store) *TreeService {
	return &TreeService{store: store}
}

// Descendants returns the ids of every person reachable downward from
// personID within maxGenerations levels (0 = unbounded). The person itself
// is not included. Already-visited ids are never re-expanded, so the
// traversal terminates even on cyclic edge data.
func (s *TreeService) Descendants(ctx context.Context, personID int64, maxGenerations int) (map[int64]bool, error) {
	return s.expand(ctx, personID, maxGenerations, s.childIDs)
}

// Ancestors returns the ids of every person reachable upward from personID
// within maxGenerations levels (0 = unbounded), excluding the person itself.
func (s *TreeService) Ancestors(ctx context.Context, personID int64, maxGenerations int) (map[int64]bool, error) {
	return s.expand(ctx, personID, maxGenerations, s.parentIDs)
}

// expand performs iterative level-by-level frontier expansion.
func (s *TreeService) expand(
	ctx context.Context,
	personID int64,
	maxGenerations int,
	next func(context.Context, []int64) ([]int64, error),
) (map[int64]bool, error) {
	if maxGenerations < 0 {
		return nil, fmt.Errorf("max generations must not be negative: %d", maxGenerations)
	}

	reached := make(map[int64]bool)
	visited := map[int64]bool{personID: true}
	frontier := []int64{personID}

	for level := 0; len(frontier) > 0 && (maxGenerations == 0 || level < maxGenerations); level++ {
		ids, err := next(ctx, frontier)
		if err != nil {
			return nil, err
		}

		frontier = frontier[:0]
		for _, id := range ids {
			if visited[id] {
				continue
			}
			visited[id] = true
			reached[id] = true
			frontier = append(frontier, id)
		}
	}
	return reached, nil
}

func (s *TreeService) childIDs(ctx context.Context, parentIDs []int64) ([]int64, error) {
	edges, err := s.store.FindChildEdgesOf(ctx, parentIDs)
	if err != nil {
		return nil, fmt.Errorf("finding child edges: %w", err)
	}
	ids := make([]int64, 0, len(edges))
	for i := range edges {
		ids = append(ids, edges[i].ChildID)
	}
	return ids, nil
}

func (s *TreeService) parentIDs(ctx context.Context, childIDs []int64) ([]int64, error) {
	edges, err := s.store.FindParentEdgesOf(ctx, childIDs)
	if err != nil {
		return nil, fmt.Errorf("finding parent edges: %w", err)
	}
	ids := make([]int64, 0, len(edges))
	for i := range edges {
		ids = append(ids, edges[i].ParentID)
	}
	return ids, nil
}

// Build extracts the induced subgraph around the root: the parent-child
// expansion in the requested directions, plus every partner of every included
// person (one pass, partners are not re-expanded), filtered by surname,
// bounded by the node budget. An unknown root yields an empty subgraph.
func (s *TreeService) Build(ctx context.Context, opts BuildOptions) (*entities.Subgraph, error) {
	if opts.MaxGenerations < 0 {
		return nil, fmt.Errorf("max generations must not be negative: %d", opts.MaxGenerations)
	}
	maxNodes := opts.MaxNodes
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}

	included := make(map[int64]bool)
	if opts.RootID != 0 {
		included[opts.RootID] = true
		if opts.IncludeDescendants {
			descendants, err := s.Descendants(ctx, opts.RootID, opts.MaxGenerations)
			if err != nil {
				return nil, err
			}
			for id := range descendants {
				included[id] = true
			}
		}
		if opts.IncludeAncestors {
			ancestors, err := s.Ancestors(ctx, opts.RootID, opts.MaxGenerations)
			if err != nil {
				return nil, err
			}
			for id := range ancestors {
				included[id] = true
			}
		}
	} else {
		persons, err := s.store.ListPersons(ctx, "", "")
		if err != nil {
			return nil, fmt.Errorf("listing persons: %w", err)
		}
		for i := range persons {
			included[persons[i].ID] = true
		}
	}

	// Single partner pass: partners of included persons join the set, but
	// their own relatives are not pulled in.
	partnerships, err := s.store.FindPartnershipsTouching(ctx, sortedIDs(included))
	if err != nil {
		return nil, fmt.Errorf("finding partnerships: %w", err)
	}
	for i := range partnerships {
		e := &partnerships[i]
		if included[e.Person1ID] {
			included[e.Person2ID] = true
		}
		if included[e.Person2ID] {
			included[e.Person1ID] = true
		}
	}

	persons, err := s.store.FindPersonsByIDs(ctx, sortedIDs(included))
	if err != nil {
		return nil, fmt.Errorf("loading persons: %w", err)
	}

	if opts.SurnameFilter != "" {
		filtered := persons[:0]
		for i := range persons {
			if persons[i].Surname == opts.SurnameFilter {
				filtered = append(filtered, persons[i])
			}
		}
		persons = filtered
	}

	if len(persons) > maxNodes {
		return nil, &OverBudgetError{Count: len(persons), Limit: maxNodes}
	}

	sort.Slice(persons, func(i, j int) bool { return persons[i].ID < persons[j].ID })

	finalIDs := make([]int64, 0, len(persons))
	for i := range persons {
		finalIDs = append(finalIDs, persons[i].ID)
	}

	parentChild, err := s.store.FindParentChildAmong(ctx, finalIDs)
	if err != nil {
		return nil, fmt.Errorf("loading parent-child edges: %w", err)
	}
	partners, err := s.store.FindPartnershipsAmong(ctx, finalIDs)
	if err != nil {
		return nil, fmt.Errorf("loading partnership edges: %w", err)
	}

	return &entities.Subgraph{
		Persons:          persons,
		ParentChildEdges: parentChild,
		Partnerships:     partners,
	}, nil
}

// ComputeGenerations assigns a layout generation to every node in the
// subgraph: 0 for roots (no parent edge within the subgraph), k+1 for a
// person first reached from a generation-k person. Persons unreachable from
// any root default to 0 rather than being dropped. This layout number is
// independent of the operator-assigned Person.Generation.
func (s *TreeService) ComputeGenerations(graph *entities.Subgraph) map[int64]int {
	generations := make(map[int64]int, len(graph.Persons))
	if len(graph.Persons) == 0 {
		return generations
	}

	ids := graph.PersonIDs()

	inDegree := make(map[int64]int, len(ids))
	children := make(map[int64][]int64)
	for i := range graph.ParentChildEdges {
		e := &graph.ParentChildEdges[i]
		inDegree[e.ChildID]++
		children[e.ParentID] = append(children[e.ParentID], e.ChildID)
	}

	var roots []int64
	for _, id := range ids {
		if inDegree[id] == 0 {
			roots = append(roots, id)
		}
	}
	if len(roots) == 0 {
		// Fully cyclic component: start from the lowest id.
		roots = []int64{ids[0]}
	}

	type queued struct {
		id  int64
		gen int
	}
	queue := make([]queued, 0, len(roots))
	for _, id := range roots {
		queue = append(queue, queued{id: id, gen: 0})
	}

	visited := make(map[int64]bool, len(ids))
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if visited[item.id] {
			continue
		}
		visited[item.id] = true
		generations[item.id] = item.gen

		for _, child := range children[item.id] {
			if !visited[child] {
				queue = append(queue, queued{id: child, gen: item.gen + 1})
			}
		}
	}

	for _, id := range ids {
		if !visited[id] {
			generations[id] = 0
		}
	}
	return generations
}

func sortedIDs(set map[int64]bool) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
