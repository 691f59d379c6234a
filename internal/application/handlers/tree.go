package handlers

import (
	"context"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
	"github.com/jkeenum/kindred-core/internal/domain/services"
)

// TreeHandler handles subgraph extraction for visualization.
type TreeHandler struct {
	treeService *services.TreeService
}

// NewTreeHandler creates a new tree handler.
func NewTreeHandler(treeService *services.TreeService) *TreeHandler {
	return &TreeHandler{
		treeService: treeService,
	}
}

// TreeNode is a person prepared for rendering, with its layout generation.
type TreeNode struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Surname     string `json:"surname"`
	BirthYear   *int   `json:"birth_year"`
	DeathYear   *int   `json:"death_year"`
	Generation  int    `json:"generation"`
}

// TreeEdge is a rendered graph edge. Kind is "parent-child" or "partnership".
type TreeEdge struct {
	Source  int64  `json:"source"`
	Target  int64  `json:"target"`
	Kind    string `json:"kind"`
	Type    string `json:"type"`
	Details string `json:"details,omitempty"`
}

// TreeMetadata summarizes the extracted subgraph.
type TreeMetadata struct {
	TotalPeople int      `json:"total_people"`
	TotalEdges  int      `json:"total_edges"`
	MaxDepth    int      `json:"max_depth"`
	Surnames    []string `json:"surnames"`
}

// TreeResult is the complete graph payload.
type TreeResult struct {
	Nodes    []TreeNode   `json:"nodes"`
	Edges    []TreeEdge   `json:"edges"`
	Metadata TreeMetadata `json:"metadata"`
}

// Handle extracts the bounded subgraph and lays it out by generation.
func (h *TreeHandler) Handle(ctx context.Context, opts services.BuildOptions) (*TreeResult, error) {
	graph, err := h.treeService.Build(ctx, opts)
	if err != nil {
		return nil, err
	}

	generations := h.treeService.ComputeGenerations(graph)
	maxDepth := 0
	for _, generation := range generations {
		if generation > maxDepth {
			maxDepth = generation
		}
	}

	nodes := make([]TreeNode, 0, len(graph.Persons))
	for i := range graph.Persons {
		p := &graph.Persons[i]
		nodes = append(nodes, TreeNode{
			ID:          p.ID,
			Name:        p.FullName(),
			DisplayName: p.DisplayName(),
			Surname:     p.Surname,
			BirthYear:   p.BirthYear,
			DeathYear:   p.DeathYear,
			Generation:  generations[p.ID],
		})
	}

	edges := make([]TreeEdge, 0, len(graph.ParentChildEdges)+len(graph.Partnerships))
	for i := range graph.ParentChildEdges {
		e := &graph.ParentChildEdges[i]
		edges = append(edges, TreeEdge{
			Source: e.ParentID,
			Target: e.ChildID,
			Kind:   "parent-child",
			Type:   string(e.Type),
		})
	}
	for i := range graph.Partnerships {
		e := &graph.Partnerships[i]
		edges = append(edges, TreeEdge{
			Source:  e.Person1ID,
			Target:  e.Person2ID,
			Kind:    "partnership",
			Type:    string(e.Type),
			Details: describePartnership(e),
		})
	}

	return &TreeResult{
		Nodes: nodes,
		Edges: edges,
		Metadata: TreeMetadata{
			TotalPeople: len(nodes),
			TotalEdges:  len(edges),
			MaxDepth:    maxDepth,
			Surnames:    graph.Surnames(),
		},
	}, nil
}

// Subgraph returns the raw subgraph without layout, for callers that need
// the underlying entities.
func (h *TreeHandler) Subgraph(ctx context.Context, opts services.BuildOptions) (*entities.Subgraph, error) {
	return h.treeService.Build(ctx, opts)
}
