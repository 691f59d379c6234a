package entities

import "sort"

// Subgraph is a bounded slice of the family graph: a set of persons plus the
// induced parent-child and partnership edges among them. Built fresh per
// query, never persisted.
type Subgraph struct {
	Persons          []Person          `json:"persons"`
	ParentChildEdges []ParentChildEdge `json:"parent_child_edges"`
	Partnerships     []PartnershipEdge `json:"partnerships"`
}

// PersonIDs returns the ids of all included persons in ascending order.
func (g *Subgraph) PersonIDs() []int64 {
	ids := make([]int64, 0, len(g.Persons))
	for i := range g.Persons {
		ids = append(ids, g.Persons[i].ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Surnames returns the distinct surnames of included persons, sorted.
func (g *Subgraph) Surnames() []string {
	seen := make(map[string]bool, len(g.Persons))
	for i := range g.Persons {
		if s := g.Persons[i].Surname; s != "" {
			seen[s] = true
		}
	}
	surnames := make([]string, 0, len(seen))
	for s := range seen {
		surnames = append(surnames, s)
	}
	sort.Strings(surnames)
	return surnames
}
