package entities

import "strings"

// LineagePath is an ordered chain of persons from a root ancestor (index 0)
// down to a subject person (last index), where each consecutive pair is
// linked by a parent-child edge. A path never repeats a person id.
type LineagePath []Person

// Root returns the root ancestor of the path, or nil for an empty path.
func (p LineagePath) Root() *Person {
	if len(p) == 0 {
		return nil
	}
	return &p[0]
}

// Subject returns the person the path was computed for, or nil for an empty
// path.
func (p LineagePath) Subject() *Person {
	if len(p) == 0 {
		return nil
	}
	return &p[len(p)-1]
}

// Generations is the number of parent-child steps in the path.
func (p LineagePath) Generations() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// DescribeRelationship names the subject's relationship to the root ancestor
// given the number of generations between them: 0 is "self", 1 "child",
// 2 "grandchild", 3 "great-grandchild", and beyond that one extra "great-"
// per generation.
func DescribeRelationship(generations int) string {
	switch {
	case generations <= 0:
		return "self"
	case generations == 1:
		return "child"
	case generations == 2:
		return "grandchild"
	default:
		return strings.Repeat("great-", generations-2) + "grandchild"
	}
}
