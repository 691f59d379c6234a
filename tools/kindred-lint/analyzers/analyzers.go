// Package analyzers provides all custom static analyzers for kindred-core.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/jkeenum/kindred-core/tools/kindred-lint/analyzers/rowserr"
	"github.com/jkeenum/kindred-core/tools/kindred-lint/analyzers/wraperr"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		rowserr.Analyzer,
		wraperr.Analyzer,
	}
}
