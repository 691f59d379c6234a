// kindred-lint is a custom static analyzer for kindred-core conventions.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/jkeenum/kindred-core/tools/kindred-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
