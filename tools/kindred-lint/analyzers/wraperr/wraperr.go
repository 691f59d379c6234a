// Package wraperr detects fmt.Errorf calls that format an error value
// without wrapping it via %w.
package wraperr

import (
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer detects fmt.Errorf calls that pass an err argument but use a
// format string without a %w verb, which breaks errors.Is/As chains.
var Analyzer = &analysis.Analyzer{
	Name:     "wraperr",
	Doc:      "detects fmt.Errorf with an error argument but no %w verb",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		call, ok := n.(*ast.CallExpr)
		if !ok || !isErrorf(call) || len(call.Args) < 2 {
			return
		}

		format, ok := stringLiteral(call.Args[0])
		if !ok || strings.Contains(format, "%w") {
			return
		}

		for _, arg := range call.Args[1:] {
			if ident, ok := arg.(*ast.Ident); ok && ident.Name == "err" {
				pass.Reportf(call.Pos(), "fmt.Errorf formats err without %%w - wrap it so errors.Is/As keep working")
				return
			}
		}
	})

	return nil, nil
}

func isErrorf(call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Errorf" {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == "fmt"
}

func stringLiteral(expr ast.Expr) (string, bool) {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}
	return lit.Value, true
}
