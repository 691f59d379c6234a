// Package rowserr detects row-iteration loops that never check rows.Err().
package rowserr

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer detects functions that iterate sql rows with Next() but never
// call Err() on the same receiver.
var Analyzer = &analysis.Analyzer{
	Name:     "rowserr",
	Doc:      "detects rows.Next() loops without a rows.Err() check",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		fn, ok := n.(*ast.FuncDecl)
		if !ok || fn.Body == nil {
			return
		}

		iterated := findNextLoops(fn.Body)
		if len(iterated) == 0 {
			return
		}

		checked := findErrCalls(fn.Body)
		for receiver, pos := range iterated {
			if !checked[receiver] {
				pass.Reportf(pos, "%s.Next() loop without %s.Err() check", receiver, receiver)
			}
		}
	})

	return nil, nil
}

// findNextLoops returns the receivers iterated via a for loop conditioned on
// X.Next(), keyed by receiver name with the first loop position.
func findNextLoops(body *ast.BlockStmt) map[string]token.Pos {
	loops := make(map[string]token.Pos)
	ast.Inspect(body, func(n ast.Node) bool {
		forStmt, ok := n.(*ast.ForStmt)
		if !ok || forStmt.Cond == nil {
			return true
		}
		if receiver := methodReceiver(forStmt.Cond, "Next"); receiver != "" {
			if _, seen := loops[receiver]; !seen {
				loops[receiver] = forStmt.Pos()
			}
		}
		return true
	})
	return loops
}

// findErrCalls returns the receivers on which Err() is called.
func findErrCalls(body *ast.BlockStmt) map[string]bool {
	checked := make(map[string]bool)
	ast.Inspect(body, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		if receiver := methodReceiver(call, "Err"); receiver != "" {
			checked[receiver] = true
		}
		return true
	})
	return checked
}

// methodReceiver returns the identifier a zero-argument method call of the
// given name is invoked on, or "".
func methodReceiver(expr ast.Expr, method string) string {
	call, ok := expr.(*ast.CallExpr)
	if !ok || len(call.Args) != 0 {
		return ""
	}
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != method {
		return ""
	}
	ident, ok := sel.X.(*ast.Ident)
	if !ok {
		return ""
	}
	return ident.Name
}
