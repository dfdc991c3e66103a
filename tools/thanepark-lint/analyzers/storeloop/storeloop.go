// Package storeloop detects ride storage calls inside loops.
package storeloop

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer detects storage calls inside loops. SaveRides rewrites the whole
// ride table, so it belongs after the loop.
var Analyzer = &analysis.Analyzer{
	Name:     "storeloop",
	Doc:      "detects ride storage calls inside loops that should run once",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// storageMethods are the ports.Store methods that hit the database.
var storageMethods = map[string]bool{
	"LoadRides":    true,
	"SaveRides":    true,
	"ListCommands": true,
	"EnsureSchema": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.RangeStmt)(nil),
		(*ast.ForStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		var body *ast.BlockStmt
		switch stmt := n.(type) {
		case *ast.RangeStmt:
			body = stmt.Body
		case *ast.ForStmt:
			body = stmt.Body
		}
		if body == nil {
			return
		}

		ast.Inspect(body, func(n ast.Node) bool {
			// Loops nested in this one are reported by their own visit.
			switch n.(type) {
			case *ast.RangeStmt, *ast.ForStmt:
				return false
			}

			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}

			if storageMethods[sel.Sel.Name] {
				pass.Reportf(call.Pos(),
					"%s called inside loop - call it once after the loop",
					sel.Sel.Name)
			}
			return true
		})
	})

	return nil, nil
}
