// Package commitcheck detects model mutations that are never committed.
package commitcheck

import (
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer reports functions that mutate the ride model without calling
// Commit, which leaves the change out of the undo history.
var Analyzer = &analysis.Analyzer{
	Name:     "commitcheck",
	Doc:      "detects ride model mutations in functions that never call Commit",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// mutators are the model methods whose effect must be committed.
var mutators = map[string]bool{
	"AddRide":    true,
	"DeleteRide": true,
	"UpdateRide": true,
	"ResetData":  true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		fn := n.(*ast.FuncDecl)
		if fn.Body == nil || isTestFile(pass, fn) {
			return
		}

		var first *ast.CallExpr
		var firstName string
		committed := false

		ast.Inspect(fn.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}

			switch name := sel.Sel.Name; {
			case name == "Commit":
				committed = true
			case mutators[name] && first == nil:
				first = call
				firstName = name
			}
			return true
		})

		if first != nil && !committed {
			pass.Reportf(first.Pos(),
				"%s without Commit in %s - the change is lost on the next undo",
				firstName, fn.Name.Name)
		}
	})

	return nil, nil
}

func isTestFile(pass *analysis.Pass, n ast.Node) bool {
	return strings.HasSuffix(pass.Fset.Position(n.Pos()).Filename, "_test.go")
}
