// Package noexit запрещает завершать процесс прямо из main.main.
//
// Вызовы os.Exit и log.Fatal* в функции main пакета main обрывают программу
// без отложенных вызовов, поэтому main должен вернуть управление или передать
// ошибку логеру.
package noexit

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

var Analyzer = &analysis.Analyzer{
	Name:     "noexit",
	Doc:      "проверка прямых вызовов os.Exit и log.Fatal в функции main пакета main",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// forbidden возвращает true для os.Exit и log.Fatal, log.Fatalf, log.Fatalln.
func forbidden(pkgPath, name string) bool {
	switch pkgPath {
	case "os":
		return name == "Exit"
	case "log":
		return strings.HasPrefix(name, "Fatal")
	}
	return false
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
	}

	insp.Preorder(nodeFilter, func(node ast.Node) {
		fd := node.(*ast.FuncDecl)
		if fd.Recv != nil || fd.Name.Name != "main" || fd.Body == nil {
			return
		}

		ast.Inspect(fd.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}

			ident, ok := sel.X.(*ast.Ident)
			if !ok {
				return true
			}

			pkg, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
			if !ok {
				return true
			}

			path := pkg.Imported().Path()
			if forbidden(path, sel.Sel.Name) {
				pass.Reportf(call.Pos(), "прямой вызов %s.%s в функции main запрещен", path, sel.Sel.Name)
			}
			return true
		})
	})

	return nil, nil
}
