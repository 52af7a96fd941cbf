// Package nospin implements a custom analyzer forbidding busy-wait loops.
package nospin

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
)

// Analyzer reports for-statements with an empty body. The probe must
// keep CPU usage near zero between ticks; the suspension has to block
// on a timer or channel, never spin.
var Analyzer = &analysis.Analyzer{
	Name: "nospin",
	Doc:  "forbid empty busy-wait for loops",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	for _, f := range pass.Files {
		ast.Inspect(f, func(n ast.Node) bool {
			fs, ok := n.(*ast.ForStmt)
			if !ok {
				return true
			}
			if fs.Body != nil && len(fs.Body.List) == 0 {
				pass.Reportf(fs.Pos(), "empty for loop spins a CPU core; block on a timer or channel instead")
			}
			return true
		})
	}
	return nil, nil
}
