// Package analyzers provides all custom static analyzers for thanepark.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/ersonp/thanepark/tools/thanepark-lint/analyzers/commitcheck"
	"github.com/ersonp/thanepark/tools/thanepark-lint/analyzers/storeloop"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		commitcheck.Analyzer,
		storeloop.Analyzer,
	}
}
