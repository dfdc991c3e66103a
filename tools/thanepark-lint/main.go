// thanepark-lint checks the park command and storage conventions.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/ersonp/thanepark/tools/thanepark-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
