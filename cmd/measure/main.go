// Command measure converts values between units and computes great-circle
// distances.
//
// Units come from the quantity package, or from a catalog file given with
// --catalog. Every flag can also be set through a MEASURE_ environment
// variable, e.g. MEASURE_CATALOG=./units.yaml or MEASURE_LOG_LEVEL=debug.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
