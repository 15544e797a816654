// Command groebner computes Gröbner bases from the command line: the
// cyclic-n benchmark family and ideals described in YAML files. It is an
// external collaborator of the engine — it only constructs polynomial
// inputs and invokes the public algorithms.
package main

import (
	"fmt"
	"os"

	"github.com/Phibonoci/groebner/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "groebner:", err)
		os.Exit(1)
	}
}
