// Package cli wires the groebner command tree. Every subcommand builds
// polynomial inputs, invokes the public engine algorithms and prints the
// resulting basis; no computation lives here.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ValidOrders lists the monomial orders selectable from the command line.
// RevLex is deliberately absent: it is not a well-order, so a reduction
// driven by it need not terminate.
var ValidOrders = []string{"lex", "grlex", "grevlex"}

// NewRootCommand creates the root command for the groebner CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "groebner",
		Short:         "Gröbner basis computation over the rationals",
		Long:          "Computes reduced Gröbner bases of polynomial ideals over exact rationals using Buchberger's algorithm.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewCyclicCommand())
	cmd.AddCommand(NewBasisCommand())

	return cmd
}

func isValidOrder(name string) bool {
	for _, o := range ValidOrders {
		if o == name {
			return true
		}
	}

	return false
}

func validateOrder(name string) error {
	if !isValidOrder(name) {
		return fmt.Errorf("invalid order %q: must be one of %v", name, ValidOrders)
	}

	return nil
}
