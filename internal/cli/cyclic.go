package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Phibonoci/groebner/buchberger"
	"github.com/Phibonoci/groebner/cyclic"
	"github.com/Phibonoci/groebner/order"
	"github.com/Phibonoci/groebner/rational"
)

// CyclicOptions holds the flags of the cyclic subcommand.
type CyclicOptions struct {
	Vars  int
	Order string
	Quiet bool
}

// NewCyclicCommand creates the cyclic-n benchmark command.
func NewCyclicCommand() *cobra.Command {
	opts := &CyclicOptions{}

	cmd := &cobra.Command{
		Use:   "cyclic",
		Short: "Complete the cyclic-n benchmark ideal",
		Long:  "Builds the classical cyclic-n ideal in n variables and completes it into a reduced Gröbner basis.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Vars < 1 {
				return fmt.Errorf("invalid --vars %d: must be positive", opts.Vars)
			}
			if err := validateOrder(opts.Order); err != nil {
				return err
			}

			return runCyclic(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Vars, "vars", "n", 3, "number of variables")
	cmd.Flags().StringVar(&opts.Order, "order", "lex", "monomial order (lex|grlex|grevlex)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "print only the basis members")

	return cmd
}

func runCyclic(w io.Writer, opts *CyclicOptions) error {
	switch opts.Order {
	case "lex":
		return completeCyclic[order.Lex](w, opts)
	case "grlex":
		return completeCyclic[order.GrLex](w, opts)
	case "grevlex":
		return completeCyclic[order.GrevLex](w, opts)
	default:
		return validateOrder(opts.Order)
	}
}

func completeCyclic[O order.Order](w io.Writer, opts *CyclicOptions) error {
	set, err := cyclic.BuildCycleSet[rational.Rational[int64], O](opts.Vars)
	if err != nil {
		return err
	}
	if !opts.Quiet {
		fmt.Fprintf(w, "cyclic-%d under %s: %d generators\n", opts.Vars, opts.Order, set.Len())
	}

	if err = buchberger.Buchberger(set); err != nil {
		return err
	}

	if !opts.Quiet {
		fmt.Fprintf(w, "reduced basis, %d members:\n", set.Len())
	}
	for _, p := range set.Polynomials() {
		fmt.Fprintln(w, p)
	}

	return nil
}
