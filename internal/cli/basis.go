package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Phibonoci/groebner/buchberger"
	"github.com/Phibonoci/groebner/order"
	"github.com/Phibonoci/groebner/poly"
)

// BasisOptions holds the flags of the basis subcommand.
type BasisOptions struct {
	File  string
	Quiet bool
}

// NewBasisCommand creates the command that completes an ideal described in
// a YAML file.
func NewBasisCommand() *cobra.Command {
	opts := &BasisOptions{}

	cmd := &cobra.Command{
		Use:   "basis",
		Short: "Complete an ideal described in a YAML file",
		Long:  "Loads generators from a YAML ideal description and completes them into a reduced Gröbner basis.",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(opts.File)
			if err != nil {
				return err
			}

			f, err := ParseIdealFile(data)
			if err != nil {
				return err
			}

			return runBasis(cmd.OutOrStdout(), f, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "YAML ideal description (required)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "print only the basis members")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runBasis(w io.Writer, f *IdealFile, opts *BasisOptions) error {
	switch f.Order {
	case "lex":
		return completeIdeal[order.Lex](w, f, opts)
	case "grlex":
		return completeIdeal[order.GrLex](w, f, opts)
	case "grevlex":
		return completeIdeal[order.GrevLex](w, f, opts)
	default:
		return validateOrder(f.Order)
	}
}

func completeIdeal[O order.Order](w io.Writer, f *IdealFile, opts *BasisOptions) error {
	set, err := BuildIdealSet[O](f)
	if err != nil {
		return err
	}
	if !opts.Quiet {
		fmt.Fprintf(w, "%d generators in %d variables under %s\n", set.Len(), f.Variables, f.Order)
	}

	if err = buchberger.Buchberger(set); err != nil {
		return err
	}

	if !opts.Quiet {
		fmt.Fprintf(w, "reduced basis, %d members:\n", set.Len())
	}

	var format []poly.FormatOption
	if len(f.Names) > 0 {
		format = append(format, poly.WithVariableNames(f.Names...))
	}
	for _, p := range set.Polynomials() {
		fmt.Fprintln(w, p.Format(format...))
	}

	return nil
}
