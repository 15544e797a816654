package cli

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Phibonoci/groebner/monomial"
	"github.com/Phibonoci/groebner/order"
	"github.com/Phibonoci/groebner/poly"
	"github.com/Phibonoci/groebner/rational"
)

// Rat is the coefficient field of the CLI: rationals over int64.
type Rat = rational.Rational[int64]

// IdealFile is the YAML description of a polynomial ideal:
//
//	variables: 3
//	order: lex
//	names: [x, y, z]   # optional, for printing
//	polynomials:
//	  - terms:
//	      - coefficient: "1"
//	        exponents: [1, 1]
//	      - coefficient: "-1/2"
//	        exponents: [0, 0, 1]
type IdealFile struct {
	Variables   int          `yaml:"variables"`
	Order       string       `yaml:"order"`
	Names       []string     `yaml:"names"`
	Polynomials []IdealEntry `yaml:"polynomials"`
}

// IdealEntry is one generator as a plain term list.
type IdealEntry struct {
	Terms []IdealTerm `yaml:"terms"`
}

// IdealTerm pairs a rational coefficient literal ("3", "-1/2") with an
// exponent vector indexed from variable 0.
type IdealTerm struct {
	Coefficient string            `yaml:"coefficient"`
	Exponents   []monomial.Degree `yaml:"exponents"`
}

// ParseIdealFile unmarshals and validates a YAML ideal description.
func ParseIdealFile(data []byte) (*IdealFile, error) {
	var f IdealFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse ideal: %w", err)
	}

	if f.Variables < 1 {
		return nil, fmt.Errorf("parse ideal: variables must be positive, got %d", f.Variables)
	}
	if err := validateOrder(f.Order); err != nil {
		return nil, fmt.Errorf("parse ideal: %w", err)
	}
	if len(f.Polynomials) == 0 {
		return nil, fmt.Errorf("parse ideal: no polynomials")
	}
	for i, p := range f.Polynomials {
		if len(p.Terms) == 0 {
			return nil, fmt.Errorf("parse ideal: polynomial %d has no terms", i)
		}
		for _, t := range p.Terms {
			if len(t.Exponents) > f.Variables {
				return nil, fmt.Errorf("parse ideal: polynomial %d uses %d variables, declared %d",
					i, len(t.Exponents), f.Variables)
			}
		}
	}

	return &f, nil
}

// ParseCoefficient reads a rational literal: an integer "p" or a fraction
// "p/q".
func ParseCoefficient(s string) (Rat, error) {
	num, den, found := strings.Cut(strings.TrimSpace(s), "/")

	n, err := strconv.ParseInt(strings.TrimSpace(num), 10, 64)
	if err != nil {
		return Rat{}, fmt.Errorf("coefficient %q: %w", s, err)
	}
	if !found {
		return rational.New(n), nil
	}

	d, err := strconv.ParseInt(strings.TrimSpace(den), 10, 64)
	if err != nil {
		return Rat{}, fmt.Errorf("coefficient %q: %w", s, err)
	}

	r, err := rational.NewFrac(n, d)
	if err != nil {
		return Rat{}, fmt.Errorf("coefficient %q: %w", s, err)
	}

	return r, nil
}

// BuildIdealSet assembles the polynomial set of f under the order O.
func BuildIdealSet[O order.Order](f *IdealFile) (*poly.Set[Rat, O], error) {
	set := poly.NewSet[Rat, O]()
	for i, entry := range f.Polynomials {
		terms := make([]poly.Term[Rat], 0, len(entry.Terms))
		for _, t := range entry.Terms {
			c, err := ParseCoefficient(t.Coefficient)
			if err != nil {
				return nil, fmt.Errorf("polynomial %d: %w", i, err)
			}
			m, err := monomial.New(t.Exponents...)
			if err != nil {
				return nil, fmt.Errorf("polynomial %d: %w", i, err)
			}
			terms = append(terms, poly.Term[Rat]{Monomial: m, Coefficient: c})
		}

		p, err := poly.FromTerms[Rat, O](terms...)
		if err != nil {
			return nil, fmt.Errorf("polynomial %d: %w", i, err)
		}
		if p.IsZero() {
			return nil, fmt.Errorf("polynomial %d reduces to zero", i)
		}
		set.Insert(p)
	}

	return set, nil
}
