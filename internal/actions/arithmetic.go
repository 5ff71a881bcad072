package actions

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/footprint-tools/climux/internal/dispatchers"
	"github.com/footprint-tools/climux/internal/domain"
)

const sumUsage = `Adds integers and prints the total.

Usage:
  calc sum <a> <b>...

Options:
  -h, --help  Show this help
`

// Sum adds its operands.
type Sum struct {
	A string   `docopt:"<a>"`
	B []string `docopt:"<b>"`
}

func NewSum() dispatchers.Command { return &Sum{} }

func (c *Sum) Name() string  { return "sum" }
func (c *Sum) Usage() string { return sumUsage }

func (c *Sum) Execute(sh domain.Shell) error {
	operands, err := parseOperands(append([]string{c.A}, c.B...))
	if err != nil {
		return fmt.Errorf("sum: %w", err)
	}

	total := new(big.Int)
	for _, n := range operands {
		total.Add(total, n)
	}

	_, err = sh.Println(total.String())
	return err
}

const productUsage = `Multiplies integers and prints the product.

Usage:
  calc product [options] <a> <b>...

Options:
  --verbose   Show the expression being evaluated
  -h, --help  Show this help
`

// Product multiplies its operands.
type Product struct {
	A       string   `docopt:"<a>"`
	B       []string `docopt:"<b>"`
	Verbose bool     `docopt:"--verbose"`
}

func NewProduct() dispatchers.Command { return &Product{} }

func (c *Product) Name() string  { return "product" }
func (c *Product) Usage() string { return productUsage }

func (c *Product) Execute(sh domain.Shell) error {
	raw := append([]string{c.A}, c.B...)
	operands, err := parseOperands(raw)
	if err != nil {
		return fmt.Errorf("product: %w", err)
	}

	if c.Verbose {
		sh.SetVerbose(true)
	}

	result := big.NewInt(1)
	for _, n := range operands {
		result.Mul(result, n)
	}

	sh.Verbosef("%s = %s", strings.Join(raw, " * "), result)
	_, err = sh.Println(result.String())
	return err
}

// ErrNotInteger is wrapped by arithmetic commands for a bad operand.
var ErrNotInteger = errors.New("not a base-10 integer")

// parseOperands parses base-10 integers of any size, reporting the first
// bad one.
func parseOperands(raw []string) ([]*big.Int, error) {
	out := make([]*big.Int, 0, len(raw))
	for i, s := range raw {
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("operand %d: %q: %w", i+1, s, ErrNotInteger)
		}
		out = append(out, n)
	}
	return out, nil
}
