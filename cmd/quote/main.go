// Command quote prints the constant-product swap output for the given
// reserves and fee tier.
package main

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/akamensky/argparse"

	"github.com/nulln0ne/amm-quoter/pkg/uniswapv2"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	parser := argparse.NewParser("quote", "Quotes a Uniswap V2 style constant-product swap")
	amount := parser.String("a", "amount-in", &argparse.Options{Required: true, Help: "Input amount, or output amount with --exact-out"})
	reserveIn := parser.String("i", "reserve-in", &argparse.Options{Required: true, Help: "Pool balance of the input token"})
	reserveOut := parser.String("o", "reserve-out", &argparse.Options{Required: true, Help: "Pool balance of the output token"})
	feeBps := parser.Int("f", "fee-bps", &argparse.Options{Default: int(uniswapv2.DefaultFee.Bps), Help: "Fee in parts of the denominator"})
	feeDen := parser.Int("d", "fee-denominator", &argparse.Options{Default: int(uniswapv2.DefaultFee.Denominator), Help: "Fee denominator"})
	exactOut := parser.Flag("x", "exact-out", &argparse.Options{Help: "Treat --amount-in as the desired output and print the required input"})

	if err := parser.Parse(args); err != nil {
		return errors.New(parser.Usage(err))
	}

	if *feeBps < 0 || *feeDen <= 0 {
		return fmt.Errorf("%w: %d/%d", uniswapv2.ErrInvalidFee, *feeBps, *feeDen)
	}
	quoter, err := uniswapv2.NewQuoter(uniswapv2.Fee{Bps: uint64(*feeBps), Denominator: uint64(*feeDen)})
	if err != nil {
		return err
	}

	a, err := parseInt("amount-in", *amount)
	if err != nil {
		return err
	}
	rIn, err := parseInt("reserve-in", *reserveIn)
	if err != nil {
		return err
	}
	rOut, err := parseInt("reserve-out", *reserveOut)
	if err != nil {
		return err
	}

	var result *big.Int
	if *exactOut {
		result, err = quoter.AmountIn(a, rIn, rOut)
	} else {
		result, err = quoter.AmountOut(a, rIn, rOut)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, result.String())
	return err
}

func parseInt(name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid --%s %q: not a base-10 integer", name, s)
	}
	return v, nil
}
