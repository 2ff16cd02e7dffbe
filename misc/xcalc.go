package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	num "github.com/shabbyrobe/go-xnum"
)

// xcalc evaluates a single operation on two extended-precision integers
// written in the library's hex form. It is mostly useful for poking at word
// layouts while debugging:
//
//	xcalc --signed --bits 8 --dump -- -0x80 - 0x01
const longUsage = `Evaluate one operation on extended-precision integers.

Operands use the hex form printed by the library (e.g. 0x0100, -0x01).
Operators: + - * / % cmp, and << >> for unsigned integers only. The right
operand of a shift is a decimal bit count.`

var dumper = spew.ConfigState{Indent: "  ", DisableMethods: true}

func main() {
	if err := newCalcCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "xcalc [flags] <a> <op> <b>",
		Short:        "Evaluate one operation on extended-precision integers",
		Long:         longUsage,
		Args:         cobra.ExactArgs(3),
		RunE:         runCalc,
		SilenceUsage: true,
	}
	cmd.Flags().Uint("bits", 8, "word width: 8, 16, 32 or 64")
	cmd.Flags().Bool("signed", false, "use signed integers")
	cmd.Flags().Bool("dump", false, "dump the raw word layout of the result")
	return cmd
}

func runCalc(cmd *cobra.Command, args []string) error {
	bits, err := cmd.Flags().GetUint("bits")
	if err != nil {
		return err
	}
	signed, err := cmd.Flags().GetBool("signed")
	if err != nil {
		return err
	}
	dump, err := cmd.Flags().GetBool("dump")
	if err != nil {
		return err
	}

	a, op, b := args[0], args[1], args[2]

	var result any
	switch {
	case signed && bits == 8:
		result, err = evalInt[int8, uint8](a, op, b)
	case signed && bits == 16:
		result, err = evalInt[int16, uint16](a, op, b)
	case signed && bits == 32:
		result, err = evalInt[int32, uint32](a, op, b)
	case signed && bits == 64:
		result, err = evalInt[int64, uint64](a, op, b)
	case bits == 8:
		result, err = evalUint[uint8](a, op, b)
	case bits == 16:
		result, err = evalUint[uint16](a, op, b)
	case bits == 32:
		result, err = evalUint[uint32](a, op, b)
	case bits == 64:
		result, err = evalUint[uint64](a, op, b)
	default:
		return fmt.Errorf("--bits must be 8, 16, 32 or 64, got %d", bits)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cmp, ok := result.(int); ok {
		fmt.Fprintln(out, cmp)
		return nil
	}
	fmt.Fprintf(out, "%s\n%d\n", result, result)
	if dump {
		dumper.Fdump(out, result)
	}
	return nil
}

func evalUint[W constraints.Unsigned](a, op, b string) (any, error) {
	x, err := num.UintFromString[W](a)
	if err != nil {
		return nil, err
	}
	if op == "<<" || op == ">>" {
		n, err := strconv.ParseUint(b, 10, 0)
		if err != nil {
			return nil, fmt.Errorf("shift count %q: %w", b, err)
		}
		if op == "<<" {
			return x.Lsh(uint(n)), nil
		}
		return x.Rsh(uint(n)), nil
	}

	y, err := num.UintFromString[W](b)
	if err != nil {
		return nil, err
	}
	switch op {
	case "+":
		return x.Add(y), nil
	case "-":
		return x.Sub(y)
	case "*":
		return x.Mul(y), nil
	case "/":
		return x.Quo(y)
	case "%":
		return x.Rem(y)
	case "cmp":
		return x.Cmp(y), nil
	}
	return nil, fmt.Errorf("unknown operator %q", op)
}

func evalInt[S constraints.Signed, U constraints.Unsigned](a, op, b string) (any, error) {
	x, err := num.IntFromString[S, U](a)
	if err != nil {
		return nil, err
	}
	y, err := num.IntFromString[S, U](b)
	if err != nil {
		return nil, err
	}
	switch op {
	case "+":
		return x.Add(y), nil
	case "-":
		return x.Sub(y), nil
	case "*":
		return x.Mul(y), nil
	case "/":
		return x.Quo(y)
	case "%":
		return x.Rem(y)
	case "cmp":
		return x.Cmp(y), nil
	}
	return nil, fmt.Errorf("unknown operator %q", op)
}
