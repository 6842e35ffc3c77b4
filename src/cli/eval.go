package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fraction/src/numeric/fraction"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	Checked bool
}

// EvalResult is the JSON payload of the eval command.
type EvalResult struct {
	Expr string `json:"expr"`
	Result
}

type binaryOp struct {
	plain   func(x, y fraction.Fraction[int64]) fraction.Fraction[int64]
	checked func(x, y fraction.Fraction[int64]) (fraction.Fraction[int64], error)
}

var binaryOps = map[string]binaryOp{
	"+": {fraction.Fraction[int64].Add, fraction.Fraction[int64].CheckedAdd},
	"-": {fraction.Fraction[int64].Sub, fraction.Fraction[int64].CheckedSub},
	"*": {fraction.Fraction[int64].Mul, fraction.Fraction[int64].CheckedMul},
	"/": {fraction.Fraction[int64].Div, fraction.Fraction[int64].CheckedDiv},
	"%": {fraction.Fraction[int64].Rem, fraction.Fraction[int64].CheckedRem},
}

// opAliases lets callers avoid shell globbing and flag parsing.
var opAliases = map[string]string{
	"add": "+",
	"sub": "-",
	"mul": "*",
	"x":   "*",
	"div": "/",
	"rem": "%",
	"mod": "%",
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{}

	cmd := &cobra.Command{
		Use:   "eval <lhs> <op> <rhs>",
		Short: "Evaluate one binary operation",
		Long: `Evaluate lhs op rhs, where the operands are integers or n/d literals and
op is one of + - * / % (or add, sub, mul, div, rem).

Put -- before the operands when the first one is negative:

  fraction eval -- -3/4 + 1/2`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Checked, "checked", false, "fail on integer overflow instead of wrapping")

	return cmd
}

func runEval(rootOpts *RootOptions, opts *EvalOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout())

	lhs, err := fraction.FromLiteral[int64](args[0])
	if err != nil {
		return argError(formatter, "invalid left operand", err)
	}
	rhs, err := fraction.FromLiteral[int64](args[2])
	if err != nil {
		return argError(formatter, "invalid right operand", err)
	}
	symbol := args[1]
	if alias, ok := opAliases[symbol]; ok {
		symbol = alias
	}
	op, ok := binaryOps[symbol]
	if !ok {
		return argError(formatter, "invalid operator", fmt.Errorf("%q", args[1]))
	}

	log := rootOpts.Log.WithFields(logrus.Fields{
		"lhs":     lhs.RatString(),
		"op":      symbol,
		"rhs":     rhs.RatString(),
		"checked": opts.Checked,
	})
	log.Debug("evaluating")

	var result fraction.Fraction[int64]
	if opts.Checked {
		result, err = op.checked(lhs, rhs)
		if err != nil {
			log.WithError(err).Debug("overflow")
			_ = formatter.Error(ErrCodeOverflow, err.Error())
			return WrapExitError(ExitFailure, "evaluation failed", err)
		}
	} else {
		result = op.plain(lhs, rhs)
	}
	if result.IsUndefined() {
		log.Warn("division by zero")
	}
	log.WithField("result", result.RatString()).Debug("evaluated")

	expr := fmt.Sprintf("%s %s %s", lhs.RatString(), symbol, rhs.RatString())
	return formatter.Success(EvalResult{Expr: expr, Result: newResult(result, rootOpts.Threshold)}, result.Text(rootOpts.Threshold))
}

func argError(formatter *OutputFormatter, message string, err error) error {
	_ = formatter.Error(ErrCodeArgs, fmt.Sprintf("%s: %v", message, err))
	return WrapExitError(ExitCommandError, message, err)
}
