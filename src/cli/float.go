package cli

import (
	"errors"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fraction/src/numeric/fraction"
)

// FloatResult is the JSON payload of the float command.
type FloatResult struct {
	Input string `json:"input"`
	Bits  int    `json:"bits"`
	Result
}

// NewFloatCommand creates the float command.
func NewFloatCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "float <value>",
		Short: "Convert a decimal number to a fraction",
		Long: `Convert a decimal number to a fraction over integers of --bits width.

The conversion uses the shortest decimal form of the value, so 0.1 becomes
1/10. It fails if the scaled value does not fit the integer width.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFloat(rootOpts, args[0], cmd)
		},
	}
}

func runFloat(opts *RootOptions, input string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout())

	v, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return argError(formatter, "invalid value", err)
	}

	log := opts.Log.WithFields(logrus.Fields{"value": v, "bits": opts.Bits})
	log.Debug("converting")

	var res Result
	switch opts.Bits {
	case 8:
		res, err = convertFloat[int8](v, opts.Threshold)
	case 16:
		res, err = convertFloat[int16](v, opts.Threshold)
	case 32:
		res, err = convertFloat[int32](v, opts.Threshold)
	default:
		res, err = convertFloat[int64](v, opts.Threshold)
	}
	if err != nil {
		log.WithError(err).Debug("conversion failed")
		code := ErrCodeRange
		if errors.Is(err, fraction.ErrNotFinite) {
			code = ErrCodeArgs
		}
		_ = formatter.Error(code, err.Error())
		return WrapExitError(ExitFailure, "conversion failed", err)
	}
	log.WithField("result", res.Text).Debug("converted")

	text := strconv.FormatInt(res.Num, 10) + "/" + strconv.FormatInt(res.Den, 10)
	return formatter.Success(FloatResult{Input: input, Bits: opts.Bits, Result: res}, text)
}

func convertFloat[T fraction.Integer](v float64, threshold int) (Result, error) {
	r, err := fraction.FromFloat64[T](v)
	if err != nil {
		return Result{}, err
	}
	return newResult(r, threshold), nil
}
