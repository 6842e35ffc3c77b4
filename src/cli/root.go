// Package cli implements the fraction command line tool.
package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fraction/src/numeric/fraction"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "json" | "text"
	Threshold int    // decimal places printed before falling back to num/den
	Bits      int    // integer width for float conversion

	Log *logrus.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// ValidBits defines the supported integer widths.
var ValidBits = []int{8, 16, 32, 64}

// NewRootCommand creates the root command for the fraction CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "fraction",
		Short: "Exact rational arithmetic",
		Long:  "Evaluate and convert fractions, always kept in lowest terms with a positive denominator.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if !isValidBits(opts.Bits) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid bits %d: must be one of %v", opts.Bits, ValidBits))
			}
			if opts.Threshold < 0 {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid threshold %d: must not be negative", opts.Threshold))
			}
			opts.Log = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().IntVar(&opts.Threshold, "threshold", fraction.DefaultThreshold, "maximum decimal places shown before printing num/den")
	cmd.PersistentFlags().IntVar(&opts.Bits, "bits", 64, "integer width used by float conversion (8|16|32|64)")

	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewFloatCommand(opts))

	return cmd
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func isValidBits(bits int) bool {
	for _, b := range ValidBits {
		if b == bits {
			return true
		}
	}
	return false
}
