package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"fraction/src/numeric/fraction"
)

// DemoResult lists the sample values.
type DemoResult struct {
	Values []Result `json:"values"`
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print a few sample fractions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(rootOpts, cmd)
		},
	}
}

func demoValues() []fraction.Fraction[int32] {
	half := fraction.New[int32](1, 2)
	threeQuarters := fraction.New[int32](3, 4)
	return []fraction.Fraction[int32]{
		half,
		threeQuarters,
		half.Add(threeQuarters),
		fraction.New[int32](1, 3),
		fraction.FromInt[int32](10),
		fraction.Fr[int32](2, -6),
		fraction.Fr[int32](3, 4).Div(fraction.Fr[int32](1, 2)).Sub(fraction.Fr[int32](3, 2)),
	}
}

func runDemo(opts *RootOptions, cmd *cobra.Command) error {
	var (
		res   DemoResult
		lines []string
	)
	for _, v := range demoValues() {
		r := newResult(v, opts.Threshold)
		opts.Log.WithField("value", v.RatString()).Debug("demo value")
		res.Values = append(res.Values, r)
		lines = append(lines, r.Text)
	}
	return newFormatter(opts, cmd.OutOrStdout()).Success(res, strings.Join(lines, "\n"))
}
