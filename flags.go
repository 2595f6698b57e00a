package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/nikitavoloboev/circle/lib/circle"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	radiusFlag      = "radius"
	radiusShorthand = "r"
)

var (
	errMissingRadius = errors.New("the following arguments are required: -r/--radius")
	errInvalidRadius = errors.New("invalid float value")
)

// radiusValue is the -r/--radius flag. A rejected input is kept in raw so
// the flag error can name it.
type radiusValue struct {
	value   float64
	raw     string
	invalid bool
}

var _ pflag.Value = (*radiusValue)(nil)

func (v *radiusValue) String() string { return strconv.FormatFloat(v.value, 'g', -1, 64) }

func (v *radiusValue) Type() string { return "float" }

func (v *radiusValue) Set(s string) error {
	f, err := parseRadius(s)
	if err != nil {
		v.raw = s
		v.invalid = true
		return err
	}
	v.value = f
	v.invalid = false
	return nil
}

// parseRadius accepts decimal floats, inf/infinity and nan with an optional
// sign, after trimming surrounding whitespace. Hex floats are rejected.
// Out-of-range magnitudes become ±Inf.
func parseRadius(s string) (float64, error) {
	s = strings.TrimSpace(s)

	unsigned := s
	if len(unsigned) > 0 && (unsigned[0] == '+' || unsigned[0] == '-') {
		unsigned = unsigned[1:]
	}
	if len(unsigned) >= 2 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	if strings.EqualFold(unsigned, "nan") {
		return math.NaN(), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return f, nil
}

// longFlagPrefixes resolves an unambiguous prefix of a long flag name to the
// full name, so --rad means --radius.
func longFlagPrefixes(names ...string) func(*pflag.FlagSet, string) pflag.NormalizedName {
	return func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		match := ""
		for _, n := range names {
			if n == name {
				return pflag.NormalizedName(n)
			}
			if strings.HasPrefix(n, name) {
				if match != "" {
					return pflag.NormalizedName(name)
				}
				match = n
			}
		}
		if match == "" {
			return pflag.NormalizedName(name)
		}
		return pflag.NormalizedName(match)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	radius := &radiusValue{}

	cmd := &cobra.Command{
		Use:           "circle -r RADIUS",
		Short:         "Calculate the area of a circle",
		Version:       circleVersion,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed(radiusFlag) {
				return errMissingRadius
			}
			fmt.Fprintln(cmd.OutOrStdout(), circle.Summary(radius.value))
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().VarP(radius, radiusFlag, radiusShorthand, "radius of the circle (required)")
	cmd.SetGlobalNormalizationFunc(longFlagPrefixes(radiusFlag, "help", "version"))
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		if radius.invalid {
			return fmt.Errorf("argument -r/--radius: %w: '%s'", errInvalidRadius, radius.raw)
		}
		return err
	})

	return cmd
}
