// Package circle computes the area of a circle and renders it for display.
package circle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Area returns π·r². Negative radii give a positive area and very large
// magnitudes overflow to +Inf.
func Area(radius float64) float64 {
	return math.Pi * (radius * radius)
}

// FormatRadius renders r the way a float is conventionally echoed back to a
// user: integral values keep a trailing ".0", and exponents outside
// [-4, 16) switch to scientific notation.
func FormatRadius(r float64) string {
	if s, ok := formatNonFinite(r); ok {
		return s
	}

	sci := strconv.FormatFloat(r, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.LastIndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(r, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatArea renders a with exactly two digits after the decimal point.
func FormatArea(a float64) string {
	if s, ok := formatNonFinite(a); ok {
		return s
	}
	return strconv.FormatFloat(a, 'f', 2, 64)
}

// Summary is the line printed for a single radius.
func Summary(radius float64) string {
	return fmt.Sprintf("The area of the circle with radius %s is: %s",
		FormatRadius(radius), FormatArea(Area(radius)))
}

func formatNonFinite(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "nan", true
	case math.IsInf(f, 1):
		return "inf", true
	case math.IsInf(f, -1):
		return "-inf", true
	}
	return "", false
}
