package calc

import (
	"math"
	"strconv"
	"strings"
)

// Display formatting thresholds. Values at or below zeroTolerance render
// as zero, which also suppresses negative zero and residual noise from
// canceling operations.
const (
	zeroTolerance = 1e-14

	sciUpper = 1e12 // committed display switches to scientific notation
	sciLower = 1e-10

	rawUpper = 1e14 // raw (entry re-seed) form switches later
	rawLower = 1e-12
)

// formatValue renders a committed value: comma-grouped decimal with up to
// ten fractional digits, or scientific notation outside the thresholds.
func formatValue(v float64) string {
	if math.Abs(v) <= zeroTolerance {
		return "0"
	}
	av := math.Abs(v)
	if av >= sciUpper || av < sciLower {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return groupNumber(trimFraction(strconv.FormatFloat(v, 'f', 10, 64)))
}

// formatRaw renders a value the way it would be typed: no grouping, plain
// decimal with up to twelve fractional digits, scientific notation only
// for extreme magnitudes.
func formatRaw(v float64) string {
	if math.Abs(v) <= zeroTolerance {
		return "0"
	}
	av := math.Abs(v)
	if av >= rawUpper || av < rawLower {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return trimFraction(strconv.FormatFloat(v, 'f', 12, 64))
}

// formatEntry renders an in-progress entry exactly as typed, with comma
// grouping inserted into the integer part. A trailing decimal point or
// exponent marker is preserved.
func formatEntry(entry string) string {
	if entry == "" {
		return "0"
	}
	mant, exp := entry, ""
	if i := strings.IndexByte(entry, 'e'); i >= 0 {
		mant, exp = entry[:i], entry[i:]
	}
	return groupNumber(mant) + exp
}

// parseEntry reads the numeric value of an entry, ignoring a trailing
// decimal point or incomplete exponent.
func parseEntry(entry string) float64 {
	s := strings.TrimRight(entry, "e+-.")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// trimFraction removes trailing fractional zeros and a dangling point.
func trimFraction(s string) string {
	if !strings.ContainsRune(s, '.') {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// groupNumber inserts comma thousands separators into the integer part of
// a plain decimal string.
func groupNumber(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, rest := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, rest = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + rest
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + rest
}
