package metrics

import (
	"math"
	"strconv"
	"strings"
)

// parseNumber reads a finite float from a cell. By default only a leading
// numeric prefix is required ("12.5%" -> 12.5); strict mode wants the whole
// cell to be a number.
func parseNumber(s string, strict bool) (float64, bool) {
	s = strings.TrimSpace(s)
	n := numericPrefix(s)
	if n == 0 {
		return 0, false
	}
	if strict && n != len(s) {
		return 0, false
	}

	v, err := strconv.ParseFloat(s[:n], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// numericPrefix returns the length of the longest prefix of s that is a
// decimal literal: optional sign, digits with an optional fraction, and an
// optional exponent. Returns 0 when s does not start with a number.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intDigits := skipDigits(s, i)
	i += intDigits

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = skipDigits(s, i+1)
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if d := skipDigits(s, j); d > 0 {
			i = j + d
		}
	}
	return i
}

func skipDigits(s string, from int) int {
	n := 0
	for from+n < len(s) && s[from+n] >= '0' && s[from+n] <= '9' {
		n++
	}
	return n
}
