// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	infinityText = "Infinity"
	nanText      = "NaN"

	// plain decimal notation is used for magnitudes in [minPlain, maxPlain)
	minPlain = 1e-6
	maxPlain = 1e21
)

// Format renders v as the shortest decimal text that parses back to v.
//
// Sentinels render as Infinity, -Infinity and NaN, negative zero renders as
// "0", and very large or very small magnitudes switch to exponent notation
// with an explicit sign and no zero padding (1e+21, 1.5e-8).
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return nanText
	case math.IsInf(v, 1):
		return infinityText
	case math.IsInf(v, -1):
		return "-" + infinityText
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= minPlain && abs < maxPlain {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

// Parse reads display text back into a number. Text that is not a number
// yields NaN, which then propagates like any other sentinel. Overflowing
// literals saturate to ±Infinity.
func Parse(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}
