// Package format renders numeric magnitudes as human-readable strings using
// Indian unit bands (Crore, Lakh, thousand). One canonical band policy is
// applied everywhere: the thousand/K band exists for both currency and plain
// counts.
package format

import (
	"fmt"
	"strings"
)

// CurrencySign prefixes all currency output.
const CurrencySign = "₹"

// Magnitude band thresholds, evaluated top-down; first match wins.
const (
	billion  = 1e9
	crore    = 1e7
	lakh     = 1e5
	thousand = 1e3
)

// Trend glyphs for Percentage.
const (
	glyphUp   = "📈"
	glyphDown = "📉"
	glyphFlat = "➡️"
)

// Currency formats a rupee amount with a unit suffix: ≥1e9 → B, ≥1e7 → Cr,
// ≥1e5 → L, ≥1e3 → K, otherwise the exact amount with thousands separators.
func Currency(v float64) string {
	switch {
	case v >= billion:
		return fmt.Sprintf("%s%.2fB", CurrencySign, v/billion)
	case v >= crore:
		return fmt.Sprintf("%s%.2fCr", CurrencySign, v/crore)
	case v >= lakh:
		return fmt.Sprintf("%s%.2fL", CurrencySign, v/lakh)
	case v >= thousand:
		return fmt.Sprintf("%s%.2fK", CurrencySign, v/thousand)
	default:
		return CurrencySign + withSeparators(v, 2)
	}
}

// Number formats a plain count with the same bands as Currency but no
// currency sign, and zero decimals in the unscaled band.
func Number(v float64) string {
	switch {
	case v >= billion:
		return fmt.Sprintf("%.2fB", v/billion)
	case v >= crore:
		return fmt.Sprintf("%.2fCr", v/crore)
	case v >= lakh:
		return fmt.Sprintf("%.2fL", v/lakh)
	case v >= thousand:
		return fmt.Sprintf("%.2fK", v/thousand)
	default:
		return withSeparators(v, 0)
	}
}

// Percentage renders a growth value with a trend glyph chosen by sign.
// decimals defaults to 1 when omitted.
func Percentage(v float64, decimals ...int) string {
	d := 1
	if len(decimals) > 0 && decimals[0] >= 0 {
		d = decimals[0]
	}
	glyph := glyphFlat
	switch {
	case v > 0:
		glyph = glyphUp
	case v < 0:
		glyph = glyphDown
	}
	return fmt.Sprintf("%s %.*f%%", glyph, d, v)
}

// withSeparators renders v with the given decimal count and comma-grouped
// integer digits.
func withSeparators(v float64, decimals int) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.*f", decimals, v)
	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) > 3 {
		var parts []string
		for len(intPart) > 3 {
			parts = append([]string{intPart[len(intPart)-3:]}, parts...)
			intPart = intPart[:len(intPart)-3]
		}
		parts = append([]string{intPart}, parts...)
		intPart = strings.Join(parts, ",")
	}
	out := intPart + frac
	if neg {
		out = "-" + out
	}
	return out
}
