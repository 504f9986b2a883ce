// Package format renders counts and rates for the harness reports.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Decimal and binary magnitudes
const (
	kilo = 1_000
	mega = 1_000_000
	giga = 1_000_000_000

	kibi = 1 << 10
	mebi = 1 << 20
	gibi = 1 << 30
)

var printer = message.NewPrinter(language.English)

// Unit renders n with a K, M or G suffix when n is an exact multiple of
// that decimal magnitude, and as a plain integer otherwise.
func Unit(n int64) string {
	switch {
	case n != 0 && n%giga == 0:
		return fmt.Sprintf("%dG", n/giga)
	case n != 0 && n%mega == 0:
		return fmt.Sprintf("%dM", n/mega)
	case n != 0 && n%kilo == 0:
		return fmt.Sprintf("%dK", n/kilo)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// Binary is like Unit with Ki, Mi and Gi suffixes.
func Binary(n int64) string {
	switch {
	case n != 0 && n%gibi == 0:
		return fmt.Sprintf("%dGi", n/gibi)
	case n != 0 && n%mebi == 0:
		return fmt.Sprintf("%dMi", n/mebi)
	case n != 0 && n%kibi == 0:
		return fmt.Sprintf("%dKi", n/kibi)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// Comma renders n with comma thousands separators.
func Comma(n int64) string {
	return printer.Sprintf("%d", n)
}

// Rate renders r scaled to one decimal with a G, M or K unit letter, or a
// trailing space when r is below one thousand.
func Rate(r float64) string {
	switch {
	case r > giga:
		return fmt.Sprintf("%.1f G", r/giga)
	case r > mega:
		return fmt.Sprintf("%.1f M", r/mega)
	case r > kilo:
		return fmt.Sprintf("%.1f K", r/kilo)
	default:
		return fmt.Sprintf("%.1f  ", r)
	}
}
