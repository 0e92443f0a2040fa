// Package pricenotation codecs Treasury's "aaa-bbc" price grammar:
// whole dollars, a dash, two digits of 32nds, and one digit of
// eighths-of-a-32nd where the eighth-of-a-32nd digit "4" is written
// as '+'. The whole grammar lives on a 1/256 grid and round-trips
// exactly for any non-negative value on that grid.
package pricenotation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const grid = 256

// Format renders p as "aaa-bbc". p must be on the 1/256 grid; values
// that are not are rounded to the nearest 256th. The fractional part
// of a negative p is dropped.
func Format(p decimal.Decimal) string {
	whole := p.Truncate(0)
	frac := p.Sub(whole)
	ticks := frac.Mul(decimal.NewFromInt(grid)).Round(0).IntPart()
	if ticks < 0 {
		ticks = 0
	}
	thirtySeconds := ticks / 8
	eighths := ticks % 8
	var eighthsDigit string
	if eighths == 4 {
		eighthsDigit = "+"
	} else {
		eighthsDigit = strconv.FormatInt(eighths, 10)
	}
	return fmt.Sprintf("%s-%02d%s", whole.String(), thirtySeconds, eighthsDigit)
}

// Parse decodes an "aaa-bbc" string into its decimal dollar value.
func Parse(s string) (decimal.Decimal, error) {
	dash := strings.IndexByte(s, '-')
	if dash < 0 || dash+3 > len(s) {
		return decimal.Decimal{}, fmt.Errorf("pricenotation: malformed price %q", s)
	}
	wholePart := s[:dash]
	frac := s[dash+1:]
	if len(frac) != 3 {
		return decimal.Decimal{}, fmt.Errorf("pricenotation: malformed fraction in %q", s)
	}
	whole, err := decimal.NewFromString(wholePart)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("pricenotation: bad integer part of %q: %w", s, err)
	}
	thirtySeconds, err := strconv.ParseInt(frac[:2], 10, 64)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("pricenotation: bad 32nds in %q: %w", s, err)
	}
	var eighths int64
	switch frac[2] {
	case '+':
		eighths = 4
	default:
		eighths, err = strconv.ParseInt(frac[2:], 10, 64)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("pricenotation: bad eighths digit in %q: %w", s, err)
		}
	}
	ticks := thirtySeconds*8 + eighths
	fraction := decimal.NewFromInt(ticks).Div(decimal.NewFromInt(grid))
	if whole.IsNegative() {
		return whole.Sub(fraction), nil
	}
	return whole.Add(fraction), nil
}
