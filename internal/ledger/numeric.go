package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// currencyCleaner drops currency symbols and thousands separators that
// models occasionally leave in numeric fields despite instructions.
var currencyCleaner = strings.NewReplacer(
	"Rp", "", "rp", "", "IDR", "",
	"$", "", "€", "", "£", "", "¥", "",
	",", "",
)

// coerceNumeric parses an extracted numeric token strictly. Accepted forms,
// in order: a mixed fraction ("1 1/2"), a simple fraction ("3/4"), or a plain
// decimal number. Negative values pass through; range rules live in the
// validator.
func coerceNumeric(token string) (decimal.Decimal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return decimal.Zero, fmt.Errorf("empty numeric token")
	}

	if whole, frac, found := strings.Cut(token, " "); found && whole != "" && strings.TrimSpace(frac) != "" {
		wholePart, err := decimal.NewFromString(whole)
		if err != nil {
			return decimal.Zero, fmt.Errorf("parsing whole part of %q: %w", token, err)
		}
		fracPart, err := fractionValue(strings.TrimSpace(frac))
		if err != nil {
			return decimal.Zero, fmt.Errorf("parsing fraction part of %q: %w", token, err)
		}
		return wholePart.Add(fracPart), nil
	}

	if strings.Contains(token, "/") {
		return fractionValue(token)
	}

	value, err := decimal.NewFromString(currencyCleaner.Replace(token))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing number %q: %w", token, err)
	}
	return value, nil
}

// fractionValue converts "num/denom" with integer components.
func fractionValue(fraction string) (decimal.Decimal, error) {
	numStr, denomStr, found := strings.Cut(fraction, "/")
	if !found {
		return decimal.Zero, fmt.Errorf("not a fraction: %q", fraction)
	}
	num, err := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing numerator of %q: %w", fraction, err)
	}
	denom, err := strconv.ParseInt(strings.TrimSpace(denomStr), 10, 64)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing denominator of %q: %w", fraction, err)
	}
	if denom == 0 {
		return decimal.Zero, fmt.Errorf("division by zero in fraction %q", fraction)
	}
	return decimal.NewFromInt(num).Div(decimal.NewFromInt(denom)), nil
}

// Normalize converts a numeric token leniently. It never fails: on any parse
// error it returns zero and false, the non-fatal warning signal for the
// caller to surface.
func Normalize(token string) (decimal.Decimal, bool) {
	value, err := coerceNumeric(token)
	if err != nil {
		return decimal.Zero, false
	}
	return value, true
}
