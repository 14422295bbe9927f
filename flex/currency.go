package flex

import (
	"strings"

	"golang.org/x/text/currency"
)

// isCurrencyField reports whether an attribute carries a currency code:
// the field name contains "currency" in any case ("currency",
// "ibCommissionCurrency", "fxCurrency", ...). The check is by name, not
// by declared kind — currency fields are declared String but still get
// ISO 4217 validation.
func isCurrencyField(name string) bool {
	return strings.Contains(strings.ToLower(name), "currency")
}

// validCurrency reports whether raw is a known ISO 4217 three-letter
// code. The wire format is strictly upper-case; currency.ParseISO would
// also accept "usd", so the shape is checked first.
func validCurrency(raw string) bool {
	if len(raw) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if raw[i] < 'A' || raw[i] > 'Z' {
			return false
		}
	}
	_, err := currency.ParseISO(raw)
	return err == nil
}
