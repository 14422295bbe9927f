package flex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnumLookup(t *testing.T) {
	v, err := AssetClass.convert("STK")
	require.NoError(t, err)
	ev, ok := v.AsEnum()
	require.True(t, ok)
	require.True(t, ev.Is("STOCK"))
	require.Equal(t, "AssetClass.STOCK", ev.String())

	// Unmatched wire values fail.
	_, err = AssetClass.convert("EQUITY")
	require.Error(t, err)
}

func TestEnumLegacyAliases(t *testing.T) {
	// Old and new wire spellings decode to the same canonical member.
	tests := []struct {
		enum   *Enum
		raws   []string
		member string
	}{
		{CashAction, []string{"Deposits/Withdrawals", "Deposits & Withdrawals"}, "DEPOSITWITHDRAW"},
		{CashAction, []string{"Fees", "Other Fees"}, "FEES"},
		{TransferType, []string{"ACAT", "ACATS"}, "ACATS"},
	}
	for _, tt := range tests {
		var decoded []EnumValue
		for _, raw := range tt.raws {
			v, err := tt.enum.convert(raw)
			require.NoError(t, err, raw)
			ev, ok := v.AsEnum()
			require.True(t, ok, raw)
			require.Equal(t, tt.member, ev.Member, raw)
			decoded = append(decoded, ev)
		}
		require.Equal(t, decoded[0], decoded[1])
	}

	// OTC has no legacy alias; its single wire value must still resolve.
	v, err := TransferType.convert("OTC")
	require.NoError(t, err)
	ev, ok := v.AsEnum()
	require.True(t, ok)
	require.True(t, ev.Is("OTC"))

	m, ok := TransferType.Lookup("SWIFT")
	require.False(t, ok)
	require.Empty(t, m)
}

func TestEnumEmptyIsNone(t *testing.T) {
	v, err := CashAction.convert("")
	require.NoError(t, err)
	require.True(t, v.IsNone())
}

func TestEnumMembers(t *testing.T) {
	require.Equal(t, []string{"PUT", "CALL"}, PutCall.Members())
}

func TestMustEnumRejectsDuplicates(t *testing.T) {
	// A wire value claimed by two members is a table bug and must fail
	// at construction, not at decode time.
	require.Panics(t, func() {
		mustEnum("Broken",
			Member{Name: "A", Value: "X"},
			Member{Name: "B", Value: "X"},
		)
	})
	require.Panics(t, func() {
		mustEnum("Broken",
			Member{Name: "A", Value: "X"},
			Member{Name: "B", Value: "Y", Aliases: []string{"X"}},
		)
	})
}

func TestCurrencyFieldDetection(t *testing.T) {
	// Detection is by case-insensitive substring of the field name.
	require.True(t, isCurrencyField("currency"))
	require.True(t, isCurrencyField("ibCommissionCurrency"))
	require.True(t, isCurrencyField("fooCurREncY"))
	require.False(t, isCurrencyField("notcurrencies"))
	require.False(t, isCurrencyField("symbol"))
}

func TestValidCurrency(t *testing.T) {
	for _, code := range []string{"USD", "EUR", "CHF", "JPY", "GBP"} {
		require.True(t, validCurrency(code), code)
	}
	// Wire codes are strictly upper-case three-letter ISO 4217.
	for _, bogus := range []string{"", "FOO", "usd", "US", "USDX", "U1D"} {
		require.False(t, validCurrency(bogus), bogus)
	}
}
