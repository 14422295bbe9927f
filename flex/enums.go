package flex

import "fmt"

// ============================================================
// Enum Compatibility Layer
// ============================================================
//
// Flex attributes with enumerated domains arrive as wire strings, and the
// broker has renamed several of them across schema versions (e.g.
// "Deposits/Withdrawals" became "Deposits & Withdrawals"). Each Enum is a
// static table from wire value — current or legacy — to one canonical
// member, so two generations of the same export decode identically.

// Member declares one canonical enum member: its name, current wire
// value, and any legacy wire aliases still found in old exports.
type Member struct {
	Name    string
	Value   string
	Aliases []string
}

// Enum is an immutable per-enumeration lookup table. Build with mustEnum;
// wire values and aliases are validated for uniqueness at package init.
type Enum struct {
	Name    string
	members []Member
	byWire  map[string]string // wire value or alias -> canonical member name
}

// mustEnum builds an Enum and panics on duplicate wire strings. Called
// only from package-level var initializers, so a broken table fails at
// process start, not mid-decode.
func mustEnum(name string, members ...Member) *Enum {
	e := &Enum{
		Name:    name,
		members: members,
		byWire:  make(map[string]string, len(members)),
	}
	add := func(wire, member string) {
		if prev, dup := e.byWire[wire]; dup {
			panic(fmt.Sprintf("enum %s: wire value %q maps to both %s and %s", name, wire, prev, member))
		}
		e.byWire[wire] = member
	}
	for _, m := range members {
		// Aliases first, then the canonical value: a legacy string that
		// collides with another member's current value is a table bug.
		for _, a := range m.Aliases {
			add(a, m.Name)
		}
		add(m.Value, m.Name)
	}
	return e
}

// Lookup resolves a wire value (or legacy alias) to its canonical member
// name.
func (e *Enum) Lookup(wire string) (string, bool) {
	m, ok := e.byWire[wire]
	return m, ok
}

// Members returns the canonical member names in declaration order.
func (e *Enum) Members() []string {
	names := make([]string, len(e.members))
	for i, m := range e.members {
		names[i] = m.Name
	}
	return names
}

// convert is the converter for fields declared Enum<e>. Empty input is
// None regardless of optionality, matching string fields.
func (e *Enum) convert(raw string) (Value, error) {
	if raw == "" {
		return None(), nil
	}
	member, ok := e.Lookup(raw)
	if !ok {
		return None(), fmt.Errorf("invalid %s value %q", e.Name, raw)
	}
	return EnumOf(e, member), nil
}

// EnumValue is a decoded enum member.
type EnumValue struct {
	Enum   *Enum
	Member string // canonical member name
}

// Is reports whether the value is the named canonical member.
func (v EnumValue) Is(member string) bool { return v.Member == member }

func (v EnumValue) String() string {
	if v.Enum == nil {
		return v.Member
	}
	return v.Enum.Name + "." + v.Member
}

// ============================================================
// Enumeration catalogue
// ============================================================

// AssetClass categorizes the instrument of a trade or position.
var AssetClass = mustEnum("AssetClass",
	Member{Name: "CASH", Value: "CASH"},
	Member{Name: "BILL", Value: "BILL"},
	Member{Name: "BOND", Value: "BOND"},
	Member{Name: "STOCK", Value: "STK"},
	Member{Name: "OPTION", Value: "OPT"},
	Member{Name: "FUTURE", Value: "FUT"},
	Member{Name: "FUTUREOPTION", Value: "FOP"},
	Member{Name: "FUND", Value: "FUND"},
	Member{Name: "CFD", Value: "CFD"},
	Member{Name: "WARRANT", Value: "WAR"},
	Member{Name: "COMMODITY", Value: "CMDTY"},
	Member{Name: "CRYPTO", Value: "CRYPTO"},
)

// CashAction is the transaction type of a cash movement. The
// DEPOSITWITHDRAW and FEES wire values were renamed by the broker; the
// old spellings remain as aliases.
var CashAction = mustEnum("CashAction",
	Member{Name: "DEPOSITWITHDRAW", Value: "Deposits & Withdrawals", Aliases: []string{"Deposits/Withdrawals"}},
	Member{Name: "BROKERINTPAID", Value: "Broker Interest Paid"},
	Member{Name: "BROKERINTRCVD", Value: "Broker Interest Received"},
	Member{Name: "WHTAX", Value: "Withholding Tax"},
	Member{Name: "BONDINTPAID", Value: "Bond Interest Paid"},
	Member{Name: "BONDINTRCVD", Value: "Bond Interest Received"},
	Member{Name: "DIVIDEND", Value: "Dividends"},
	Member{Name: "PAYMENTINLIEU", Value: "Payment In Lieu Of Dividends"},
	Member{Name: "FEES", Value: "Other Fees", Aliases: []string{"Fees"}},
	Member{Name: "COMMADJ", Value: "Commission Adjustments"},
)

// TransferType is the mechanism of a position transfer. "ACAT" is the
// legacy spelling of ACATS.
var TransferType = mustEnum("TransferType",
	Member{Name: "INTERNAL", Value: "INTERNAL"},
	Member{Name: "ACATS", Value: "ACATS", Aliases: []string{"ACAT"}},
	Member{Name: "NONUS", Value: "NON-US"},
	Member{Name: "FOP", Value: "FOP"},
	Member{Name: "OTC", Value: "OTC"},
)

// BuySell is the side of a trade, including cancellation rebooks.
var BuySell = mustEnum("BuySell",
	Member{Name: "BUY", Value: "BUY"},
	Member{Name: "CANCELBUY", Value: "BUY (Ca.)"},
	Member{Name: "SELL", Value: "SELL"},
	Member{Name: "CANCELSELL", Value: "SELL (Ca.)"},
)

// OpenClose indicates whether an execution opens or closes a position.
var OpenClose = mustEnum("OpenClose",
	Member{Name: "OPEN", Value: "O"},
	Member{Name: "CLOSE", Value: "C"},
	Member{Name: "OPENCLOSE", Value: "C;O"},
)

// LongShort is the direction of a position.
var LongShort = mustEnum("LongShort",
	Member{Name: "LONG", Value: "Long"},
	Member{Name: "SHORT", Value: "Short"},
)

// PutCall is the right of an option contract.
var PutCall = mustEnum("PutCall",
	Member{Name: "PUT", Value: "P"},
	Member{Name: "CALL", Value: "C"},
)

// TradeType is the booking type of a trade line.
var TradeType = mustEnum("TradeType",
	Member{Name: "EXCHTRADE", Value: "ExchTrade"},
	Member{Name: "TRADECANCEL", Value: "TradeCancel"},
	Member{Name: "FRACSHARE", Value: "FracShare"},
	Member{Name: "FRACSHARECANCEL", Value: "FracShareCancel"},
	Member{Name: "FRACSHAREADJ", Value: "FracShareAdj"},
	Member{Name: "TRADECORRECT", Value: "TradeCorrect"},
	Member{Name: "BOOKTRADE", Value: "BookTrade"},
	Member{Name: "DVPTRADE", Value: "DvpTrade"},
)

// OrderType is the order type of the originating order, when reported.
var OrderType = mustEnum("OrderType",
	Member{Name: "LIMIT", Value: "LMT"},
	Member{Name: "MARKET", Value: "MKT"},
	Member{Name: "MARKETONCLOSE", Value: "MOC"},
	Member{Name: "LIMITONCLOSE", Value: "LOC"},
	Member{Name: "STOP", Value: "STP"},
	Member{Name: "STOPLIMIT", Value: "STPLMT"},
	Member{Name: "TRAILINGSTOP", Value: "TRAIL"},
	Member{Name: "MULTIPLE", Value: "MULTIPLE"},
)

// ToFrom marks the direction of a transfer leg.
var ToFrom = mustEnum("ToFrom",
	Member{Name: "TO", Value: "To"},
	Member{Name: "FROM", Value: "From"},
)

// InOut marks the direction of an asset movement.
var InOut = mustEnum("InOut",
	Member{Name: "IN", Value: "IN"},
	Member{Name: "OUT", Value: "OUT"},
)

// DeliveredReceived marks physical delivery direction.
var DeliveredReceived = mustEnum("DeliveredReceived",
	Member{Name: "DELIVERED", Value: "Delivered"},
	Member{Name: "RECEIVED", Value: "Received"},
)
