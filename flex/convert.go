package flex

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// A converter maps one raw attribute string to a typed Value. Converters
// are pure; the coercion engine selects one per declared field kind.
type converter func(raw string) (Value, error)

// optional adapts a converter so that empty input yields None instead of
// failing. Applied to fields the registry declares optional.
func optional(fn converter) converter {
	return func(raw string) (Value, error) {
		if raw == "" {
			return None(), nil
		}
		return fn(raw)
	}
}

// ConvertString decodes a string field. Empty input yields None
// regardless of optionality: the broker emits attr="" for absent text.
func ConvertString(raw string) (Value, error) {
	if raw == "" {
		return None(), nil
	}
	return Str(raw), nil
}

// ConvertInt decodes a base-10 integer. Empty input fails unless the
// field is optional.
func ConvertInt(raw string) (Value, error) {
	i, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return None(), fmt.Errorf("invalid integer %q", raw)
	}
	return Int(i), nil
}

// ConvertBool decodes the broker's boolean literals. Exactly Y/N/Yes/No
// are legal; case variants and numeric literals fail.
func ConvertBool(raw string) (Value, error) {
	switch raw {
	case "Y", "Yes":
		return Bool(true), nil
	case "N", "No":
		return Bool(false), nil
	}
	return None(), fmt.Errorf("invalid boolean %q", raw)
}

// ConvertDecimal decodes a fixed-point decimal. Thousands-separator
// commas are stripped first: "2,345,678.99" is the exact value
// 2345678.99.
func ConvertDecimal(raw string) (Value, error) {
	if raw == "" {
		return None(), fmt.Errorf("invalid decimal %q", raw)
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return None(), fmt.Errorf("invalid decimal %q", raw)
	}
	return Dec(d), nil
}

// dateLayouts are the date formats observed across Flex schema versions,
// tried in order. Go's time parser matches month abbreviations
// case-insensitively, so "29-feb-16" and "29-FEB-16" both succeed, and it
// rejects calendar-invalid dates such as Feb 29 of a non-leap year.
var dateLayouts = []string{
	"20060102",
	"2006-01-02",
	"01/02/2006",
	"01/02/06",
	"02-Jan-06",
}

// timeLayouts are the time-of-day formats. No leap seconds, hour <= 23.
var timeLayouts = []string{
	"150405",
	"15:04:05",
}

// ConvertDate decodes a calendar date in any supported layout.
func ConvertDate(raw string) (Value, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return Date(t.Year(), t.Month(), t.Day()), nil
		}
	}
	return None(), fmt.Errorf("invalid date %q", raw)
}

// ConvertTime decodes a time of day in any supported layout.
func ConvertTime(raw string) (Value, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return Clock(t.Hour(), t.Minute(), t.Second()), nil
		}
	}
	return None(), fmt.Errorf("invalid time %q", raw)
}

// utcOffset matches a trailing numeric UTC offset ("-05:00", "+0100").
// Old exports appended one to ISO datetimes; the offset is ignored and
// the wall-clock value kept.
var utcOffset = regexp.MustCompile(`[+-][0-9]{2}:?[0-9]{2}$`)

// ConvertDateTime decodes a datetime: a date token and an optional time
// token joined by ";", ",", a space, or nothing at all. A bare date
// yields midnight. Two legacy forms are tolerated: an ISO "T" separator
// with a trailing UTC offset (offset dropped), and a comma-plus-space
// separator ("2009-12-23, 20:25:00").
func ConvertDateTime(raw string) (Value, error) {
	if raw == "" {
		return None(), fmt.Errorf("invalid datetime %q", raw)
	}

	// Bare date decodes to midnight. Tried first so that date layouts
	// containing a 'T' (e.g. "29-OCT-16") never hit the ISO split below.
	if v, err := ConvertDate(raw); err == nil {
		return combineDateTime(v, Clock(0, 0, 0)), nil
	}

	// Legacy ISO form: 2010-01-04T15:37:49-05:00.
	if i := strings.IndexByte(raw, 'T'); i > 0 {
		if v, err := parseDateTimePair(raw[:i], utcOffset.ReplaceAllString(raw[i+1:], "")); err == nil {
			return v, nil
		}
	}

	// Explicit separators. TrimSpace on the time token absorbs the
	// legacy ", " variant.
	for _, sep := range []string{";", ",", " "} {
		if i := strings.Index(raw, sep); i > 0 {
			if v, err := parseDateTimePair(raw[:i], strings.TrimSpace(raw[i+1:])); err == nil {
				return v, nil
			}
		}
	}

	// No separator: the date token length is fixed per layout (8, 9, or
	// 10 bytes), the remainder is the time token.
	for _, dlen := range []int{8, 9, 10} {
		if len(raw) <= dlen {
			break
		}
		if v, err := parseDateTimePair(raw[:dlen], raw[dlen:]); err == nil {
			return v, nil
		}
	}

	return None(), fmt.Errorf("invalid datetime %q", raw)
}

func parseDateTimePair(dateTok, timeTok string) (Value, error) {
	d, err := ConvertDate(dateTok)
	if err != nil {
		return None(), err
	}
	t, err := ConvertTime(timeTok)
	if err != nil {
		return None(), err
	}
	return combineDateTime(d, t), nil
}

func combineDateTime(d, t Value) Value {
	return DateTime(
		d.timeVal.Year(), d.timeVal.Month(), d.timeVal.Day(),
		t.timeVal.Hour(), t.timeVal.Minute(), t.timeVal.Second(),
	)
}

// ConvertSequence decodes a delimited string list. Semicolon wins over
// comma when both could apply; an undelimited token is a one-element
// sequence; empty input is an empty sequence, never None.
func ConvertSequence(raw string) (Value, error) {
	if raw == "" {
		return Seq(), nil
	}
	sep := ","
	if strings.Contains(raw, ";") {
		sep = ";"
	}
	return Seq(strings.Split(raw, sep)...), nil
}
