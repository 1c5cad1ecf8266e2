package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Style tags accepted by the formatter primitives. Unknown tags fall back to
// the documented permissive default rather than erroring.
const (
	ViewTable = "table"
	ViewGrid  = "grid"
	ViewList  = "list"

	PhoneInternational = "international"
	PhoneNational      = "national"

	AddressFull    = "full"
	AddressCompact = "compact"

	CurrencySymbol = "symbol"
	CurrencyCode   = "code"
	CurrencyName   = "name"

	DateShort = "short"
	DateLong  = "long"

	NumberFormatted = "formatted"
	NumberRaw       = "raw"

	// WidthAuto is the sentinel column width meaning "no explicit width".
	WidthAuto = "auto"
)

// countryCallingCode is the dialing prefix assumed for local phone numbers.
const countryCallingCode = "92"

var printer = message.NewPrinter(language.English)

type currencyInfo struct {
	Symbol string
	Name   string
}

var currencyTable = map[string]currencyInfo{
	"PKR": {Symbol: "₨", Name: "Pakistani Rupee"},
	"USD": {Symbol: "$", Name: "US Dollar"},
	"EUR": {Symbol: "€", Name: "Euro"},
	"GBP": {Symbol: "£", Name: "British Pound"},
	"AED": {Symbol: "د.إ", Name: "UAE Dirham"},
	"SAR": {Symbol: "﷼", Name: "Saudi Riyal"},
}

// Phone normalises a raw phone number into the requested dialing style.
// All non-digit characters are stripped first. An unknown style returns the
// raw input untouched.
func Phone(raw, style string) string {
	if raw == "" {
		return ""
	}
	digits := strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, raw)

	switch style {
	case PhoneInternational:
		if digits == "" {
			return ""
		}
		switch {
		case strings.HasPrefix(digits, countryCallingCode):
			return "+" + digits
		case strings.HasPrefix(digits, "0"):
			return "+" + countryCallingCode + digits[1:]
		default:
			return "+" + countryCallingCode + digits
		}
	case PhoneNational:
		if digits == "" {
			return ""
		}
		if strings.HasPrefix(digits, countryCallingCode) {
			return "0" + digits[len(countryCallingCode):]
		}
		if !strings.HasPrefix(digits, "0") {
			return "0" + digits
		}
		return digits
	default:
		return raw
	}
}

// AddressText renders a structured address as a single display line. The
// compact style keeps only city, state and country; everything else behaves
// as the full style. Empty parts are skipped.
func AddressText(a Address, style string) string {
	parts := []string{a.Street, a.City, a.State, a.Country, a.PostalCode}
	if style == AddressCompact {
		parts = []string{a.City, a.State, a.Country}
	}
	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

// Currency renders a monetary amount in the requested display style. The
// symbol, code and name styles use a fixed currency lookup table; the default
// style delegates to the ISO currency formatter.
func Currency(amount decimal.Decimal, code, display string) string {
	code = strings.ToUpper(code)
	grouped := printer.Sprintf("%.2f", amount.InexactFloat64())
	info, known := currencyTable[code]

	switch display {
	case CurrencySymbol:
		if known {
			return info.Symbol + grouped
		}
		return code + " " + grouped
	case CurrencyCode:
		return grouped + " " + code
	case CurrencyName:
		if known {
			return grouped + " " + info.Name
		}
		return grouped + " " + code
	default:
		if unit, err := currency.ParseISO(code); err == nil {
			return printer.Sprintf("%v", currency.Symbol(unit.Amount(amount.InexactFloat64())))
		}
		return grouped + " " + code
	}
}

// Date renders a timestamp in the requested style. The zero time renders as
// an empty string; unknown styles fall back to the short form.
func Date(t time.Time, style string) string {
	if t.IsZero() {
		return ""
	}
	if style == DateLong {
		return t.Format("January 2, 2006")
	}
	return t.Format("01/02/2006")
}

// Number renders an integer count, grouped unless the raw style is requested.
func Number(n int64, style string) string {
	if style == NumberRaw {
		return strconv.FormatInt(n, 10)
	}
	return printer.Sprintf("%d", n)
}
