package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPhone(t *testing.T) {
	assert.Equal(t, "+923001234567", Phone("03001234567", PhoneInternational))
	assert.Equal(t, "+923001234567", Phone("+923001234567", PhoneInternational))
	assert.Equal(t, "+923001234567", Phone("3001234567", PhoneInternational))
	assert.Equal(t, "+923001234567", Phone("0300-123 4567", PhoneInternational))

	assert.Equal(t, "03001234567", Phone("+923001234567", PhoneNational))
	assert.Equal(t, "03001234567", Phone("03001234567", PhoneNational))
	assert.Equal(t, "03001234567", Phone("3001234567", PhoneNational))
}

func TestPhoneUnknownStyleReturnsInput(t *testing.T) {
	assert.Equal(t, "0300-1234567", Phone("0300-1234567", "e164"))
	// Unknown styles return the input verbatim even when it holds no digits.
	assert.Equal(t, "n/a", Phone("n/a", "e164"))
}

func TestPhoneEmpty(t *testing.T) {
	assert.Equal(t, "", Phone("", PhoneInternational))
	assert.Equal(t, "", Phone("n/a", PhoneInternational))
	assert.Equal(t, "", Phone("n/a", PhoneNational))
}

func TestAddressText(t *testing.T) {
	addr := Address{Street: "1 Main St", City: "Lahore", Country: "Pakistan"}
	assert.Equal(t, "1 Main St, Lahore, Pakistan", AddressText(addr, AddressFull))
	assert.Equal(t, "Lahore, Pakistan", AddressText(addr, AddressCompact))
	// Unknown style behaves as full.
	assert.Equal(t, "1 Main St, Lahore, Pakistan", AddressText(addr, "inline"))
	assert.Equal(t, "", AddressText(Address{}, AddressFull))
}

func TestCurrency(t *testing.T) {
	amount := decimal.NewFromInt(1500)
	assert.Equal(t, "₨1,500.00", Currency(amount, "PKR", CurrencySymbol))
	assert.Equal(t, "1,500.00 PKR", Currency(amount, "PKR", CurrencyCode))
	assert.Equal(t, "1,500.00 Pakistani Rupee", Currency(amount, "PKR", CurrencyName))
	assert.Equal(t, "$1,500.00", Currency(amount, "USD", CurrencySymbol))
}

func TestCurrencyUnknownCode(t *testing.T) {
	amount := decimal.NewFromFloat(99.5)
	assert.Equal(t, "XXX 99.50", Currency(amount, "xxx", CurrencySymbol))
	assert.Equal(t, "99.50 XXX", Currency(amount, "xxx", CurrencyCode))
}

func TestDate(t *testing.T) {
	d := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "03/07/2025", Date(d, DateShort))
	assert.Equal(t, "March 7, 2025", Date(d, DateLong))
	assert.Equal(t, "03/07/2025", Date(d, "iso"))
	assert.Equal(t, "", Date(time.Time{}, DateShort))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "1,234,567", Number(1234567, NumberFormatted))
	assert.Equal(t, "1234567", Number(1234567, NumberRaw))
	assert.Equal(t, "1,234,567", Number(1234567, ""))
}
