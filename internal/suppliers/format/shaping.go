package format

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// Export categories. FilterForExport and ExportHeaders gate fields by these
// keys against Settings.Export.IncludeFields.
const (
	CategoryBasicInfo          = "basicInfo"
	CategoryContactInfo        = "contactInfo"
	CategoryAddressInfo        = "addressInfo"
	CategoryBusinessInfo       = "businessInfo"
	CategoryFinancialInfo      = "financialInfo"
	CategoryPerformanceMetrics = "performanceMetrics"
	CategoryCustomFields       = "customFields"
)

// Field keys used across rows, columns and export headers.
const (
	FieldName              = "name"
	FieldCompanyName       = "companyName"
	FieldEmail             = "email"
	FieldPhone             = "phone"
	FieldWebsite           = "website"
	FieldContactPerson     = "contactPerson"
	FieldAddress           = "address"
	FieldPaymentTerms      = "paymentTerms"
	FieldStatus            = "status"
	FieldIsPreferred       = "isPreferred"
	FieldCreatedAt         = "createdAt"
	FieldCreditLimit       = "creditLimit"
	FieldCurrentBalance    = "currentBalance"
	FieldTotalSpent        = "totalSpent"
	FieldAverageOrderValue = "averageOrderValue"
	FieldTotalPurchases    = "totalPurchases"
	FieldRating            = "rating"
	FieldDeliveryTime      = "deliveryTime"
	FieldQualityRating     = "qualityRating"
	FieldLastPurchaseDate  = "lastPurchaseDate"
	FieldCustomFields      = "customFields"
)

// categoryOrder fixes the category sequence for deterministic export output.
var categoryOrder = []string{
	CategoryBasicInfo,
	CategoryContactInfo,
	CategoryAddressInfo,
	CategoryBusinessInfo,
	CategoryFinancialInfo,
	CategoryPerformanceMetrics,
	CategoryCustomFields,
}

var categoryFields = map[string][]string{
	CategoryBasicInfo:          {FieldName, FieldCompanyName, FieldEmail, FieldPhone, FieldWebsite},
	CategoryContactInfo:        {FieldContactPerson},
	CategoryAddressInfo:        {FieldAddress},
	CategoryBusinessInfo:       {FieldPaymentTerms, FieldStatus, FieldIsPreferred, FieldCreatedAt},
	CategoryFinancialInfo:      {FieldCreditLimit, FieldCurrentBalance, FieldTotalSpent, FieldAverageOrderValue},
	CategoryPerformanceMetrics: {FieldTotalPurchases, FieldRating, FieldDeliveryTime, FieldQualityRating, FieldLastPurchaseDate},
	CategoryCustomFields:       {FieldCustomFields},
}

var fieldLabels = map[string]string{
	FieldName:              "Name",
	FieldCompanyName:       "Company Name",
	FieldEmail:             "Email",
	FieldPhone:             "Phone",
	FieldWebsite:           "Website",
	FieldContactPerson:     "Contact Person",
	FieldAddress:           "Address",
	FieldPaymentTerms:      "Payment Terms",
	FieldStatus:            "Status",
	FieldIsPreferred:       "Preferred",
	FieldCreatedAt:         "Created At",
	FieldCreditLimit:       "Credit Limit",
	FieldCurrentBalance:    "Current Balance",
	FieldTotalSpent:        "Total Spent",
	FieldAverageOrderValue: "Average Order Value",
	FieldTotalPurchases:    "Total Purchases",
	FieldRating:            "Rating",
	FieldDeliveryTime:      "Delivery Time",
	FieldQualityRating:     "Quality Rating",
	FieldLastPurchaseDate:  "Last Purchase",
	FieldCustomFields:      "Custom Fields",
}

// headerIndex resolves normalised header text (field keys and labels alike)
// to canonical field keys, for import auto-mapping.
var headerIndex = func() map[string]string {
	idx := make(map[string]string, 2*len(fieldLabels))
	for field, label := range fieldLabels {
		idx[normalizeHeader(field)] = field
		idx[normalizeHeader(label)] = field
	}
	return idx
}()

func normalizeHeader(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '_', '-':
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// CanonicalField resolves an import column header to its field key,
// tolerating label text, case, spacing, underscore and hyphen differences.
func CanonicalField(header string) (string, bool) {
	field, ok := headerIndex[normalizeHeader(header)]
	return field, ok
}

// ApplyFormatSettings returns a copy of row enriched with display-ready
// values: the phone field is rewritten in the configured style, the address
// gains a "formatted" line, monetary and date fields gain *Formatted
// companions. The input row is never mutated and no key is dropped. A nil
// row or nil settings is a no-op.
func ApplyFormatSettings(row Row, s *Settings) Row {
	if row == nil || s == nil {
		return row
	}
	out := make(Row, len(row)+6)
	for k, v := range row {
		out[k] = v
	}

	if phone, ok := out[FieldPhone].(string); ok && phone != "" {
		out[FieldPhone] = Phone(phone, s.Data.PhoneFormat)
	}
	if addr, ok := out[FieldAddress].(*Address); ok && addr != nil {
		formatted := Row{"formatted": AddressText(*addr, s.Data.AddressFormat)}
		if addr.Street != "" {
			formatted["street"] = addr.Street
		}
		if addr.City != "" {
			formatted["city"] = addr.City
		}
		if addr.State != "" {
			formatted["state"] = addr.State
		}
		if addr.Country != "" {
			formatted["country"] = addr.Country
		}
		if addr.PostalCode != "" {
			formatted["postalCode"] = addr.PostalCode
		}
		out[FieldAddress] = formatted
	}
	if v, ok := out[FieldTotalSpent].(decimal.Decimal); ok {
		out[FieldTotalSpent+"Formatted"] = Currency(v, s.Export.CurrencyCode, s.Data.CurrencyDisplay)
	}
	if v, ok := out[FieldCreditLimit].(decimal.Decimal); ok {
		out[FieldCreditLimit+"Formatted"] = Currency(v, s.Export.CurrencyCode, s.Data.CurrencyDisplay)
	}
	if t, ok := out[FieldCreatedAt].(time.Time); ok {
		out[FieldCreatedAt+"Formatted"] = Date(t, s.Data.DateDisplay)
	}
	if t, ok := out[FieldLastPurchaseDate].(time.Time); ok {
		out[FieldLastPurchaseDate+"Formatted"] = Date(t, s.Data.DateDisplay)
	}
	if n, ok := out[FieldTotalPurchases].(int); ok {
		out[FieldTotalPurchases+"Formatted"] = Number(int64(n), s.Data.NumberDisplay)
	}
	return out
}

// FilterForExport reduces a row to the fields whose category is enabled in
// the export settings. The category map is an allowlist: fields outside it
// are always dropped, and a field only survives when it is present on the
// row (missing data is never synthesised).
func FilterForExport(row Row, s *Settings) Row {
	if row == nil || s == nil {
		return row
	}
	out := Row{}
	for _, cat := range categoryOrder {
		if !s.Export.IncludeFields[cat] {
			continue
		}
		for _, field := range categoryFields[cat] {
			if v, ok := row[field]; ok {
				out[field] = v
			}
		}
	}
	return out
}

// GenerateExportData shapes records for an export writer: each record is
// filtered down to the enabled categories, then enriched with formatted
// values. The result preserves input order.
func GenerateExportData(recs []Record, s *Settings) []Row {
	rows := make([]Row, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, ApplyFormatSettings(FilterForExport(RecordRow(rec), s), s))
	}
	return rows
}

// VisibleColumns returns the visible column keys in ascending display order.
// Equal orders tie-break by key so the result is deterministic.
func VisibleColumns(s *Settings) []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.Display.Columns))
	for key, col := range s.Display.Columns {
		if col.Visible {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		oi, oj := s.Display.Columns[keys[i]].Order, s.Display.Columns[keys[j]].Order
		if oi != oj {
			return oi < oj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// ColumnConfig returns the configuration of every visible column with the
// "auto" width sentinel normalised to the empty string.
func ColumnConfig(s *Settings) map[string]ColumnSetting {
	if s == nil {
		return nil
	}
	out := make(map[string]ColumnSetting)
	for key, col := range s.Display.Columns {
		if !col.Visible {
			continue
		}
		if col.Width == WidthAuto {
			col.Width = ""
		}
		out[key] = col
	}
	return out
}

// ExportHeaders maps each exportable field to its human-readable label,
// mirroring the category gating of FilterForExport.
func ExportHeaders(s *Settings) map[string]string {
	if s == nil {
		return nil
	}
	out := make(map[string]string)
	for _, cat := range categoryOrder {
		if !s.Export.IncludeFields[cat] {
			continue
		}
		for _, field := range categoryFields[cat] {
			out[field] = fieldLabels[field]
		}
	}
	return out
}

// ExportFields returns the enabled export fields in their fixed category
// order, giving export writers a deterministic column sequence.
func ExportFields(s *Settings) []string {
	if s == nil {
		return nil
	}
	var fields []string
	for _, cat := range categoryOrder {
		if !s.Export.IncludeFields[cat] {
			continue
		}
		fields = append(fields, categoryFields[cat]...)
	}
	return fields
}
