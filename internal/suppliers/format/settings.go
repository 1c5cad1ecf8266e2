// Package format implements the supplier formatting pipeline: user-configurable
// format settings, display formatting primitives, export shaping and import
// validation. Everything here is pure computation over in-memory values; the
// only I/O lives in Store, which persists the settings blob.
package format

import "encoding/json"

// Settings controls how supplier records are displayed, exported and imported.
// A value obtained through Defaults or Store.Load always has every field
// populated, so consumers never guard against partial settings.
type Settings struct {
	Display DisplaySettings     `json:"displayFormat"`
	Export  ExportSettings      `json:"exportFormat"`
	Import  ImportSettings      `json:"importFormat"`
	Data    DataSettings        `json:"dataFormatting"`
	Custom  CustomFieldSettings `json:"customFields"`
}

// ColumnSetting describes a single column in the supplier table view.
type ColumnSetting struct {
	Visible bool   `json:"visible"`
	Width   string `json:"width"`
	Order   int    `json:"order"`
}

// DisplaySettings holds the table view configuration.
type DisplaySettings struct {
	ViewMode string                   `json:"viewMode"`
	Columns  map[string]ColumnSetting `json:"columns"`
}

// ExportSettings selects which field categories are exported and how values
// are rendered in export files.
type ExportSettings struct {
	DefaultFormat  string          `json:"defaultFormat"`
	IncludeFields  map[string]bool `json:"includeFields"`
	CurrencyCode   string          `json:"currency"`
	DateFormat     string          `json:"dateFormat"`
	CurrencyFormat string          `json:"currencyFormat"`
	NumberFormat   string          `json:"numberFormat"`
}

// ImportSettings configures validation of externally sourced records.
type ImportSettings struct {
	RequiredFields  []string `json:"requiredFields"`
	OptionalFields  []string `json:"optionalFields"`
	EmailValidation bool     `json:"emailValidation"`
	PhoneValidation bool     `json:"phoneValidation"`
	DuplicateCheck  bool     `json:"duplicateCheck"`
	AutoMapping     bool     `json:"autoMapping"`
	SkipEmptyRows   bool     `json:"skipEmptyRows"`
}

// DataSettings holds the atomic formatting style choices.
type DataSettings struct {
	PhoneFormat     string `json:"phoneFormat"`
	AddressFormat   string `json:"addressFormat"`
	CurrencyDisplay string `json:"currencyDisplay"`
	DateDisplay     string `json:"dateDisplay"`
	NumberDisplay   string `json:"numberDisplay"`
}

// CustomFieldSettings describes user-defined supplier fields.
type CustomFieldSettings struct {
	Enabled bool          `json:"enabled"`
	Fields  []CustomField `json:"fields"`
}

// CustomField is a user-defined field descriptor.
type CustomField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// Defaults returns the complete compiled-in settings object. Each call builds
// a fresh value; callers may mutate the result freely.
func Defaults() Settings {
	return Settings{
		Display: DisplaySettings{
			ViewMode: ViewTable,
			Columns: map[string]ColumnSetting{
				"name":        {Visible: true, Width: "auto", Order: 1},
				"companyName": {Visible: true, Width: "auto", Order: 2},
				"email":       {Visible: true, Width: "auto", Order: 3},
				"phone":       {Visible: true, Width: "auto", Order: 4},
				"status":      {Visible: true, Width: "120px", Order: 5},
				"totalSpent":  {Visible: true, Width: "auto", Order: 6},
				"rating":      {Visible: false, Width: "auto", Order: 7},
			},
		},
		Export: ExportSettings{
			DefaultFormat: "csv",
			IncludeFields: map[string]bool{
				CategoryBasicInfo:          true,
				CategoryContactInfo:        true,
				CategoryAddressInfo:        true,
				CategoryBusinessInfo:       true,
				CategoryFinancialInfo:      true,
				CategoryPerformanceMetrics: true,
				CategoryCustomFields:       false,
			},
			CurrencyCode:   "PKR",
			DateFormat:     DateShort,
			CurrencyFormat: CurrencySymbol,
			NumberFormat:   NumberFormatted,
		},
		Import: ImportSettings{
			RequiredFields:  []string{"name", "email"},
			OptionalFields:  []string{"phone", "website", "contactPerson"},
			EmailValidation: true,
			PhoneValidation: true,
			DuplicateCheck:  false,
			AutoMapping:     true,
			SkipEmptyRows:   true,
		},
		Data: DataSettings{
			PhoneFormat:     PhoneInternational,
			AddressFormat:   AddressFull,
			CurrencyDisplay: CurrencySymbol,
			DateDisplay:     DateShort,
			NumberDisplay:   NumberFormatted,
		},
		Custom: CustomFieldSettings{Enabled: false, Fields: []CustomField{}},
	}
}

// Merge decodes a stored settings blob over the defaults. Fields absent from
// the blob keep their default value, map entries merge per key, so blobs saved
// under an older schema still produce a full-shape result. A blob that fails
// to decode yields the plain defaults.
func Merge(data []byte) Settings {
	s := Defaults()
	if err := json.Unmarshal(data, &s); err != nil {
		return Defaults()
	}
	return s
}
