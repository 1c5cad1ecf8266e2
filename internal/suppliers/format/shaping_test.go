package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onlyCategories(cats ...string) map[string]bool {
	include := map[string]bool{}
	for _, c := range cats {
		include[c] = true
	}
	return include
}

func TestApplyFormatSettingsEnrichesCopy(t *testing.T) {
	s := Defaults()
	created := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	spent := decimal.NewFromInt(1500)
	rec := Record{
		Name:       "Acme Traders",
		Phone:      "03001234567",
		Address:    &Address{Street: "1 Main St", City: "Lahore", Country: "Pakistan"},
		TotalSpent: &spent,
		CreatedAt:  &created,
	}
	row := RecordRow(rec)
	before := len(row)

	out := ApplyFormatSettings(row, &s)

	// Input row untouched.
	assert.Len(t, row, before)
	assert.Equal(t, "03001234567", row[FieldPhone])

	assert.Equal(t, "+923001234567", out[FieldPhone])
	addr, ok := out[FieldAddress].(Row)
	require.True(t, ok)
	assert.Equal(t, "1 Main St, Lahore, Pakistan", addr["formatted"])
	assert.Equal(t, "1 Main St", addr["street"])
	assert.Equal(t, "₨1,500.00", out["totalSpentFormatted"])
	assert.Equal(t, "06/01/2024", out["createdAtFormatted"])
	// Every original key survives.
	for k := range row {
		assert.Contains(t, out, k)
	}
}

func TestApplyFormatSettingsNilInputs(t *testing.T) {
	s := Defaults()
	assert.Nil(t, ApplyFormatSettings(nil, &s))

	row := Row{FieldName: "Acme"}
	out := ApplyFormatSettings(row, nil)
	assert.Equal(t, row, out)
}

func TestFilterForExportAllowlist(t *testing.T) {
	s := Defaults()
	s.Export.IncludeFields = onlyCategories(CategoryBasicInfo)

	spent := decimal.NewFromInt(1500)
	row := RecordRow(Record{Name: "Acme", TotalSpent: &spent, CustomFields: map[string]string{"x": "1"}})
	out := FilterForExport(row, &s)

	assert.Contains(t, out, FieldName)
	assert.NotContains(t, out, FieldTotalSpent)
	assert.NotContains(t, out, FieldCustomFields)
}

func TestFilterForExportNeverSynthesizes(t *testing.T) {
	s := Defaults()
	s.Export.IncludeFields = onlyCategories(CategoryContactInfo, CategoryAddressInfo)

	out := FilterForExport(RecordRow(Record{Name: "Acme"}), &s)
	assert.NotContains(t, out, FieldContactPerson)
	assert.NotContains(t, out, FieldAddress)
}

func TestGenerateExportData(t *testing.T) {
	s := Defaults()
	s.Export.IncludeFields = onlyCategories(CategoryBasicInfo, CategoryFinancialInfo)

	spent := decimal.NewFromInt(1500)
	limit := decimal.NewFromInt(5000)
	recs := []Record{{
		Name:         "Acme",
		Email:        "a@acme.com",
		TotalSpent:   &spent,
		CreditLimit:  &limit,
		CustomFields: map[string]string{"x": "1"},
	}}

	rows := GenerateExportData(recs, &s)
	require.Len(t, rows, 1)
	out := rows[0]

	assert.Equal(t, "Acme", out[FieldName])
	assert.Equal(t, "a@acme.com", out[FieldEmail])
	assert.Contains(t, out, FieldTotalSpent)
	assert.Contains(t, out, "totalSpentFormatted")
	assert.Contains(t, out, FieldCreditLimit)
	assert.Contains(t, out, "creditLimitFormatted")
	assert.NotContains(t, out, FieldCustomFields)
}

func TestVisibleColumnsOrdering(t *testing.T) {
	s := Defaults()
	s.Display.Columns = map[string]ColumnSetting{
		"b": {Visible: true, Order: 2},
		"a": {Visible: true, Order: 1},
		"c": {Visible: false, Order: 0},
	}
	assert.Equal(t, []string{"a", "b"}, VisibleColumns(&s))
}

func TestVisibleColumnsTieBreak(t *testing.T) {
	s := Defaults()
	s.Display.Columns = map[string]ColumnSetting{
		"b": {Visible: true, Order: 1},
		"a": {Visible: true, Order: 1},
	}
	assert.Equal(t, []string{"a", "b"}, VisibleColumns(&s))
}

func TestColumnConfigNormalizesAutoWidth(t *testing.T) {
	s := Defaults()
	s.Display.Columns = map[string]ColumnSetting{
		"name":   {Visible: true, Width: "auto", Order: 1},
		"status": {Visible: true, Width: "120px", Order: 2},
		"rating": {Visible: false, Width: "auto", Order: 3},
	}
	cfg := ColumnConfig(&s)
	require.Contains(t, cfg, "name")
	assert.Equal(t, "", cfg["name"].Width)
	assert.Equal(t, "120px", cfg["status"].Width)
	assert.NotContains(t, cfg, "rating")
}

func TestExportHeadersMirrorCategoryGating(t *testing.T) {
	s := Defaults()
	s.Export.IncludeFields = onlyCategories(CategoryBasicInfo)

	headers := ExportHeaders(&s)
	assert.Equal(t, "Company Name", headers[FieldCompanyName])
	assert.NotContains(t, headers, FieldTotalSpent)
	assert.NotContains(t, headers, FieldContactPerson)
}

func TestExportFieldsDeterministicOrder(t *testing.T) {
	s := Defaults()
	s.Export.IncludeFields = onlyCategories(CategoryBasicInfo, CategoryFinancialInfo)

	fields := ExportFields(&s)
	assert.Equal(t, []string{
		FieldName, FieldCompanyName, FieldEmail, FieldPhone, FieldWebsite,
		FieldCreditLimit, FieldCurrentBalance, FieldTotalSpent, FieldAverageOrderValue,
	}, fields)
}
