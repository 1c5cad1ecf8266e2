package suppliers

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockbook-erp/stockbook/internal/suppliers/format"
)

func TestWriteCSVHeadersFollowCategoryOrder(t *testing.T) {
	settings := format.Defaults()
	settings.Export.IncludeFields = map[string]bool{
		format.CategoryBasicInfo:    true,
		format.CategoryBusinessInfo: true,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, &settings))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{
		"Name", "Company Name", "Email", "Phone", "Website",
		"Payment Terms", "Status", "Preferred", "Created At",
	}, records[0])
}

func TestWriteCSVCells(t *testing.T) {
	settings := format.Defaults()
	created := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	recs := []format.Record{{
		Name:        "Acme Traders",
		Email:       "info@acme.pk",
		Phone:       "03001234567",
		Address:     &format.Address{Street: "12 Mall Rd", City: "Lahore", Country: "Pakistan"},
		Status:      "active",
		IsPreferred: true,
		CreatedAt:   &created,
		TotalSpent:  decimalPtr(decimal.NewFromInt(1500)),
	}}
	rows := format.GenerateExportData(recs, &settings)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows, &settings))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	header, row := records[0], records[1]
	byHeader := map[string]string{}
	for i, h := range header {
		byHeader[h] = row[i]
	}

	assert.Equal(t, "Acme Traders", byHeader["Name"])
	assert.Equal(t, "+923001234567", byHeader["Phone"])
	assert.Equal(t, "12 Mall Rd, Lahore, Pakistan", byHeader["Address"])
	assert.Equal(t, "yes", byHeader["Preferred"])
	assert.Equal(t, "03/05/2024", byHeader["Created At"])
	assert.Equal(t, "₨1,500.00", byHeader["Total Spent"])
	// Fields absent from the record come out empty, never synthesised.
	assert.Equal(t, "", byHeader["Company Name"])
	assert.Equal(t, "", byHeader["Credit Limit"])
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }
