package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsComplete(t *testing.T) {
	s := Defaults()
	assert.Equal(t, ViewTable, s.Display.ViewMode)
	assert.NotEmpty(t, s.Display.Columns)
	assert.NotEmpty(t, s.Export.IncludeFields)
	assert.NotEmpty(t, s.Import.RequiredFields)
	assert.Equal(t, PhoneInternational, s.Data.PhoneFormat)
	assert.NotNil(t, s.Custom.Fields)
}

func TestMergeFillsMissingKeys(t *testing.T) {
	// A partial blob from an older schema: only one section, one column.
	blob := []byte(`{"displayFormat":{"viewMode":"grid","columns":{"website":{"visible":true,"width":"auto","order":9}}}}`)

	s := Merge(blob)
	defaults := Defaults()

	assert.Equal(t, ViewGrid, s.Display.ViewMode)
	// Stored column merged in, default columns retained.
	require.Contains(t, s.Display.Columns, "website")
	for key := range defaults.Display.Columns {
		assert.Contains(t, s.Display.Columns, key)
	}
	// Untouched sections keep their defaults.
	assert.Equal(t, defaults.Export, s.Export)
	assert.Equal(t, defaults.Import, s.Import)
	assert.Equal(t, defaults.Data, s.Data)
}

func TestMergeCorruptBlobYieldsDefaults(t *testing.T) {
	assert.Equal(t, Defaults(), Merge([]byte("{not json")))
}

func TestMergeOverridesNestedValues(t *testing.T) {
	blob := []byte(`{"dataFormatting":{"phoneFormat":"national"},"importFormat":{"requiredFields":["name"]}}`)
	s := Merge(blob)
	assert.Equal(t, PhoneNational, s.Data.PhoneFormat)
	assert.Equal(t, []string{"name"}, s.Import.RequiredFields)
	// Sibling keys inside a merged section keep defaults.
	assert.Equal(t, AddressFull, s.Data.AddressFormat)
	assert.True(t, s.Import.EmailValidation)
}
