package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateImportRecordRequiredFields(t *testing.T) {
	s := Defaults()
	s.Import.RequiredFields = []string{"name", "email"}

	res := ValidateImportRecord(Row{"name": ""}, &s, nil)
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors, "name is required")
	assert.Contains(t, res.Errors, "email is required")
}

func TestValidateImportRecordErrorOrder(t *testing.T) {
	s := Defaults()
	s.Import.RequiredFields = []string{"name", "email"}

	// Email is present but malformed, so the required check passes and only
	// the format check fires for it.
	res := ValidateImportRecord(Row{"phone": "abc!", "email": "nope"}, &s, nil)
	require.Len(t, res.Errors, 3)
	assert.Equal(t, []string{
		"name is required",
		"Invalid email format",
		"Invalid phone format",
	}, res.Errors)

	// With email absent entirely, the required check fires instead.
	res = ValidateImportRecord(Row{"phone": "abc!"}, &s, nil)
	assert.Equal(t, []string{
		"name is required",
		"email is required",
		"Invalid phone format",
	}, res.Errors)
}

func TestValidateImportRecordEmail(t *testing.T) {
	s := Defaults()
	s.Import.RequiredFields = nil

	res := ValidateImportRecord(Row{"email": "not-an-email"}, &s, nil)
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors, "Invalid email format")

	res = ValidateImportRecord(Row{"email": "a@b.com"}, &s, nil)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
}

func TestValidateImportRecordPhone(t *testing.T) {
	s := Defaults()
	s.Import.RequiredFields = nil

	res := ValidateImportRecord(Row{"phone": "+92 (300) 123-4567"}, &s, nil)
	assert.True(t, res.IsValid)

	res = ValidateImportRecord(Row{"phone": "call me"}, &s, nil)
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors, "Invalid phone format")
}

func TestValidateImportRecordValidationTogglesOff(t *testing.T) {
	s := Defaults()
	s.Import.RequiredFields = nil
	s.Import.EmailValidation = false
	s.Import.PhoneValidation = false

	res := ValidateImportRecord(Row{"email": "nope", "phone": "nope"}, &s, nil)
	assert.True(t, res.IsValid)
}

func TestValidateImportRecordDegenerate(t *testing.T) {
	s := Defaults()
	res := ValidateImportRecord(nil, &s, nil)
	assert.False(t, res.IsValid)
	assert.Equal(t, []string{"Invalid data"}, res.Errors)

	res = ValidateImportRecord(Row{"name": "Acme"}, nil, nil)
	assert.False(t, res.IsValid)
	assert.Equal(t, []string{"Invalid data"}, res.Errors)
}

func TestValidateImportRecordDuplicateHook(t *testing.T) {
	s := Defaults()
	s.Import.RequiredFields = nil
	s.Import.DuplicateCheck = true

	seen := map[string]bool{"a@b.com": true}
	dup := func(field, value string) bool { return field == FieldEmail && seen[value] }

	res := ValidateImportRecord(Row{"email": "a@b.com"}, &s, dup)
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors, "Duplicate record")

	res = ValidateImportRecord(Row{"email": "new@b.com"}, &s, dup)
	assert.True(t, res.IsValid)

	// Hook absent: the flag alone cannot fail a record.
	res = ValidateImportRecord(Row{"email": "a@b.com"}, &s, nil)
	assert.True(t, res.IsValid)
}
