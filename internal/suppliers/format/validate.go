package format

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]+$`)
)

// Result is the verdict of validating one import candidate.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// DuplicateFunc reports whether a record with the given field value already
// exists. Duplicate detection needs the full existing record set, so the
// predicate is supplied by the caller and only consulted when the
// duplicateCheck setting is on.
type DuplicateFunc func(field, value string) bool

// ValidateImportRecord checks one externally sourced record against the
// import settings. Failures are surfaced as data, never as errors: required
// fields are checked first in their configured order, then email format,
// then phone format, then the duplicate hook.
func ValidateImportRecord(row Row, s *Settings, dup DuplicateFunc) Result {
	if row == nil || s == nil {
		return Result{IsValid: false, Errors: []string{"Invalid data"}}
	}

	errs := []string{}
	for _, field := range s.Import.RequiredFields {
		v, ok := row[field]
		if !ok || v == nil || strings.TrimSpace(fmt.Sprint(v)) == "" {
			errs = append(errs, field+" is required")
		}
	}
	if s.Import.EmailValidation {
		if email, ok := row[FieldEmail].(string); ok && email != "" && !emailPattern.MatchString(email) {
			errs = append(errs, "Invalid email format")
		}
	}
	if s.Import.PhoneValidation {
		if phone, ok := row[FieldPhone].(string); ok && phone != "" && !phonePattern.MatchString(phone) {
			errs = append(errs, "Invalid phone format")
		}
	}
	if s.Import.DuplicateCheck && dup != nil {
		if email, ok := row[FieldEmail].(string); ok && email != "" && dup(FieldEmail, email) {
			errs = append(errs, "Duplicate record")
		}
	}

	return Result{IsValid: len(errs) == 0, Errors: errs}
}
