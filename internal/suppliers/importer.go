package suppliers

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockbook-erp/stockbook/internal/suppliers/format"
)

// ImportError collects the validation failures of one rejected row.
type ImportError struct {
	Line   int      `json:"line"`
	Errors []string `json:"errors"`
}

// ImportSummary reports the outcome of a CSV import.
type ImportSummary struct {
	BatchID  string        `json:"batchId"`
	Total    int           `json:"total"`
	Imported int           `json:"imported"`
	Skipped  int           `json:"skipped"`
	Invalid  []ImportError `json:"invalid"`
}

// Import reads a CSV stream, validates each row against the import settings
// and creates the valid ones. Invalid rows are reported per line, never
// aborting the batch.
func (s *Service) Import(ctx context.Context, r io.Reader) (ImportSummary, error) {
	settings := s.settings.Load(ctx)
	summary := ImportSummary{BatchID: uuid.NewString(), Invalid: []ImportError{}}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return summary, fmt.Errorf("read import header: %w", err)
	}
	mapping := mapHeader(header, settings.Import.AutoMapping)

	var dup format.DuplicateFunc
	if settings.Import.DuplicateCheck {
		dup = s.duplicateFunc(ctx)
	}

	line := 1
	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return summary, fmt.Errorf("read import row: %w", err)
		}
		line++

		if settings.Import.SkipEmptyRows && emptyRow(cells) {
			summary.Skipped++
			continue
		}
		summary.Total++

		row := format.Row{}
		for i, cell := range cells {
			if i >= len(mapping) || mapping[i] == "" {
				continue
			}
			if value := strings.TrimSpace(cell); value != "" {
				row[mapping[i]] = value
			}
		}

		result := format.ValidateImportRecord(row, &settings, dup)
		if !result.IsValid {
			summary.Invalid = append(summary.Invalid, ImportError{Line: line, Errors: result.Errors})
			continue
		}

		if _, err := s.Create(ctx, supplierFromRow(row)); err != nil {
			summary.Invalid = append(summary.Invalid, ImportError{Line: line, Errors: []string{err.Error()}})
			continue
		}
		summary.Imported++
	}
	return summary, nil
}

// mapHeader resolves CSV columns to field keys. Without auto-mapping only
// exact field keys (plus the supplier code column) match; with it, labels,
// case, spacing and underscores are tolerated.
func mapHeader(header []string, autoMapping bool) []string {
	mapping := make([]string, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if strings.EqualFold(name, "code") {
			mapping[i] = "code"
			continue
		}
		if autoMapping {
			if field, ok := format.CanonicalField(name); ok {
				mapping[i] = field
			}
			continue
		}
		if field, ok := format.CanonicalField(name); ok && field == name {
			mapping[i] = field
		}
	}
	return mapping
}

func emptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func supplierFromRow(row format.Row) Supplier {
	str := func(field string) string {
		v, _ := row[field].(string)
		return v
	}
	dec := func(field string) decimal.Decimal {
		if v, err := decimal.NewFromString(str(field)); err == nil {
			return v
		}
		return decimal.Zero
	}

	supplier := Supplier{
		Code:          str("code"),
		Name:          str(format.FieldName),
		CompanyName:   str(format.FieldCompanyName),
		Email:         str(format.FieldEmail),
		Phone:         str(format.FieldPhone),
		Website:       str(format.FieldWebsite),
		ContactPerson: str(format.FieldContactPerson),
		PaymentTerms:  str(format.FieldPaymentTerms),
		CreditLimit:   dec(format.FieldCreditLimit),
		Status:        str(format.FieldStatus),
	}
	if supplier.Code == "" {
		supplier.Code = "SUP-" + strings.ToUpper(uuid.NewString()[:8])
	}
	return supplier
}
