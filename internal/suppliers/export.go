package suppliers

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockbook-erp/stockbook/internal/suppliers/format"
)

// WriteCSV serialises shaped supplier rows to CSV. Columns follow the fixed
// category order of the enabled export fields; cells prefer the formatted
// companion value when the shaping pass produced one.
func WriteCSV(w io.Writer, rows []format.Row, settings *format.Settings) error {
	fields := format.ExportFields(settings)
	headers := format.ExportHeaders(settings)

	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := make([]string, len(fields))
	for i, field := range fields {
		header[i] = headers[field]
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := make([]string, len(fields))
		for i, field := range fields {
			record[i] = cell(row, field)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func cell(row format.Row, field string) string {
	if v, ok := row[field+"Formatted"].(string); ok {
		return v
	}
	v, ok := row[field]
	if !ok {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case format.Row:
		// Shaped address.
		if formatted, ok := val["formatted"].(string); ok {
			return formatted
		}
		return ""
	case *format.Address:
		return format.AddressText(*val, format.AddressFull)
	case decimal.Decimal:
		return val.StringFixed(2)
	case time.Time:
		return val.Format("2006-01-02")
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "yes"
		}
		return "no"
	case map[string]string:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+"="+val[k])
		}
		return strings.Join(parts, "; ")
	default:
		return fmt.Sprint(val)
	}
}
