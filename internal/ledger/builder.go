package ledger

import (
	"fmt"
	"log/slog"
	"strings"
)

// BuildResult is the outcome of converting one extraction response into
// records. Rejected counts lines that looked like data rows but could not be
// converted.
type BuildResult struct {
	Records  []Record `json:"records"`
	Rejected int      `json:"rejected"`
}

// Builder turns the raw text of an extraction response into typed records for
// one configured schema variant.
type Builder struct {
	schema Schema
}

// NewBuilder creates a Builder for the given schema.
func NewBuilder(schema Schema) *Builder {
	return &Builder{schema: schema}
}

// Build parses every line of the raw extraction response. Malformed lines are
// dropped and counted, never fatal: the worst case is an empty batch. A
// numeric field that cannot be coerced drops the whole record rather than
// substituting a zero, so garbage lines never become zero-valued ledger rows.
func Build(schema Schema, raw string) BuildResult {
	return NewBuilder(schema).Build(raw)
}

// Build implements the line-by-line conversion described on the type.
func (b *Builder) Build(raw string) BuildResult {
	var result BuildResult

	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			// Blank filler and markdown fences are not data rows.
			continue
		}

		tokens, ok := parseLine(line, b.schema.Arity())
		if !ok {
			result.Rejected++
			slog.Debug("Dropping malformed line", "line", line)
			continue
		}

		record, err := b.record(tokens)
		if err != nil {
			result.Rejected++
			slog.Debug("Dropping unconvertible line", "line", line, "error", err)
			continue
		}

		if b.schema.DropUnknownItems && record.ItemName == UnknownSentinel {
			result.Rejected++
			continue
		}

		result.Records = append(result.Records, record)
	}

	return result
}

// record assigns the parsed tokens to columns in the schema's order.
func (b *Builder) record(tokens []string) (Record, error) {
	var record Record

	for i, col := range b.schema.Columns {
		token := tokens[i]
		switch col {
		case ColumnDate:
			date, err := parsePurchaseDate(token)
			if err != nil {
				return Record{}, fmt.Errorf("purchase date: %w", err)
			}
			record.PurchaseDate = date
		case ColumnItem:
			record.ItemName = cleanItemName(token)
		case ColumnQuantity:
			quantity, err := coerceNumeric(token)
			if err != nil {
				return Record{}, fmt.Errorf("quantity: %w", err)
			}
			record.Quantity = quantity
		case ColumnUnit:
			unit := strings.TrimSpace(token)
			if unit == "" {
				unit = UnknownSentinel
			}
			record.Unit = unit
		case ColumnUnitPrice:
			price, err := coerceNumeric(token)
			if err != nil {
				return Record{}, fmt.Errorf("unit price: %w", err)
			}
			record.UnitPrice = price
		case ColumnTotalPrice:
			// The extracted total is trusted as-is, not recomputed.
			total, err := coerceNumeric(token)
			if err != nil {
				return Record{}, fmt.Errorf("total price: %w", err)
			}
			record.TotalPrice = total
		case ColumnVendor:
			record.Vendor = strings.TrimSpace(token)
		}
	}

	return record, nil
}
