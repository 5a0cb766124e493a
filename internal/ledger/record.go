package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// UnknownSentinel is the placeholder the extraction model is instructed to
// emit when a field cannot be read from the document.
const UnknownSentinel = "N/A"

// Column identifies one field of an asset record within a schema.
type Column int

const (
	ColumnDate Column = iota
	ColumnItem
	ColumnQuantity
	ColumnUnit
	ColumnUnitPrice
	ColumnTotalPrice
	ColumnVendor
)

// Header returns the export/display name of the column.
func (c Column) Header() string {
	switch c {
	case ColumnDate:
		return "Purchase Date"
	case ColumnItem:
		return "Item Name"
	case ColumnQuantity:
		return "Quantity"
	case ColumnUnit:
		return "Unit"
	case ColumnUnitPrice:
		return "Unit Price"
	case ColumnTotalPrice:
		return "Total Price"
	case ColumnVendor:
		return "Vendor"
	}
	return ""
}

// Schema describes one tabular variant: the column order the extraction model
// is asked to produce and the per-variant row policies. The two variants are
// a configuration choice, not separate types.
type Schema struct {
	Name    string
	Columns []Column

	// DropUnknownItems drops rows whose item name is the N/A sentinel.
	DropUnknownItems bool
}

// FiveColumn is the compact historical variant without unit and vendor.
var FiveColumn = Schema{
	Name:             "five-column",
	Columns:          []Column{ColumnDate, ColumnItem, ColumnQuantity, ColumnUnitPrice, ColumnTotalPrice},
	DropUnknownItems: true,
}

// SevenColumn adds the unit tag and the vendor name.
var SevenColumn = Schema{
	Name:    "seven-column",
	Columns: []Column{ColumnDate, ColumnItem, ColumnQuantity, ColumnUnit, ColumnUnitPrice, ColumnTotalPrice, ColumnVendor},
}

// Arity returns the number of columns in the schema.
func (s Schema) Arity() int {
	return len(s.Columns)
}

// Headers returns the export header row in column order.
func (s Schema) Headers() []string {
	headers := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		headers[i] = c.Header()
	}
	return headers
}

// Has reports whether the schema carries the given column.
func (s Schema) Has(col Column) bool {
	for _, c := range s.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Record is one validated purchase line item.
type Record struct {
	PurchaseDate time.Time       `json:"purchase_date"`
	ItemName     string          `json:"item_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	Vendor       string          `json:"vendor,omitempty"`
}

// Value returns the record's value for a column as an export cell.
func (r Record) Value(col Column) string {
	switch col {
	case ColumnDate:
		return r.PurchaseDate.Format("2006-01-02")
	case ColumnItem:
		return r.ItemName
	case ColumnQuantity:
		return r.Quantity.String()
	case ColumnUnit:
		return r.Unit
	case ColumnUnitPrice:
		return r.UnitPrice.String()
	case ColumnTotalPrice:
		return r.TotalPrice.String()
	case ColumnVendor:
		return r.Vendor
	}
	return ""
}

// Row returns the record as a flat export row in the schema's column order.
func (r Record) Row(schema Schema) []string {
	row := make([]string, len(schema.Columns))
	for i, c := range schema.Columns {
		row[i] = r.Value(c)
	}
	return row
}

// cleanItemName strips control and quote characters that models sometimes
// leave in free-text fields.
func cleanItemName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || r == '\'' || r == '"' {
			return -1
		}
		return r
	}, name)
	return strings.TrimSpace(cleaned)
}

// purchaseDateFormats lists the date layouts accepted from extracted rows,
// most specific first. The model is asked for ISO dates but does not always
// comply.
var purchaseDateFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
}

// parsePurchaseDate parses an extracted date token.
func parsePurchaseDate(token string) (time.Time, error) {
	token = strings.TrimSpace(token)
	var lastErr error
	for _, format := range purchaseDateFormats {
		t, err := time.Parse(format, token)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
