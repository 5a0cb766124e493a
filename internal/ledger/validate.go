package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is a manually keyed line item, before validation. Unlike extracted
// rows, manual entries are single submissions and are held to the business
// rules strictly: any violation rejects the whole entry.
type Entry struct {
	PurchaseDate time.Time       `json:"purchase_date"`
	ItemName     string          `json:"item_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Vendor       string          `json:"vendor,omitempty"`
}

// ValidateEntry checks an entry against the per-field business rules. Every
// rule is evaluated independently and all violations are returned together so
// the user can fix the form in one pass. An empty result means the entry is
// valid.
func ValidateEntry(entry Entry, schema Schema) []string {
	var violations []string

	if len(strings.TrimSpace(entry.ItemName)) < 2 {
		violations = append(violations, "item name must be at least 2 characters")
	}

	if !entry.Quantity.IsPositive() {
		violations = append(violations, "quantity must be greater than zero")
	}

	if entry.UnitPrice.IsNegative() {
		violations = append(violations, "unit price cannot be negative")
	}

	if schema.Has(ColumnVendor) && len(strings.TrimSpace(entry.Vendor)) < 2 {
		violations = append(violations, "vendor name must be at least 2 characters")
	}

	return violations
}
