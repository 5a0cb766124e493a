package ledger

import "github.com/shopspring/decimal"

// Summary aggregates the committed ledger for reporting collaborators: the
// grand total of all line items, spend per vendor, and quantity per unit tag.
type Summary struct {
	GrandTotal decimal.Decimal            `json:"grand_total"`
	ByVendor   map[string]decimal.Decimal `json:"by_vendor"`
	ByUnit     map[string]decimal.Decimal `json:"by_unit"`
}

// Summarize computes the report aggregates over a record set.
func Summarize(records []Record) Summary {
	summary := Summary{
		GrandTotal: decimal.Zero,
		ByVendor:   make(map[string]decimal.Decimal),
		ByUnit:     make(map[string]decimal.Decimal),
	}

	for _, r := range records {
		summary.GrandTotal = summary.GrandTotal.Add(r.TotalPrice)
		if r.Vendor != "" {
			summary.ByVendor[r.Vendor] = summary.ByVendor[r.Vendor].Add(r.TotalPrice)
		}
		if r.Unit != "" {
			summary.ByUnit[r.Unit] = summary.ByUnit[r.Unit].Add(r.Quantity)
		}
	}

	return summary
}
