package ledger

import (
	"time"

	ginkgo "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = ginkgo.Describe("Summarize", func() {
	ginkgo.It("handles an empty ledger", func() {
		summary := Summarize(nil)
		Expect(summary.GrandTotal.IsZero()).To(BeTrue())
		Expect(summary.ByVendor).To(BeEmpty())
		Expect(summary.ByUnit).To(BeEmpty())
	})

	ginkgo.It("totals prices and groups by vendor and unit", func() {
		records := []Record{
			{
				PurchaseDate: time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC),
				ItemName:     "Cement",
				Quantity:     decimal.NewFromFloat(1.5),
				Unit:         "kg",
				UnitPrice:    decimal.NewFromInt(50000),
				TotalPrice:   decimal.NewFromInt(75000),
				Vendor:       "Building Supply Co",
			},
			{
				PurchaseDate: time.Date(2023, 10, 16, 0, 0, 0, 0, time.UTC),
				ItemName:     "Sand",
				Quantity:     decimal.NewFromInt(3),
				Unit:         "kg",
				UnitPrice:    decimal.NewFromInt(10000),
				TotalPrice:   decimal.NewFromInt(30000),
				Vendor:       "Building Supply Co",
			},
			{
				PurchaseDate: time.Date(2023, 10, 17, 0, 0, 0, 0, time.UTC),
				ItemName:     "Oreo Vanilla",
				Quantity:     decimal.NewFromInt(38),
				Unit:         "pcs",
				UnitPrice:    decimal.NewFromInt(2000),
				TotalPrice:   decimal.NewFromInt(76000),
				Vendor:       "Minimart",
			},
		}

		summary := Summarize(records)

		Expect(summary.GrandTotal.String()).To(Equal("181000"))
		Expect(summary.ByVendor).To(HaveLen(2))
		Expect(summary.ByVendor["Building Supply Co"].String()).To(Equal("105000"))
		Expect(summary.ByVendor["Minimart"].String()).To(Equal("76000"))
		Expect(summary.ByUnit["kg"].String()).To(Equal("4.5"))
		Expect(summary.ByUnit["pcs"].String()).To(Equal("38"))
	})

	ginkgo.It("skips vendor and unit grouping for blank fields", func() {
		records := []Record{
			{
				ItemName:   "Oreo Vanilla",
				Quantity:   decimal.NewFromInt(1),
				TotalPrice: decimal.NewFromInt(2000),
			},
		}

		summary := Summarize(records)
		Expect(summary.GrandTotal.String()).To(Equal("2000"))
		Expect(summary.ByVendor).To(BeEmpty())
		Expect(summary.ByUnit).To(BeEmpty())
	})
})
