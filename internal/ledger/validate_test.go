package ledger

import (
	ginkgo "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = ginkgo.Describe("ValidateEntry", func() {
	var entry Entry

	ginkgo.BeforeEach(func() {
		entry = Entry{
			ItemName:  "Portland Cement",
			Quantity:  decimal.NewFromInt(2),
			UnitPrice: decimal.NewFromInt(50000),
			Vendor:    "Building Supply Co",
		}
	})

	ginkgo.It("accepts a valid entry", func() {
		Expect(ValidateEntry(entry, SevenColumn)).To(BeEmpty())
	})

	ginkgo.It("reports every violation, not just the first", func() {
		entry.ItemName = "A"
		entry.Quantity = decimal.Zero
		entry.UnitPrice = decimal.NewFromInt(-1)
		entry.Vendor = "X"

		violations := ValidateEntry(entry, SevenColumn)
		Expect(violations).To(HaveLen(4))
		Expect(violations).To(ConsistOf(
			ContainSubstring("item name"),
			ContainSubstring("quantity"),
			ContainSubstring("unit price"),
			ContainSubstring("vendor"),
		))
	})

	ginkgo.It("reports a short name, zero quantity, and negative price together", func() {
		entry.ItemName = "A"
		entry.Quantity = decimal.Zero
		entry.UnitPrice = decimal.NewFromInt(-1)

		violations := ValidateEntry(entry, SevenColumn)
		Expect(violations).To(HaveLen(3))
	})

	ginkgo.It("rejects an empty item name", func() {
		entry.ItemName = "   "
		Expect(ValidateEntry(entry, SevenColumn)).To(HaveLen(1))
	})

	ginkgo.It("rejects a negative quantity", func() {
		entry.Quantity = decimal.NewFromInt(-3)
		Expect(ValidateEntry(entry, SevenColumn)).To(HaveLen(1))
	})

	ginkgo.It("accepts a zero unit price", func() {
		entry.UnitPrice = decimal.Zero
		Expect(ValidateEntry(entry, SevenColumn)).To(BeEmpty())
	})

	ginkgo.It("skips the vendor rule for schemas without a vendor column", func() {
		entry.Vendor = ""
		Expect(ValidateEntry(entry, FiveColumn)).To(BeEmpty())
	})
})
