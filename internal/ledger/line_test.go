package ledger

import (
	ginkgo "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = ginkgo.Describe("parseLine", func() {
	ginkgo.When("the line has exactly the expected number of fields", func() {
		ginkgo.It("returns the trimmed, unquoted tokens", func() {
			tokens, ok := parseLine("'2023-10-15','Oreo Vanilla','38','2000','76000'", 5)
			Expect(ok).To(BeTrue())
			Expect(tokens).To(Equal([]string{"2023-10-15", "Oreo Vanilla", "38", "2000", "76000"}))
		})

		ginkgo.It("trims whitespace around fields", func() {
			tokens, ok := parseLine(" '2023-10-15' , 'Soap' , '1' , '5000' , '5000' ", 5)
			Expect(ok).To(BeTrue())
			Expect(tokens).To(Equal([]string{"2023-10-15", "Soap", "1", "5000", "5000"}))
		})

		ginkgo.It("handles unquoted fields", func() {
			tokens, ok := parseLine("2023-10-15,Soap,1,5000,5000", 5)
			Expect(ok).To(BeTrue())
			Expect(tokens).To(Equal([]string{"2023-10-15", "Soap", "1", "5000", "5000"}))
		})
	})

	ginkgo.When("the item name itself contains commas", func() {
		ginkgo.It("collapses the overflow into the item name", func() {
			tokens, ok := parseLine("'2023-10-15','Oreo, Vanilla, Extra','38','2000','76000'", 5)
			Expect(ok).To(BeTrue())
			Expect(tokens).To(Equal([]string{"2023-10-15", "Oreo Vanilla Extra", "38", "2000", "76000"}))
		})

		ginkgo.It("keeps the positional anchors intact for the seven-column layout", func() {
			tokens, ok := parseLine("'2023-10-15','Cement, Grade A','1.5','kg','50000','75000','Building Supply Co'", 7)
			Expect(ok).To(BeTrue())
			Expect(tokens).To(Equal([]string{"2023-10-15", "Cement Grade A", "1.5", "kg", "50000", "75000", "Building Supply Co"}))
		})
	})

	ginkgo.When("the line has too few fields", func() {
		ginkgo.It("rejects the line without padding", func() {
			_, ok := parseLine("'2023-10-15','Oreo','38','2000'", 5)
			Expect(ok).To(BeFalse())
		})

		ginkgo.It("rejects an empty line", func() {
			_, ok := parseLine("", 5)
			Expect(ok).To(BeFalse())
		})
	})
})
