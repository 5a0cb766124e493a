package ledger

import (
	"os"
	"path/filepath"

	ginkgo "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = ginkgo.Describe("BoltDB", func() {
	var (
		tempDir string
		dbPath  string
		db      *BoltDB
		err     error
	)

	ginkgo.BeforeEach(func() {
		tempDir, err = os.MkdirTemp("", "asset-ledger-test-*")
		Expect(err).NotTo(HaveOccurred())
		dbPath = filepath.Join(tempDir, "test.db")

		db, err = NewBoltDB(dbPath)
		Expect(err).NotTo(HaveOccurred())
	})

	ginkgo.AfterEach(func() {
		if db != nil {
			db.Close()
		}
		os.RemoveAll(tempDir)
	})

	ginkgo.It("starts empty", func() {
		records, err := db.LoadCommitted()
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(BeEmpty())
	})

	ginkgo.It("round-trips a committed batch in order", func() {
		batch := []Record{testRecord("a"), testRecord("b"), testRecord("c")}
		Expect(db.AppendCommitted(batch)).To(Succeed())

		loaded, err := db.LoadCommitted()
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(HaveLen(3))
		Expect(loaded[0].ItemName).To(Equal("a"))
		Expect(loaded[1].ItemName).To(Equal("b"))
		Expect(loaded[2].ItemName).To(Equal("c"))
	})

	ginkgo.It("preserves typed fields through persistence", func() {
		Expect(db.AppendCommitted([]Record{testRecord("a")})).To(Succeed())

		loaded, err := db.LoadCommitted()
		Expect(err).NotTo(HaveOccurred())
		record := loaded[0]
		Expect(record.PurchaseDate.Format("2006-01-02")).To(Equal("2023-10-15"))
		Expect(record.Quantity.String()).To(Equal("1"))
		Expect(record.TotalPrice.String()).To(Equal("1000"))
		Expect(record.Vendor).To(Equal("Test Store"))
	})

	ginkgo.It("appends across batches in commit order", func() {
		Expect(db.AppendCommitted([]Record{testRecord("a")})).To(Succeed())
		Expect(db.AppendCommitted([]Record{testRecord("b")})).To(Succeed())

		loaded, err := db.LoadCommitted()
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded[0].ItemName).To(Equal("a"))
		Expect(loaded[1].ItemName).To(Equal("b"))
	})

	ginkgo.It("survives reopening the file", func() {
		Expect(db.AppendCommitted([]Record{testRecord("a")})).To(Succeed())
		Expect(db.Close()).To(Succeed())

		db, err = NewBoltDB(dbPath)
		Expect(err).NotTo(HaveOccurred())

		loaded, err := db.LoadCommitted()
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(HaveLen(1))
	})

	ginkgo.It("wipes everything on reset", func() {
		Expect(db.AppendCommitted([]Record{testRecord("a"), testRecord("b")})).To(Succeed())
		Expect(db.ResetCommitted()).To(Succeed())

		loaded, err := db.LoadCommitted()
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(BeEmpty())
	})

	ginkgo.It("accepts appends after a reset", func() {
		Expect(db.AppendCommitted([]Record{testRecord("a")})).To(Succeed())
		Expect(db.ResetCommitted()).To(Succeed())
		Expect(db.AppendCommitted([]Record{testRecord("b")})).To(Succeed())

		loaded, err := db.LoadCommitted()
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(HaveLen(1))
		Expect(loaded[0].ItemName).To(Equal("b"))
	})
})
