package ledger

import (
	"os"
	"path/filepath"

	ginkgo "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = ginkgo.Describe("LocalStorage", func() {
	var (
		tempDir string
		storage *LocalStorage
		err     error
	)

	ginkgo.BeforeEach(func() {
		tempDir, err = os.MkdirTemp("", "asset-ledger-storage-*")
		Expect(err).NotTo(HaveOccurred())

		storage, err = NewLocalStorage(filepath.Join(tempDir, "documents"))
		Expect(err).NotTo(HaveOccurred())
	})

	ginkgo.AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	ginkgo.It("creates the archive directory", func() {
		info, err := os.Stat(filepath.Join(tempDir, "documents"))
		Expect(err).NotTo(HaveOccurred())
		Expect(info.IsDir()).To(BeTrue())
	})

	ginkgo.It("saves and retrieves a file", func() {
		path, err := storage.Save("receipt.jpg", []byte("image data"))
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal("receipt.jpg"))

		data, err := storage.Get(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal([]byte("image data")))
	})

	ginkgo.It("deletes a file", func() {
		path, err := storage.Save("receipt.jpg", []byte("image data"))
		Expect(err).NotTo(HaveOccurred())

		Expect(storage.Delete(path)).To(Succeed())

		_, err = storage.Get(path)
		Expect(err).To(HaveOccurred())
	})

	ginkgo.It("errors on a missing file", func() {
		_, err := storage.Get("does-not-exist.jpg")
		Expect(err).To(HaveOccurred())
	})
})
