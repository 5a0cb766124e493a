package extraction

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func encodeTestImage(encode func(buf *bytes.Buffer, img image.Image) error) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	Expect(encode(&buf, img)).To(Succeed())
	return buf.Bytes()
}

var _ = Describe("prepareImageData", func() {
	It("passes PNG uploads through untouched", func() {
		data := encodeTestImage(func(buf *bytes.Buffer, img image.Image) error {
			return png.Encode(buf, img)
		})

		out, mimeType, converted, err := prepareImageData(data, "image/png")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(data))
		Expect(mimeType).To(Equal("image/png"))
		Expect(converted).To(BeFalse())
	})

	It("converts JPEG uploads to PNG", func() {
		data := encodeTestImage(func(buf *bytes.Buffer, img image.Image) error {
			return jpeg.Encode(buf, img, nil)
		})

		out, mimeType, converted, err := prepareImageData(data, "image/jpeg")
		Expect(err).NotTo(HaveOccurred())
		Expect(mimeType).To(Equal("image/png"))
		Expect(converted).To(BeTrue())

		_, err = png.Decode(bytes.NewReader(out))
		Expect(err).NotTo(HaveOccurred())
	})

	It("assumes JPEG when no content type is given", func() {
		data := encodeTestImage(func(buf *bytes.Buffer, img image.Image) error {
			return jpeg.Encode(buf, img, nil)
		})

		_, mimeType, converted, err := prepareImageData(data, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(mimeType).To(Equal("image/png"))
		Expect(converted).To(BeTrue())
	})

	It("rejects garbage bytes", func() {
		_, _, _, err := prepareImageData([]byte("not an image"), "image/jpeg")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("isHEICData", func() {
	heicHeader := func(brand string) []byte {
		return append([]byte{0, 0, 0, 24, 'f', 't', 'y', 'p'}, []byte(brand)...)
	}

	It("recognizes the HEIC brands", func() {
		for _, brand := range []string{"heic", "heif", "mif1", "msf1"} {
			Expect(isHEICData(heicHeader(brand))).To(BeTrue())
		}
	})

	It("rejects other ftyp brands", func() {
		Expect(isHEICData(heicHeader("isom"))).To(BeFalse())
	})

	It("rejects short or non-ftyp data", func() {
		Expect(isHEICData([]byte("short"))).To(BeFalse())
		Expect(isHEICData([]byte("0123456789abcdef"))).To(BeFalse())
	})
})

var _ = Describe("isHEICMimeType", func() {
	It("matches heic and heif variants case-insensitively", func() {
		Expect(isHEICMimeType("image/heic")).To(BeTrue())
		Expect(isHEICMimeType("IMAGE/HEIF")).To(BeTrue())
		Expect(isHEICMimeType(" image/heic-sequence ")).To(BeTrue())
	})

	It("rejects everything else", func() {
		Expect(isHEICMimeType("image/jpeg")).To(BeFalse())
		Expect(isHEICMimeType("")).To(BeFalse())
	})
})
