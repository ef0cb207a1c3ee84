package export

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/resumekit/resumekit/internal/page"
)

// encodeJPEG encodes the captured bitmap at maximum quality; the only
// lossy pass in the pipeline.
func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 100}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// composePDF embeds the still image into a single 210x297mm page,
// stretched to fill it exactly. No cropping, no extra pages, and stream
// compression stays off so the payload is not recompressed.
func composePDF(jpegData []byte) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: page.WidthMM, Ht: page.HeightMM},
	})
	pdf.SetCompression(false)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "JPG"}
	pdf.RegisterImageOptionsReader("capture", opts, bytes.NewReader(jpegData))
	pdf.ImageOptions("capture", 0, 0, page.WidthMM, page.HeightMM, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename derives the artifact name from the subject's full name, with a
// generic fallback when blank.
func Filename(fullName string) string {
	name := strings.TrimSpace(fullName)
	if name == "" {
		name = "CV"
	}
	return name + ".pdf"
}
