package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/resumekit/resumekit/internal/page"
	"github.com/resumekit/resumekit/internal/template"
)

// Printer is the direct print path: it hands the rendered page straight
// to a native vector composer at the shared page geometry, bypassing the
// bitmap pipeline entirely. Text stays selectable in the result.
type Printer struct{}

// Compose writes the page layout as one vector PDF page.
func (Printer) Compose(pg *template.Page, fullName string) (*Artifact, error) {
	if pg == nil {
		return nil, fmt.Errorf("no rendered page region available")
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: page.WidthMM, Ht: page.HeightMM},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	imageSeq := 0
	for _, el := range pg.Elements {
		switch e := el.(type) {
		case template.Box:
			printBox(pdf, e)
		case template.Line:
			pdf.SetDrawColor(int(e.Color.R), int(e.Color.G), int(e.Color.B))
			pdf.SetLineWidth(e.Width)
			pdf.Line(e.X1, e.Y1, e.X2, e.Y2)
		case template.Text:
			printText(pdf, e)
		case template.Image:
			imageSeq++
			printImage(pdf, e, imageSeq)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write print document: %w", err)
	}
	return &Artifact{
		Filename:    Filename(fullName),
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}

func printBox(pdf *gofpdf.Fpdf, e template.Box) {
	if e.Gradient != nil {
		pdf.LinearGradient(e.X, e.Y, e.W, e.H,
			int(e.Gradient.From.R), int(e.Gradient.From.G), int(e.Gradient.From.B),
			int(e.Gradient.To.R), int(e.Gradient.To.G), int(e.Gradient.To.B),
			0, 0, 1, 0)
		return
	}

	style := ""
	if e.Fill != nil {
		pdf.SetFillColor(int(e.Fill.R), int(e.Fill.G), int(e.Fill.B))
		style = "F"
	}
	if e.Border != nil {
		pdf.SetDrawColor(int(e.Border.R), int(e.Border.G), int(e.Border.B))
		pdf.SetLineWidth(e.BorderWidth)
		style += "D"
	}
	if style == "" {
		return
	}
	if e.Radius > 0 {
		pdf.RoundedRect(e.X, e.Y, e.W, e.H, e.Radius, "1234", style)
	} else {
		pdf.Rect(e.X, e.Y, e.W, e.H, style)
	}
}

func printText(pdf *gofpdf.Fpdf, e template.Text) {
	pdf.SetFont("Helvetica", string(e.Style), e.SizePt)
	pdf.SetTextColor(int(e.Color.R), int(e.Color.G), int(e.Color.B))

	for i, line := range e.Lines {
		baseline := e.Y + float64(i)*e.LineH + e.LineH*0.78
		x := e.X
		switch e.Align {
		case template.AlignRight:
			x = e.X + e.MaxW - pdf.GetStringWidth(line)
		case template.AlignCenter:
			x = e.X + (e.MaxW-pdf.GetStringWidth(line))/2
		}
		pdf.Text(x, baseline, line)
	}
}

// printImage embeds a data-URI photo; anything that cannot be embedded
// becomes the initials fallback so the photo slot never silently
// disappears.
func printImage(pdf *gofpdf.Fpdf, e template.Image, seq int) {
	imageType, data, err := decodeDataURI(e.Src)
	if err != nil {
		printImageFallback(pdf, e)
		return
	}

	if e.Circle {
		pdf.ClipCircle(e.X+e.W/2, e.Y+e.H/2, e.W/2, false)
	} else {
		pdf.ClipRoundedRect(e.X, e.Y, e.W, e.H, e.W*0.08, false)
	}
	name := fmt.Sprintf("profile-%d", seq)
	opts := gofpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	pdf.ImageOptions(name, e.X, e.Y, e.W, e.H, false, opts, 0, "")
	pdf.ClipEnd()
}

func printImageFallback(pdf *gofpdf.Fpdf, e template.Image) {
	pdf.SetFillColor(int(e.BackFill.R), int(e.BackFill.G), int(e.BackFill.B))
	if e.Circle {
		pdf.Circle(e.X+e.W/2, e.Y+e.H/2, e.W/2, "F")
	} else {
		pdf.RoundedRect(e.X, e.Y, e.W, e.H, e.W*0.08, "1234", "F")
	}
	if e.Initials != "" {
		size := e.H * 0.35 / 0.3528 // mm to pt
		pdf.SetFont("Helvetica", "B", size)
		pdf.SetTextColor(255, 255, 255)
		w := pdf.GetStringWidth(e.Initials)
		pdf.Text(e.X+(e.W-w)/2, e.Y+e.H/2+e.H*0.12, e.Initials)
	}
}

// decodeDataURI splits a base64 data URI into a gofpdf image type and raw
// bytes. Remote URLs are not fetched on the print path; the raster
// pipeline is the one that resolves cross-origin content.
func decodeDataURI(src string) (string, []byte, error) {
	if !strings.HasPrefix(src, "data:") {
		return "", nil, fmt.Errorf("not a data URI")
	}
	idx := strings.Index(src, ";base64,")
	if idx < 0 {
		return "", nil, fmt.Errorf("unsupported data URI encoding")
	}

	imageType := "PNG"
	if strings.Contains(src[:idx], "jpeg") || strings.Contains(src[:idx], "jpg") {
		imageType = "JPG"
	}
	raw, err := base64.StdEncoding.DecodeString(src[idx+len(";base64,"):])
	if err != nil {
		return "", nil, err
	}
	return imageType, raw, nil
}
