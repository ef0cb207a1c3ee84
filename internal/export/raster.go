package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fogleman/gg"

	"github.com/resumekit/resumekit/internal/page"
	"github.com/resumekit/resumekit/internal/template"
)

// Rasterizer turns a page layout into a bitmap at a fixed oversampling
// factor. The background is painted white explicitly: transparency has no
// meaning in the final document.
type Rasterizer struct {
	oversample int
	fonts      *fontSet
	client     *http.Client
}

func NewRasterizer(oversample int) (*Rasterizer, error) {
	if oversample <= 0 {
		oversample = page.DefaultOversample
	}
	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}
	return &Rasterizer{
		oversample: oversample,
		fonts:      fonts,
		client:     &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// Rasterize draws the page. Remote profile images are fetched here (the
// cross-origin case); an image that cannot be loaded is replaced by its
// initials fallback rather than dropped.
func (r *Rasterizer) Rasterize(ctx context.Context, pg *template.Page) (image.Image, error) {
	if pg == nil {
		return nil, fmt.Errorf("no rendered page available")
	}

	w, h := page.PixelSize(r.oversample)
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	px := func(mm float64) float64 { return page.MMToPx(mm, r.oversample) }

	for _, el := range pg.Elements {
		switch e := el.(type) {
		case template.Box:
			r.drawBox(dc, e, px)
		case template.Line:
			dc.SetRGB255(int(e.Color.R), int(e.Color.G), int(e.Color.B))
			dc.SetLineWidth(px(e.Width))
			dc.DrawLine(px(e.X1), px(e.Y1), px(e.X2), px(e.Y2))
			dc.Stroke()
		case template.Text:
			r.drawText(dc, e, px)
		case template.Image:
			r.drawImage(ctx, dc, e, px)
		}
	}

	return dc.Image(), nil
}

func (r *Rasterizer) drawBox(dc *gg.Context, e template.Box, px func(float64) float64) {
	x, y, w, h := px(e.X), px(e.Y), px(e.W), px(e.H)

	path := func() {
		if e.Radius > 0 {
			dc.DrawRoundedRectangle(x, y, w, h, px(e.Radius))
		} else {
			dc.DrawRectangle(x, y, w, h)
		}
	}

	if e.Gradient != nil {
		grad := gg.NewLinearGradient(x, y, x+w, y)
		grad.AddColorStop(0, colorOf(e.Gradient.From))
		grad.AddColorStop(1, colorOf(e.Gradient.To))
		dc.SetFillStyle(grad)
		path()
		dc.Fill()
	} else if e.Fill != nil {
		dc.SetRGB255(int(e.Fill.R), int(e.Fill.G), int(e.Fill.B))
		path()
		dc.Fill()
	}

	if e.Border != nil {
		dc.SetRGB255(int(e.Border.R), int(e.Border.G), int(e.Border.B))
		dc.SetLineWidth(px(e.BorderWidth))
		path()
		dc.Stroke()
	}
}

func (r *Rasterizer) drawText(dc *gg.Context, e template.Text, px func(float64) float64) {
	face := r.fonts.face(e.Style, page.PtToPx(e.SizePt, r.oversample))
	dc.SetFontFace(face)
	dc.SetRGB255(int(e.Color.R), int(e.Color.G), int(e.Color.B))

	for i, line := range e.Lines {
		y := px(e.Y + float64(i)*e.LineH)
		switch e.Align {
		case template.AlignRight:
			dc.DrawStringAnchored(line, px(e.X+e.MaxW), y, 1, 0.85)
		case template.AlignCenter:
			dc.DrawStringAnchored(line, px(e.X+e.MaxW/2), y, 0.5, 0.85)
		default:
			dc.DrawStringAnchored(line, px(e.X), y, 0, 0.85)
		}
	}
}

func (r *Rasterizer) drawImage(ctx context.Context, dc *gg.Context, e template.Image, px func(float64) float64) {
	x, y, w, h := px(e.X), px(e.Y), px(e.W), px(e.H)

	img, err := r.loadImage(ctx, e.Src)
	if err != nil {
		// Fallback disc with initials, same footprint as the photo.
		dc.SetRGB255(int(e.BackFill.R), int(e.BackFill.G), int(e.BackFill.B))
		if e.Circle {
			dc.DrawCircle(x+w/2, y+h/2, w/2)
		} else {
			dc.DrawRoundedRectangle(x, y, w, h, w*0.08)
		}
		dc.Fill()
		if e.Initials != "" {
			dc.SetFontFace(r.fonts.face(template.FontBold, h*0.35))
			dc.SetRGB(1, 1, 1)
			dc.DrawStringAnchored(e.Initials, x+w/2, y+h/2, 0.5, 0.35)
		}
		return
	}

	dc.Push()
	if e.Circle {
		dc.DrawCircle(x+w/2, y+h/2, w/2)
	} else {
		dc.DrawRoundedRectangle(x, y, w, h, w*0.08)
	}
	dc.Clip()

	bounds := img.Bounds()
	dc.Translate(x, y)
	dc.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	dc.DrawImage(img, 0, 0)
	dc.ResetClip()
	dc.Pop()
}

// loadImage resolves an image source: an embedded data URI or a remote
// URL (the profile photo may live on a different origin).
func (r *Rasterizer) loadImage(ctx context.Context, src string) (image.Image, error) {
	switch {
	case strings.HasPrefix(src, "data:"):
		idx := strings.Index(src, ";base64,")
		if idx < 0 {
			return nil, fmt.Errorf("unsupported data URI encoding")
		}
		raw, err := base64.StdEncoding.DecodeString(src[idx+len(";base64,"):])
		if err != nil {
			return nil, fmt.Errorf("decode data URI: %w", err)
		}
		img, _, err := image.Decode(bytes.NewReader(raw))
		return img, err

	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return nil, err
		}
		resp, err := r.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, resp.Body)
			return nil, fmt.Errorf("fetch image: status %d", resp.StatusCode)
		}
		img, _, err := image.Decode(resp.Body)
		return img, err

	default:
		return nil, fmt.Errorf("unsupported image source")
	}
}

func colorOf(c template.RGB) color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
