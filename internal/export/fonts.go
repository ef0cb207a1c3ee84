package export

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/resumekit/resumekit/internal/template"
)

// fontSet carries the embedded Go font family used for rasterization, so
// output never depends on fonts installed on the host.
type fontSet struct {
	regular *truetype.Font
	bold    *truetype.Font
	italic  *truetype.Font
}

func loadFonts() (*fontSet, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	italic, err := truetype.Parse(goitalic.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse italic font: %w", err)
	}
	return &fontSet{regular: regular, bold: bold, italic: italic}, nil
}

// face returns a face sized in device pixels.
func (f *fontSet) face(style template.FontStyle, sizePx float64) font.Face {
	ttf := f.regular
	switch style {
	case template.FontBold:
		ttf = f.bold
	case template.FontItalic:
		ttf = f.italic
	}
	return truetype.NewFace(ttf, &truetype.Options{Size: sizePx, DPI: 72})
}
