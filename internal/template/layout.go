// Package template maps a résumé document to a fixed-aspect page layout.
//
// A variant is a pure function from a document snapshot to a Page: a
// painter-ordered list of drawing primitives positioned in page
// millimetres (210x297, see internal/page). The package never touches an
// output format; the export pipeline decides whether a Page becomes
// pixels or vector PDF operators.
package template

import "github.com/resumekit/resumekit/internal/page"

type RGB struct {
	R, G, B uint8
}

type FontStyle string

const (
	FontRegular FontStyle = ""
	FontBold    FontStyle = "B"
	FontItalic  FontStyle = "I"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Element is one drawing primitive. Elements are drawn in slice order.
type Element interface{ element() }

// Gradient is a horizontal left-to-right linear gradient fill.
type Gradient struct {
	From, To RGB
}

// Box is a filled and/or stroked rectangle, optionally rounded.
type Box struct {
	X, Y, W, H  float64
	Fill        *RGB
	Gradient    *Gradient
	Border      *RGB
	BorderWidth float64
	Radius      float64
}

type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          RGB
}

// Text is a block of pre-wrapped lines. X/Y anchor the top-left of the
// first line; MaxW bounds the block and is the reference edge for right
// and center alignment.
type Text struct {
	X, Y, MaxW float64
	Lines      []string
	SizePt     float64
	Style      FontStyle
	Color      RGB
	Align      Align
	LineH      float64 // vertical advance per line, mm
}

// Image references a raster by source string: either a data URI or a
// remote URL. Drawers that cannot load the source fall back to a filled
// disc/box carrying the initials, mirroring the editor's avatar fallback.
type Image struct {
	X, Y, W, H float64
	Src        string
	Initials   string
	Circle     bool
	BackFill   RGB
}

func (Box) element()   {}
func (Line) element()  {}
func (Text) element()  {}
func (Image) element() {}

// Page is one rendered 210x297 page.
type Page struct {
	Elements []Element
}

func (p *Page) add(elems ...Element) {
	p.Elements = append(p.Elements, elems...)
}

// text wraps content into a Text element at the standard line height and
// returns it together with the block height in mm. Empty content yields a
// zero-line element of zero height; callers usually skip empty fields
// before getting here.
func text(x, y, maxW float64, content string, sizePt float64, style FontStyle, c RGB) (Text, float64) {
	lines := wrap(content, sizePt, style, maxW)
	lh := lineHeight(sizePt)
	return Text{
		X: x, Y: y, MaxW: maxW,
		Lines:  lines,
		SizePt: sizePt,
		Style:  style,
		Color:  c,
		LineH:  lh,
	}, float64(len(lines)) * lh
}

// lineHeight is the vertical advance for a font size, mm.
func lineHeight(sizePt float64) float64 {
	return page.PtToMM(sizePt) * 1.45
}
