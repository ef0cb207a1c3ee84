package template

import (
	"strings"

	"github.com/resumekit/resumekit/internal/page"
)

// Wrapping uses an average-glyph-width estimate instead of real font
// metrics so that rendering stays a pure function of the document: the
// same input document produces the same Page on every machine, with no
// dependency on which fonts the rasterizer ends up loading. The drawers
// render whatever lines they are given; a slightly conservative ratio
// keeps estimated lines from overrunning their boxes.
const (
	glyphWidthRatio     = 0.52
	glyphWidthRatioBold = 0.56
)

// estWidth estimates the rendered width of s in mm.
func estWidth(s string, sizePt float64, style FontStyle) float64 {
	ratio := glyphWidthRatio
	if style == FontBold {
		ratio = glyphWidthRatioBold
	}
	return float64(len([]rune(s))) * page.PtToMM(sizePt) * ratio
}

// wrap greedily breaks content into lines no wider than maxW. Words wider
// than the whole line are emitted as-is rather than split mid-word.
// Explicit newlines in the content start a new line.
func wrap(content string, sizePt float64, style FontStyle, maxW float64) []string {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(content, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			candidate := cur + " " + w
			if estWidth(candidate, sizePt, style) > maxW {
				lines = append(lines, cur)
				cur = w
				continue
			}
			cur = candidate
		}
		lines = append(lines, cur)
	}
	return lines
}
