package template

import (
	"github.com/resumekit/resumekit/internal/domain/document"
	"github.com/resumekit/resumekit/internal/page"
)

// Modern palette.
var (
	gray900 = RGB{17, 24, 39}
	gray600 = RGB{75, 85, 99}
	gray200 = RGB{229, 231, 235}
	gray50  = RGB{249, 250, 251}
	blue600 = RGB{37, 99, 235}
	blue100 = RGB{219, 234, 254}
)

// modernVariant: two-thirds main column (experience, education) with blue
// accents, one-third skills sidebar with labeled fraction bars, square
// photo in the header.
type modernVariant struct{}

func (modernVariant) Render(doc document.Document) Page {
	var p Page
	info := doc.PersonalInfo

	const margin = 14.0
	const contentW = page.WidthMM - 2*margin

	y := margin

	// Header: identity block left, photo right.
	textW := contentW
	if info.ProfilePhoto != "" {
		const photoSize = 24.0
		p.add(Image{
			X: page.WidthMM - margin - photoSize, Y: y,
			W: photoSize, H: photoSize,
			Src:      info.ProfilePhoto,
			Initials: Initials(info.FullName),
			BackFill: gray200,
		})
		textW = contentW - photoSize - 6
	}

	name, h := text(margin, y, textW, orDefault(info.FullName, placeholderName), 17, FontBold, gray900)
	p.add(name)
	y += h + 1

	title, h := text(margin, y, textW, orDefault(info.JobTitle, placeholderTitle), 11, FontRegular, blue600)
	p.add(title)
	y += h + 1.5

	summary, h := text(margin, y, textW, orDefault(info.Summary, placeholderSummary), 8, FontRegular, gray600)
	p.add(summary)
	y += h + 3

	y = contactRow(&p, margin, y, contactEntries(info), 7.5, gray600, blue600) + 3
	p.add(Line{X1: margin, Y1: y, X2: page.WidthMM - margin, Y2: y, Width: 0.3, Color: gray200})
	y += 5

	// Main column, two thirds.
	mainW := contentW*2/3 - 4
	mainX := margin
	my := y

	my = modernSection(&p, mainX, my, mainW, "Work Experience", len(doc.WorkExperience) > 0, func(sy float64) float64 {
		for _, w := range doc.WorkExperience {
			sy = modernEntry(&p, mainX, sy, mainW,
				w.Position, experiencePeriod(w), companyLine(w.Company, w.Location), w.Description)
		}
		return sy
	})

	modernSection(&p, mainX, my, mainW, "Education", len(doc.Education) > 0, func(sy float64) float64 {
		for _, e := range doc.Education {
			sy = modernEntry(&p, mainX, sy, mainW,
				degreeLine(e), e.StartDate+" - "+e.EndDate, e.Institution, e.Description)
		}
		return sy
	})

	// Skills sidebar, one third.
	if len(doc.Skills) > 0 {
		sideX := margin + contentW*2/3 + 4
		sideW := contentW/3 - 4
		innerX := sideX + 4
		innerW := sideW - 8

		boxH := 11 + float64(len(doc.Skills))*9
		p.add(Box{X: sideX, Y: y, W: sideW, H: boxH, Fill: &gray50, Radius: 1.5})

		sy := y + 4
		head, h := text(innerX, sy, innerW, "Skills", 10, FontBold, gray900)
		p.add(head)
		sy += h + 2

		for _, sk := range doc.Skills {
			nameEl, _ := text(innerX, sy, innerW, sk.Name, 7.5, FontBold, gray900)
			p.add(nameEl)
			label := Text{
				X: innerX, Y: sy, MaxW: innerW,
				Lines:  []string{SkillLevelLabel(sk.Level)},
				SizePt: 7.5, Color: blue600, Align: AlignRight,
				LineH: lineHeight(7.5),
			}
			p.add(label)
			sy += lineHeight(7.5) + 1

			// Continuous fraction bar: level/5 of the track width.
			p.add(Box{X: innerX, Y: sy, W: innerW, H: 1.2, Fill: &gray200, Radius: 0.6})
			frac := float64(sk.Level) / float64(document.SkillLevelMax)
			p.add(Box{X: innerX, Y: sy, W: innerW * frac, H: 1.2, Fill: &blue600, Radius: 0.6})
			sy += 4.5
		}
	}

	return p
}

// modernSection emits a section header with its body when present and
// returns the new cursor. Empty sections leave no trace on the page.
func modernSection(p *Page, x, y, w float64, heading string, present bool, body func(y float64) float64) float64 {
	if !present {
		return y
	}
	p.add(Box{X: x, Y: y + 0.4, W: 1.2, H: 3.4, Fill: &blue600})
	head, h := text(x+3, y, w-3, heading, 10, FontBold, gray900)
	p.add(head)
	y = body(y + h + 2.5)
	return y + 3
}

// modernEntry lays out one dated entry with the blue left border.
func modernEntry(p *Page, x, y, w float64, heading, period, subheading, description string) float64 {
	top := y
	inX := x + 4
	inW := w - 4

	head, h := text(inX, y, inW-30, heading, 8.5, FontBold, gray900)
	p.add(head)
	p.add(Text{
		X: inX, Y: y, MaxW: inW,
		Lines:  []string{period},
		SizePt: 7.5, Color: gray600, Align: AlignRight,
		LineH: lineHeight(7.5),
	})
	y += h + 0.8

	sub, h := text(inX, y, inW, subheading, 8, FontBold, blue600)
	p.add(sub)
	y += h + 0.8

	if description != "" {
		desc, dh := text(inX, y, inW, description, 7.5, FontRegular, gray600)
		p.add(desc)
		y += dh
	}

	p.add(Line{X1: x + 1, Y1: top + 0.5, X2: x + 1, Y2: y, Width: 0.5, Color: blue100})
	return y + 3.5
}

// contactRow lays the non-empty contact entries on one line, each with a
// small accent dot, wrapping to the next row when the line fills up.
// Returns the y just below the last row.
func contactRow(p *Page, x, y float64, entries []string, sizePt float64, textColor, dotColor RGB) float64 {
	if len(entries) == 0 {
		return y
	}
	lh := lineHeight(sizePt)
	cx := x
	for _, e := range entries {
		w := estWidth(e, sizePt, FontRegular) + 2.5
		if cx > x && cx+w > page.WidthMM-x {
			cx = x
			y += lh + 1
		}
		p.add(Box{X: cx, Y: y + lh/2 - 1.1, W: 1.4, H: 1.4, Fill: &dotColor, Radius: 0.7})
		el, _ := text(cx+2.5, y, w, e, sizePt, FontRegular, textColor)
		p.add(el)
		cx += w + 4
	}
	return y + lh
}
