package template

import (
	"github.com/resumekit/resumekit/internal/domain/document"
	"github.com/resumekit/resumekit/internal/page"
)

// Creative palette.
var (
	purple600  = RGB{147, 51, 234}
	purple500  = RGB{168, 85, 247}
	blue500    = RGB{59, 130, 246}
	neutral800 = RGB{38, 38, 38}
	neutral600 = RGB{82, 82, 82}
	neutral500 = RGB{115, 115, 115}
	neutral200 = RGB{229, 229, 229}
)

// creativeVariant: gradient hero header with a circular photo, then two
// equal columns of card-style entries; skills as five discrete dots.
type creativeVariant struct{}

func (creativeVariant) Render(doc document.Document) Page {
	var p Page
	info := doc.PersonalInfo

	const headerH = 62.0
	p.add(Box{
		X: 0, Y: 0, W: page.WidthMM, H: headerH,
		Gradient: &Gradient{From: purple600, To: blue500},
	})

	const margin = 14.0
	textW := page.WidthMM - 2*margin
	if info.ProfilePhoto != "" {
		const photoSize = 32.0
		p.add(Image{
			X: page.WidthMM - margin - photoSize, Y: 8,
			W: photoSize, H: photoSize,
			Src:      info.ProfilePhoto,
			Initials: Initials(info.FullName),
			Circle:   true,
			BackFill: purple600,
		})
		textW -= photoSize + 8
	}

	y := 10.0
	name, h := text(margin, y, textW, orDefault(info.FullName, placeholderName), 20, FontBold, white)
	p.add(name)
	y += h + 1.5

	title, h := text(margin, y, textW, orDefault(info.JobTitle, placeholderTitle), 12, FontRegular, white)
	p.add(title)
	y += h + 2

	summary, h := text(margin, y, textW, orDefault(info.Summary, placeholderSummary), 8, FontRegular, white)
	p.add(summary)
	y += h + 3

	contactRow(&p, margin, y, contactEntries(info), 7.5, white, white)

	// Two equal columns under the header.
	colW := (page.WidthMM - 2*margin - 8) / 2
	leftX := margin
	rightX := margin + colW + 8
	topY := headerH + 10

	// Left: work experience, then skills.
	ly := creativeSectionHeading(&p, leftX, topY, colW, "Work Experience", purple600, len(doc.WorkExperience) > 0)
	for _, w := range doc.WorkExperience {
		ly = creativeCard(&p, leftX, ly, colW, purple500,
			w.Position, experiencePeriod(w), companyLine(w.Company, w.Location), w.Description)
	}

	if len(doc.WorkExperience) > 0 {
		ly += 4
	}
	if len(doc.Skills) > 0 {
		ly = creativeSectionHeading(&p, leftX, ly, colW, "Skills", purple600, true)
		cardW := (colW - 4) / 2
		col := 0
		rowY := ly
		for _, sk := range doc.Skills {
			x := leftX + float64(col)*(cardW+4)
			creativeSkillCard(&p, x, rowY, cardW, sk)
			col++
			if col == 2 {
				col = 0
				rowY += 14
			}
		}
	}

	// Right: education.
	ry := creativeSectionHeading(&p, rightX, topY, colW, "Education", blue500, len(doc.Education) > 0)
	for _, e := range doc.Education {
		ry = creativeCard(&p, rightX, ry, colW, blue500,
			degreeLine(e), e.StartDate+" - "+e.EndDate, e.Institution, e.Description)
	}

	return p
}

func creativeSectionHeading(p *Page, x, y, w float64, heading string, c RGB, present bool) float64 {
	if !present {
		return y
	}
	head, h := text(x, y, w, heading, 12, FontBold, c)
	p.add(head)
	return y + h + 3
}

// creativeCard draws one white card with a colored left accent bar.
func creativeCard(p *Page, x, y, w float64, accent RGB, heading, period, subheading, description string) float64 {
	inX := x + 4
	inW := w - 8
	cy := y + 3

	head, h := text(inX, cy, inW, heading, 9, FontBold, neutral800)
	cy += h + 0.8
	per, h2 := text(inX, cy, inW, period, 7, FontRegular, neutral500)
	cy += h2 + 0.8
	sub, h3 := text(inX, cy, inW, subheading, 8, FontBold, accent)
	cy += h3 + 0.8

	var desc Text
	if description != "" {
		var dh float64
		desc, dh = text(inX, cy, inW, description, 7.5, FontRegular, neutral600)
		cy += dh
	}

	cardH := cy - y + 3
	p.add(Box{X: x, Y: y, W: w, H: cardH, Fill: &white, Border: &neutral200, BorderWidth: 0.3, Radius: 1.5})
	p.add(Box{X: x, Y: y, W: 1.4, H: cardH, Fill: &accent})
	p.add(head, per, sub)
	if description != "" {
		p.add(desc)
	}
	return y + cardH + 4
}

// creativeSkillCard draws one skill card with the five-dot level
// indicator.
func creativeSkillCard(p *Page, x, y, w float64, sk document.Skill) {
	p.add(Box{X: x, Y: y, W: w, H: 12, Fill: &white, Border: &neutral200, BorderWidth: 0.3, Radius: 1.5})
	name, _ := text(x+3, y+2.5, w-6, sk.Name, 8, FontBold, neutral800)
	p.add(name)

	dotY := y + 8.2
	for i := 0; i < document.SkillLevelMax; i++ {
		fill := neutral200
		if i < sk.Level {
			fill = purple500
		}
		p.add(Box{X: x + 3 + float64(i)*4.2, Y: dotY, W: 2.2, H: 2.2, Fill: &fill, Radius: 1.1})
	}
}
