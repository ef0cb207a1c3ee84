package template

import (
	"github.com/resumekit/resumekit/internal/domain/document"
	"github.com/resumekit/resumekit/internal/page"
)

// minimalVariant: no photo, uppercase headings, restrained slate palette.
// Two-thirds main column, one-third skills column with plain fraction
// bars. The summary gets its own "Profile" section and is simply omitted
// when blank.
type minimalVariant struct{}

func (minimalVariant) Render(doc document.Document) Page {
	var p Page
	info := doc.PersonalInfo

	const margin = 16.0
	contentW := page.WidthMM - 2*margin
	y := margin

	name, h := text(margin, y, contentW, upper(orDefault(info.FullName, placeholderName)), 16, FontBold, slate800)
	p.add(name)
	y += h + 1

	title, h := text(margin, y, contentW, orDefault(info.JobTitle, placeholderTitle), 10, FontRegular, slate600)
	p.add(title)
	y += h + 2.5

	contacts := contactEntries(info)
	if len(contacts) > 0 {
		y = minimalContactRow(&p, margin, y, contacts) + 2
	}
	p.add(Line{X1: margin, Y1: y, X2: page.WidthMM - margin, Y2: y, Width: 0.3, Color: slate200})
	y += 5

	if info.Summary != "" {
		head, hh := text(margin, y, contentW, upper("Profile"), 9, FontBold, slate700)
		p.add(head)
		y += hh + 1.5
		sum, sh := text(margin, y, contentW, info.Summary, 7.5, FontRegular, slate600)
		p.add(sum)
		y += sh + 5
	}

	mainW := contentW*2/3 - 4
	my := y

	my = minimalSection(&p, margin, my, mainW, "Experience", len(doc.WorkExperience) > 0, func(ey float64) float64 {
		for _, w := range doc.WorkExperience {
			ey = minimalEntry(&p, margin, ey, mainW,
				w.Position, experiencePeriod(w), companyLine(w.Company, w.Location), w.Description)
		}
		return ey
	})

	minimalSection(&p, margin, my, mainW, "Education", len(doc.Education) > 0, func(ey float64) float64 {
		for _, e := range doc.Education {
			ey = minimalEntry(&p, margin, ey, mainW,
				degreeLine(e), e.StartDate+" - "+e.EndDate, e.Institution, e.Description)
		}
		return ey
	})

	if len(doc.Skills) > 0 {
		sx := margin + contentW*2/3 + 4
		sw := contentW/3 - 4
		sy := minimalSection(&p, sx, y, sw, "Skills", true, func(ey float64) float64 { return ey })
		// minimalSection adds trailing space for the next section; rewind it.
		sy -= 4
		for _, sk := range doc.Skills {
			el, h := text(sx, sy, sw, sk.Name, 7.5, FontBold, slate800)
			p.add(el)
			sy += h + 1

			p.add(Box{X: sx, Y: sy, W: sw, H: 1.0, Fill: &slate200, Radius: 0.5})
			frac := float64(sk.Level) / float64(document.SkillLevelMax)
			p.add(Box{X: sx, Y: sy, W: sw * frac, H: 1.0, Fill: &slate500, Radius: 0.5})
			sy += 4.5
		}
	}

	return p
}

func minimalContactRow(p *Page, x, y float64, entries []string) float64 {
	const sizePt = 7.5
	lh := lineHeight(sizePt)
	cx := x
	for _, e := range entries {
		w := estWidth(e, sizePt, FontRegular)
		if cx > x && cx+w > page.WidthMM-x {
			cx = x
			y += lh + 1
		}
		el, _ := text(cx, y, w+2, e, sizePt, FontRegular, slate600)
		p.add(el)
		cx += w + 6
	}
	return y + lh
}

func minimalSection(p *Page, x, y, w float64, heading string, present bool, body func(y float64) float64) float64 {
	if !present {
		return y
	}
	head, h := text(x, y, w, upper(heading), 9, FontBold, slate700)
	p.add(head)
	y = body(y + h + 2)
	return y + 4
}

func minimalEntry(p *Page, x, y, w float64, heading, period, subheading, description string) float64 {
	head, h := text(x, y, w-26, heading, 8.5, FontBold, slate800)
	p.add(head)
	p.add(Text{
		X: x, Y: y, MaxW: w,
		Lines:  []string{period},
		SizePt: 7, Color: slate500, Align: AlignRight,
		LineH: lineHeight(7),
	})
	y += h + 0.8

	sub, h := text(x, y, w, subheading, 8, FontRegular, slate600)
	p.add(sub)
	y += h + 0.8

	if description != "" {
		desc, dh := text(x, y, w, description, 7.5, FontRegular, slate600)
		p.add(desc)
		y += dh
	}
	return y + 3.5
}
