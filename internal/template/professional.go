package template

import (
	"github.com/resumekit/resumekit/internal/domain/document"
	"github.com/resumekit/resumekit/internal/page"
)

// Professional palette (slate).
var (
	slate800 = RGB{30, 41, 59}
	slate700 = RGB{51, 65, 85}
	slate600 = RGB{71, 85, 105}
	slate500 = RGB{100, 116, 139}
	slate300 = RGB{203, 213, 225}
	slate200 = RGB{226, 232, 240}
	slate50  = RGB{248, 250, 252}
	white    = RGB{255, 255, 255}
)

// professionalVariant: full-width dark header with a circular photo, a
// quarter-width sidebar (contact details, skills as five discrete
// segments) and a three-quarter main column.
type professionalVariant struct{}

func (professionalVariant) Render(doc document.Document) Page {
	var p Page
	info := doc.PersonalInfo

	const headerH = 42.0
	p.add(Box{X: 0, Y: 0, W: page.WidthMM, H: headerH, Fill: &slate800})

	textX := 14.0
	if info.ProfilePhoto != "" {
		const photoSize = 26.0
		p.add(Image{
			X: 14, Y: (headerH - photoSize) / 2,
			W: photoSize, H: photoSize,
			Src:      info.ProfilePhoto,
			Initials: Initials(info.FullName),
			Circle:   true,
			BackFill: slate700,
		})
		textX = 14 + photoSize + 6
	}
	textW := page.WidthMM - textX - 14

	y := 9.0
	name, h := text(textX, y, textW, upper(orDefault(info.FullName, placeholderName)), 15, FontBold, white)
	p.add(name)
	y += h + 1

	title, h := text(textX, y, textW, orDefault(info.JobTitle, placeholderTitle), 10, FontRegular, slate300)
	p.add(title)
	y += h + 1

	summary, _ := text(textX, y, textW, orDefault(info.Summary, placeholderSummary), 7.5, FontRegular, slate300)
	p.add(summary)

	// Sidebar.
	const sideW = 54.0
	p.add(Box{X: 0, Y: headerH, W: sideW, H: page.HeightMM - headerH, Fill: &slate50})

	sx := 8.0
	siw := sideW - 16
	sy := headerH + 8

	contacts := contactEntries(info)
	if len(contacts) > 0 {
		sy = professionalSideHeading(&p, sx, sy, siw, "Contact")
		for _, c := range contacts {
			el, h := text(sx, sy, siw, c, 7, FontRegular, slate600)
			p.add(el)
			sy += h + 1.5
		}
		sy += 4
	}

	if len(doc.Skills) > 0 {
		sy = professionalSideHeading(&p, sx, sy, siw, "Skills")
		for _, sk := range doc.Skills {
			el, h := text(sx, sy, siw, sk.Name, 7, FontBold, slate800)
			p.add(el)
			sy += h + 1

			// Five fixed-width segments, level of them filled.
			segW := (siw - 4*1.0) / 5
			for i := 0; i < document.SkillLevelMax; i++ {
				fill := slate300
				if i < sk.Level {
					fill = slate700
				}
				p.add(Box{X: sx + float64(i)*(segW+1.0), Y: sy, W: segW, H: 1.2, Fill: &fill})
			}
			sy += 4.5
		}
	}

	// Main column.
	mx := sideW + 8
	mw := page.WidthMM - mx - 14
	my := headerH + 8

	my = professionalMainSection(&p, mx, my, mw, "Work Experience", len(doc.WorkExperience) > 0, func(ey float64) float64 {
		for _, w := range doc.WorkExperience {
			ey = professionalEntry(&p, mx, ey, mw,
				w.Position, experiencePeriod(w), companyLine(w.Company, w.Location), w.Description)
		}
		return ey
	})

	professionalMainSection(&p, mx, my, mw, "Education", len(doc.Education) > 0, func(ey float64) float64 {
		for _, e := range doc.Education {
			ey = professionalEntry(&p, mx, ey, mw,
				degreeLine(e), e.StartDate+" - "+e.EndDate, e.Institution, e.Description)
		}
		return ey
	})

	return p
}

func professionalSideHeading(p *Page, x, y, w float64, heading string) float64 {
	head, h := text(x, y, w, heading, 8.5, FontBold, slate800)
	p.add(head)
	y += h + 1
	p.add(Line{X1: x, Y1: y, X2: x + w, Y2: y, Width: 0.3, Color: slate300})
	return y + 2.5
}

func professionalMainSection(p *Page, x, y, w float64, heading string, present bool, body func(y float64) float64) float64 {
	if !present {
		return y
	}
	head, h := text(x, y, w, heading, 11, FontBold, slate800)
	p.add(head)
	y += h + 1
	p.add(Line{X1: x, Y1: y, X2: x + w, Y2: y, Width: 0.4, Color: slate800})
	y = body(y + 3)
	return y + 4
}

func professionalEntry(p *Page, x, y, w float64, heading, period, subheading, description string) float64 {
	head, h := text(x, y, w-28, heading, 9, FontBold, slate800)
	p.add(head)
	p.add(Text{
		X: x, Y: y, MaxW: w,
		Lines:  []string{period},
		SizePt: 7.5, Color: slate500, Align: AlignRight,
		LineH: lineHeight(7.5),
	})
	y += h + 0.8

	sub, h := text(x, y, w, subheading, 8, FontItalic, slate600)
	p.add(sub)
	y += h + 0.8

	if description != "" {
		desc, dh := text(x, y, w, description, 7.5, FontRegular, slate600)
		p.add(desc)
		y += dh
	}
	return y + 3.5
}
