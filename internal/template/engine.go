package template

import (
	"strings"

	"github.com/resumekit/resumekit/internal/domain/document"
)

// Renderer is one layout variant: a deterministic mapping from a document
// snapshot to a full page. Variants never mutate the document.
type Renderer interface {
	Render(doc document.Document) Page
}

// Resolve maps a template selector to its variant. The mapping is total:
// anything unrecognized falls through to the default variant instead of
// failing, so a stale or hand-edited selector still renders.
func Resolve(t document.Template) Renderer {
	switch t {
	case document.TemplateModern:
		return modernVariant{}
	case document.TemplateProfessional:
		return professionalVariant{}
	case document.TemplateCreative:
		return creativeVariant{}
	case document.TemplateMinimal:
		return minimalVariant{}
	default:
		return modernVariant{}
	}
}

// Render resolves the document's own selector and renders it.
func Render(doc document.Document) Page {
	return Resolve(doc.Template).Render(doc)
}

// SkillLevelLabel names a proficiency level for variants that show text
// instead of (or next to) a bar.
func SkillLevelLabel(level int) string {
	switch level {
	case 1:
		return "Novice"
	case 2:
		return "Beginner"
	case 3:
		return "Intermediate"
	case 4:
		return "Advanced"
	case 5:
		return "Expert"
	default:
		return ""
	}
}

// Initials derives up to two uppercase initials from a full name, for the
// profile photo fallback.
func Initials(fullName string) string {
	words := strings.Fields(fullName)
	var b strings.Builder
	for i, w := range words {
		if i >= 2 {
			break
		}
		r := []rune(w)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

// upper uppercases display text for the variants that set names in caps.
func upper(s string) string { return strings.ToUpper(s) }

// orDefault substitutes placeholder copy for blank identity fields, the
// way the original layouts show "Full Name" / "Job Title" in an empty
// editor session.
func orDefault(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

const (
	placeholderName    = "Full Name"
	placeholderTitle   = "Job Title"
	placeholderSummary = "Professional summary goes here..."
)

// contactEntries lists the non-empty contact detail lines in their fixed
// order. Empty fields are omitted entirely.
func contactEntries(info document.PersonalInfo) []string {
	var out []string
	for _, v := range []string{info.Email, info.Phone, info.Address, info.Website, info.LinkedIn, info.GitHub} {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// companyLine formats "Company | Location" with the location omitted when
// empty.
func companyLine(company, location string) string {
	if strings.TrimSpace(location) == "" {
		return company
	}
	return company + " | " + location
}

// experiencePeriod formats the date range, honoring the ongoing marker.
func experiencePeriod(w document.WorkExperience) string {
	end := w.EndDate
	if w.Current {
		end = document.OngoingMarker
	}
	return w.StartDate + " - " + end
}

// degreeLine formats "Degree in Field" with the field omitted when empty.
func degreeLine(e document.Education) string {
	if strings.TrimSpace(e.FieldOfStudy) == "" {
		return e.Degree
	}
	return e.Degree + " in " + e.FieldOfStudy
}
