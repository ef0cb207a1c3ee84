package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resumekit/resumekit/internal/domain/document"
)

var allTemplates = []document.Template{
	document.TemplateModern,
	document.TemplateProfessional,
	document.TemplateCreative,
	document.TemplateMinimal,
}

// pageText flattens every text line on the page.
func pageText(p Page) string {
	var b strings.Builder
	for _, el := range p.Elements {
		if t, ok := el.(Text); ok {
			for _, line := range t.Lines {
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func sampleDocument() document.Document {
	doc := document.Default()
	doc.PersonalInfo = document.PersonalInfo{
		FullName: "Ada Lovelace",
		JobTitle: "Software Engineer",
		Email:    "ada@example.com",
		Phone:    "+44 20 0000",
		Summary:  "Pioneer of computing.",
	}
	doc.Education = []document.Education{
		{ID: "e1", Institution: "University of London", Degree: "BSc", FieldOfStudy: "Mathematics", StartDate: "1835", EndDate: "1839"},
	}
	doc.WorkExperience = []document.WorkExperience{
		{ID: "w1", Company: "Analytical Engines Ltd", Position: "Programmer", StartDate: "Jan 2020", Current: true},
	}
	doc.Skills = []document.Skill{
		{ID: "s1", Name: "Go", Level: 5},
		{ID: "s2", Name: "SQL", Level: 3},
	}
	return doc
}

func TestResolve_UnknownSelectorFallsBackToDefault(t *testing.T) {
	doc := sampleDocument()

	doc.Template = "holographic"
	fallback := Render(doc)

	doc.Template = document.TemplateModern
	modern := Render(doc)

	assert.Equal(t, modern, fallback)
}

func TestRender_EmptyEducationOmitsSectionInEveryVariant(t *testing.T) {
	doc := sampleDocument()
	doc.Education = nil

	for _, tpl := range allTemplates {
		doc.Template = tpl
		got := pageText(Resolve(tpl).Render(doc))
		assert.NotContains(t, got, "Education", "variant %s", tpl)
	}
}

func TestRender_EmptySkillsOmitsSectionInEveryVariant(t *testing.T) {
	doc := sampleDocument()
	doc.Skills = nil

	for _, tpl := range allTemplates {
		got := pageText(Resolve(tpl).Render(doc))
		assert.NotContains(t, got, "Skills", "variant %s", tpl)
	}
}

func TestRender_EmptyContactFieldsAreOmitted(t *testing.T) {
	doc := sampleDocument()
	doc.PersonalInfo.Email = ""
	doc.PersonalInfo.Website = ""

	for _, tpl := range allTemplates {
		got := pageText(Resolve(tpl).Render(doc))
		assert.NotContains(t, got, "ada@example.com", "variant %s", tpl)
		assert.Contains(t, got, "+44 20 0000", "variant %s", tpl)
	}
}

func TestRender_CurrentExperienceShowsOngoingMarker(t *testing.T) {
	doc := sampleDocument()
	for _, tpl := range allTemplates {
		got := pageText(Resolve(tpl).Render(doc))
		assert.Contains(t, got, "Jan 2020 - Present", "variant %s", tpl)
	}
}

func TestRender_IsDeterministic(t *testing.T) {
	doc := sampleDocument()
	for _, tpl := range allTemplates {
		r := Resolve(tpl)
		assert.Equal(t, r.Render(doc), r.Render(doc), "variant %s", tpl)
	}
}

func TestRender_BlankIdentityUsesPlaceholders(t *testing.T) {
	doc := document.Default()
	got := pageText(Render(doc))
	assert.Contains(t, got, "Full Name")
	assert.Contains(t, got, "Job Title")
}

func TestModern_SkillBarIsLevelFractionOfTrack(t *testing.T) {
	doc := sampleDocument()
	doc.Skills = []document.Skill{{ID: "s1", Name: "Go", Level: 3}}

	p := Resolve(document.TemplateModern).Render(doc)

	// The fill bar immediately follows its track and shares geometry.
	var track, fill *Box
	for i := 0; i < len(p.Elements)-1; i++ {
		b1, ok1 := p.Elements[i].(Box)
		b2, ok2 := p.Elements[i+1].(Box)
		if ok1 && ok2 && b1.Fill != nil && *b1.Fill == gray200 && b2.Fill != nil && *b2.Fill == blue600 && b1.Y == b2.Y {
			track, fill = &b1, &b2
			break
		}
	}
	if assert.NotNil(t, track, "expected a skill track followed by its fill") {
		assert.InDelta(t, track.W*3/5, fill.W, 0.001)
	}
}

func TestSkillLevelLabel(t *testing.T) {
	cases := map[int]string{
		0: "", 1: "Novice", 2: "Beginner", 3: "Intermediate",
		4: "Advanced", 5: "Expert", 6: "",
	}
	for level, want := range cases {
		assert.Equal(t, want, SkillLevelLabel(level))
	}
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AL", Initials("Ada Lovelace"))
	assert.Equal(t, "A", Initials("ada"))
	assert.Equal(t, "AK", Initials("Ada King Byron"))
	assert.Equal(t, "", Initials("   "))
}

func TestWrap_RespectsEstimatedWidth(t *testing.T) {
	lines := wrap("one two three four five six seven eight nine ten", 8, FontRegular, 30)
	assert.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, estWidth(line, 8, FontRegular), 30.0)
	}
}

func TestWrap_EmptyAndNewlines(t *testing.T) {
	assert.Nil(t, wrap("   ", 8, FontRegular, 50))
	assert.Equal(t, []string{"a", "b"}, wrap("a\nb", 8, FontRegular, 50))
}
