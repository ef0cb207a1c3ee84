package document

// OngoingMarker is the literal end date substituted for a work experience
// that is flagged as current.
const OngoingMarker = "Present"

// Template identifies one of the fixed layout variants.
type Template string

const (
	TemplateModern       Template = "modern"
	TemplateProfessional Template = "professional"
	TemplateCreative     Template = "creative"
	TemplateMinimal      Template = "minimal"

	// TemplateDefault is the variant a new document starts with and the
	// fallback for unrecognized selectors.
	TemplateDefault = TemplateModern
)

// PersonalInfo is the singleton identity record of a document. It carries no
// identifier: there is exactly one per document. Updates are partial-field
// merges, so every field is addressable on its own.
type PersonalInfo struct {
	FullName     string `json:"full_name"`
	JobTitle     string `json:"job_title"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Website      string `json:"website"`
	LinkedIn     string `json:"linkedin"`
	GitHub       string `json:"github"`
	Summary      string `json:"summary"`
	ProfilePhoto string `json:"profile_photo"` // binary-encoded raster (data URI) or remote URL
}

type Education struct {
	ID           string `json:"id"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartDate    string `json:"start_date"` // free text, never parsed as a calendar date
	EndDate      string `json:"end_date"`
	Description  string `json:"description"`
}

type WorkExperience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"` // proficiency, closed range [1,5]
}

// Document is the full résumé aggregate. Collections keep insertion order;
// no implicit sorting happens anywhere.
type Document struct {
	PersonalInfo   PersonalInfo     `json:"personal_info"`
	Education      []Education      `json:"education"`
	WorkExperience []WorkExperience `json:"work_experience"`
	Skills         []Skill          `json:"skills"`
	Template       Template         `json:"template"`
}

// Default returns the document every session starts from and that Reset
// restores: blank personal info, empty collections, default template.
func Default() Document {
	return Document{
		Education:      []Education{},
		WorkExperience: []WorkExperience{},
		Skills:         []Skill{},
		Template:       TemplateDefault,
	}
}

// Clone returns a deep copy. The store hands these out so no consumer ever
// aliases the canonical document.
func (d Document) Clone() Document {
	out := d
	out.Education = append([]Education{}, d.Education...)
	out.WorkExperience = append([]WorkExperience{}, d.WorkExperience...)
	out.Skills = append([]Skill{}, d.Skills...)
	return out
}

// SkillLevelMin and SkillLevelMax bound the proficiency scale.
const (
	SkillLevelMin = 1
	SkillLevelMax = 5
)

// ClampSkillLevel coerces a proficiency value into the [1,5] scale.
func ClampSkillLevel(level int) int {
	if level < SkillLevelMin {
		return SkillLevelMin
	}
	if level > SkillLevelMax {
		return SkillLevelMax
	}
	return level
}
