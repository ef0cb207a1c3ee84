package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resumekit/resumekit/internal/domain/document"
)

func str(s string) *string { return &s }

func TestAddSkill_PreservesInsertionOrderAndIdentity(t *testing.T) {
	s := New()

	first := s.AddSkill(document.Skill{Name: "SQL", Level: 3})
	second := s.AddSkill(document.Skill{Name: "Go", Level: 5})

	doc := s.Snapshot()
	if assert.Len(t, doc.Skills, 2) {
		assert.Equal(t, "SQL", doc.Skills[0].Name)
		assert.Equal(t, 3, doc.Skills[0].Level)
		assert.Equal(t, "Go", doc.Skills[1].Name)
		assert.Equal(t, 5, doc.Skills[1].Level)
		assert.Equal(t, first.ID, doc.Skills[0].ID)
		assert.Equal(t, second.ID, doc.Skills[1].ID)
		assert.NotEqual(t, first.ID, second.ID)
	}
}

func TestSkillLevel_ClampedDefensively(t *testing.T) {
	s := New()
	low := s.AddSkill(document.Skill{Name: "Rust", Level: 0})
	high := s.AddSkill(document.Skill{Name: "C", Level: 9})

	assert.Equal(t, 1, low.Level)
	assert.Equal(t, 5, high.Level)

	s.UpdateSkill(document.Skill{ID: low.ID, Name: "Rust", Level: -3})
	assert.Equal(t, 1, s.Snapshot().Skills[0].Level)
}

func TestAddSkill_BlankNameNotAdmitted(t *testing.T) {
	s := New()
	got := s.AddSkill(document.Skill{Name: "   ", Level: 3})

	assert.Empty(t, got.ID)
	assert.Empty(t, s.Snapshot().Skills)
}

func TestRemove_UnknownIDIsNoOp(t *testing.T) {
	s := New()
	s.AddEducation(document.Education{Institution: "MIT"})
	s.AddWorkExperience(document.WorkExperience{Company: "Acme"})
	s.AddSkill(document.Skill{Name: "Go", Level: 4})

	before := s.Snapshot()
	s.RemoveEducation("missing")
	s.RemoveWorkExperience("missing")
	s.RemoveSkill("missing")
	after := s.Snapshot()

	assert.Equal(t, before, after)
}

func TestUpdate_UnknownIDIsNoOp(t *testing.T) {
	s := New()
	s.AddEducation(document.Education{Institution: "MIT"})

	before := s.Snapshot()
	s.UpdateEducation(document.Education{ID: "missing", Institution: "Stanford"})
	assert.Equal(t, before, s.Snapshot())
}

func TestEducation_SurvivorsKeepOrderAndIDsAcrossRemoval(t *testing.T) {
	s := New()
	a := s.AddEducation(document.Education{Institution: "A"})
	b := s.AddEducation(document.Education{Institution: "B"})
	c := s.AddEducation(document.Education{Institution: "C"})

	s.RemoveEducation(b.ID)

	doc := s.Snapshot()
	if assert.Len(t, doc.Education, 2) {
		assert.Equal(t, a.ID, doc.Education[0].ID)
		assert.Equal(t, c.ID, doc.Education[1].ID)
		assert.Equal(t, "A", doc.Education[0].Institution)
		assert.Equal(t, "C", doc.Education[1].Institution)
	}
}

func TestUpdate_ReplacesInPlace(t *testing.T) {
	s := New()
	a := s.AddWorkExperience(document.WorkExperience{Company: "A", Position: "Dev"})
	s.AddWorkExperience(document.WorkExperience{Company: "B", Position: "Ops"})

	s.UpdateWorkExperience(document.WorkExperience{ID: a.ID, Company: "A", Position: "Lead"})

	doc := s.Snapshot()
	assert.Equal(t, "Lead", doc.WorkExperience[0].Position)
	assert.Equal(t, a.ID, doc.WorkExperience[0].ID)
	assert.Equal(t, "B", doc.WorkExperience[1].Company)
}

func TestCurrentWorkExperience_ForcesOngoingMarker(t *testing.T) {
	s := New()

	w := s.AddWorkExperience(document.WorkExperience{
		Company: "Acme", StartDate: "Jan 2020", EndDate: "Dec 2022", Current: true,
	})
	assert.Equal(t, document.OngoingMarker, w.EndDate)
	assert.Equal(t, document.OngoingMarker, s.Snapshot().WorkExperience[0].EndDate)

	// Flipping back does not restore the old end date; the editor has to
	// supply a new one.
	w.Current = false
	w.EndDate = ""
	s.UpdateWorkExperience(w)
	assert.Equal(t, "", s.Snapshot().WorkExperience[0].EndDate)

	s.UpdateWorkExperience(document.WorkExperience{
		ID: w.ID, Company: "Acme", EndDate: "whatever", Current: true,
	})
	assert.Equal(t, document.OngoingMarker, s.Snapshot().WorkExperience[0].EndDate)
}

func TestUpdatePersonalInfo_MergesOnlySuppliedFields(t *testing.T) {
	s := New()
	s.UpdatePersonalInfo(document.PersonalInfoPatch{
		FullName: str("Ada Lovelace"),
		Email:    str("ada@example.com"),
	})
	s.UpdatePersonalInfo(document.PersonalInfoPatch{JobTitle: str("Engineer")})

	info := s.Snapshot().PersonalInfo
	assert.Equal(t, "Ada Lovelace", info.FullName)
	assert.Equal(t, "Engineer", info.JobTitle)
	assert.Equal(t, "ada@example.com", info.Email)

	// Set-to-empty is still an overwrite.
	s.UpdatePersonalInfo(document.PersonalInfoPatch{Email: str("")})
	assert.Equal(t, "", s.Snapshot().PersonalInfo.Email)
	assert.Equal(t, "Ada Lovelace", s.Snapshot().PersonalInfo.FullName)
}

func TestReset_RestoresDocumentedDefault(t *testing.T) {
	s := New()
	s.UpdatePersonalInfo(document.PersonalInfoPatch{FullName: str("Ada")})
	s.AddEducation(document.Education{Institution: "MIT"})
	s.AddSkill(document.Skill{Name: "Go", Level: 5})
	s.SetTemplate(document.TemplateCreative)

	s.Reset()

	assert.Equal(t, document.Default(), s.Snapshot())
}

func TestSubscribe_NotifiedAfterEachCommit(t *testing.T) {
	s := New()
	var seen []document.Document
	unsubscribe := s.Subscribe(func(d document.Document) {
		seen = append(seen, d)
	})

	s.AddSkill(document.Skill{Name: "Go", Level: 4})
	s.SetTemplate(document.TemplateMinimal)

	if assert.Len(t, seen, 2) {
		assert.Len(t, seen[0].Skills, 1)
		assert.Equal(t, document.TemplateMinimal, seen[1].Template)
	}

	unsubscribe()
	s.Reset()
	assert.Len(t, seen, 2)
}

func TestSnapshot_IsNotAliased(t *testing.T) {
	s := New()
	s.AddSkill(document.Skill{Name: "Go", Level: 4})

	snap := s.Snapshot()
	snap.Skills[0].Name = "mutated"
	snap.PersonalInfo.FullName = "mutated"

	assert.Equal(t, "Go", s.Snapshot().Skills[0].Name)
	assert.Equal(t, "", s.Snapshot().PersonalInfo.FullName)
}

func TestRestore_ReplacesWholesaleAndNotifies(t *testing.T) {
	s := New()
	notified := 0
	s.Subscribe(func(document.Document) { notified++ })

	saved := document.Default()
	saved.PersonalInfo.FullName = "Restored"
	saved.Skills = []document.Skill{{ID: "s1", Name: "Go", Level: 5}}

	s.Restore(saved)

	got := s.Snapshot()
	assert.Equal(t, "Restored", got.PersonalInfo.FullName)
	assert.Equal(t, 1, notified)

	// The restored snapshot is copied in, not aliased.
	saved.Skills[0].Name = "mutated"
	assert.Equal(t, "Go", s.Snapshot().Skills[0].Name)
}
