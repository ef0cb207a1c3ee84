package http

import (
	"github.com/resumekit/resumekit/internal/domain/document"
)

// Document DTOs

type DocumentDTO struct {
	PersonalInfo   document.PersonalInfo     `json:"personal_info"`
	Education      []document.Education      `json:"education"`
	WorkExperience []document.WorkExperience `json:"work_experience"`
	Skills         []document.Skill          `json:"skills"`
	Template       string                    `json:"template"`
}

func ToDocumentDTO(d document.Document) DocumentDTO {
	return DocumentDTO{
		PersonalInfo:   d.PersonalInfo,
		Education:      d.Education,
		WorkExperience: d.WorkExperience,
		Skills:         d.Skills,
		Template:       string(d.Template),
	}
}

// UpdatePersonalInfoRequest is a partial merge: absent fields stay as
// they are, present fields overwrite (including present-but-empty).
type UpdatePersonalInfoRequest struct {
	FullName     *string `json:"full_name"`
	JobTitle     *string `json:"job_title"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	Website      *string `json:"website"`
	LinkedIn     *string `json:"linkedin"`
	GitHub       *string `json:"github"`
	Summary      *string `json:"summary"`
	ProfilePhoto *string `json:"profile_photo"`
}

func (r *UpdatePersonalInfoRequest) ToDomainPatch() document.PersonalInfoPatch {
	return document.PersonalInfoPatch{
		FullName:     r.FullName,
		JobTitle:     r.JobTitle,
		Email:        r.Email,
		Phone:        r.Phone,
		Address:      r.Address,
		Website:      r.Website,
		LinkedIn:     r.LinkedIn,
		GitHub:       r.GitHub,
		Summary:      r.Summary,
		ProfilePhoto: r.ProfilePhoto,
	}
}

type EducationRequest struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Description  string `json:"description"`
}

func (r *EducationRequest) ToDomain(id string) document.Education {
	return document.Education{
		ID:           id,
		Institution:  r.Institution,
		Degree:       r.Degree,
		FieldOfStudy: r.FieldOfStudy,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Description:  r.Description,
	}
}

type WorkExperienceRequest struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func (r *WorkExperienceRequest) ToDomain(id string) document.WorkExperience {
	return document.WorkExperience{
		ID:          id,
		Company:     r.Company,
		Position:    r.Position,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Current:     r.Current,
		Location:    r.Location,
		Description: r.Description,
	}
}

type SkillRequest struct {
	Name  string `json:"name" binding:"required"`
	Level int    `json:"level"`
}

func (r *SkillRequest) ToDomain(id string) document.Skill {
	return document.Skill{ID: id, Name: r.Name, Level: r.Level}
}

type SetTemplateRequest struct {
	Template string `json:"template" binding:"required"`
}
