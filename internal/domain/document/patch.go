package document

// PersonalInfoPatch is a partial PersonalInfo update. Nil fields are left
// untouched by Merge; set fields overwrite, including set-to-empty.
type PersonalInfoPatch struct {
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

// Merge applies the patch onto a copy of p and returns it.
func (p PersonalInfo) Merge(patch PersonalInfoPatch) PersonalInfo {
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&p.FullName, patch.FullName)
	apply(&p.JobTitle, patch.JobTitle)
	apply(&p.Email, patch.Email)
	apply(&p.Phone, patch.Phone)
	apply(&p.Address, patch.Address)
	apply(&p.Website, patch.Website)
	apply(&p.LinkedIn, patch.LinkedIn)
	apply(&p.GitHub, patch.GitHub)
	apply(&p.Summary, patch.Summary)
	apply(&p.ProfilePhoto, patch.ProfilePhoto)
	return p
}
