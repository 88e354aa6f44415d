package dto

// UpdateStudentRequest is the partial-update payload for a student profile.
// Every field is optional; nil means "not part of this update". List fields
// replace the stored list wholesale when present.
type UpdateStudentRequest struct {
	FirstName    *string  `json:"firstName,omitempty" example:"Jane"`
	LastName     *string  `json:"lastName,omitempty" example:"Doe"`
	Department   *string  `json:"department,omitempty" example:"Computer Engineering"`
	CGPA         *float64 `json:"cgpa,omitempty" binding:"omitempty,gte=0,lte=10" example:"8.7"`
	Availability *string  `json:"availability,omitempty" binding:"omitempty,oneof=FULL_TIME PART_TIME UNAVAILABLE"`
	ResumeURL    *string  `json:"resumeUrl,omitempty"`

	Skills         []string `json:"skills,omitempty"`
	Interests      []string `json:"interests,omitempty"`
	Achievements   []string `json:"achievements,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
}

// IsEmpty reports whether the payload carries no fields at all
func (r *UpdateStudentRequest) IsEmpty() bool {
	return r.FirstName == nil && r.LastName == nil && r.Department == nil &&
		r.CGPA == nil && r.Availability == nil && r.ResumeURL == nil &&
		r.Skills == nil && r.Interests == nil && r.Achievements == nil &&
		r.Certifications == nil
}

// ApplyRequest represents a student applying to an internship
type ApplyRequest struct {
	InternshipID int64 `json:"internshipId" binding:"required,gt=0" example:"9"`
}

// UpdateApplicationStatusRequest transitions an application's status
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING ACCEPTED REJECTED" example:"ACCEPTED"`
}
