package models

// ApplicationPatch carries a status transition for one applied-internship
// entry inside a profile update.
type ApplicationPatch struct {
	InternshipID int64             `json:"internshipId"`
	Status       ApplicationStatus `json:"status"`
}

// StudentPatch is the typed partial-update document for a student profile.
// A nil field is absent from the update; list fields replace the stored
// value wholesale when present. The profile-change detector inspects the
// patch against the pre-update snapshot, so the set of fields here is the
// closed world of what an update can touch.
type StudentPatch struct {
	FirstName    *string
	LastName     *string
	Department   *string
	CGPA         *float64
	Availability *Availability
	ResumeURL    *string

	Skills         []string
	Interests      []string
	Achievements   []string
	Certifications []string

	Applications []ApplicationPatch
}

// IsEmpty reports whether the patch carries no fields
func (p *StudentPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Department == nil &&
		p.CGPA == nil && p.Availability == nil && p.ResumeURL == nil &&
		p.Skills == nil && p.Interests == nil && p.Achievements == nil &&
		p.Certifications == nil && len(p.Applications) == 0
}

// ChangedFields lists the names of the fields present in the patch. Used by
// the fallback profile_update notification; identifiers and timestamps are
// not representable in a patch, so nothing needs excluding here.
func (p *StudentPatch) ChangedFields() []string {
	var fields []string
	if p.FirstName != nil {
		fields = append(fields, "firstName")
	}
	if p.LastName != nil {
		fields = append(fields, "lastName")
	}
	if p.Department != nil {
		fields = append(fields, "department")
	}
	if p.CGPA != nil {
		fields = append(fields, "cgpa")
	}
	if p.Availability != nil {
		fields = append(fields, "availability")
	}
	if p.ResumeURL != nil {
		fields = append(fields, "resumeUrl")
	}
	if p.Skills != nil {
		fields = append(fields, "skills")
	}
	if p.Interests != nil {
		fields = append(fields, "interests")
	}
	if p.Achievements != nil {
		fields = append(fields, "achievements")
	}
	if p.Certifications != nil {
		fields = append(fields, "certifications")
	}
	if len(p.Applications) > 0 {
		fields = append(fields, "applications")
	}
	return fields
}
