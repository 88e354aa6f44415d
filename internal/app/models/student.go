package models

// Student defines the student profile model based on the 'students' table
type Student struct {
	ID               int64        `json:"id" db:"id" example:"1"`
	UserID           int64        `json:"userId" db:"user_id" example:"5"`
	Department       string       `json:"department" db:"department" example:"Computer Engineering"`
	CGPA             float64      `json:"cgpa" db:"cgpa" example:"8.4"`
	Availability     Availability `json:"availability" db:"availability" example:"FULL_TIME"`
	ResumeURL        *string      `json:"resumeUrl,omitempty" db:"resume_url"`
	AssignedMentorID *int64       `json:"assignedMentorId,omitempty" db:"assigned_mentor_id"` // at most one mentor at a time
	Skills           []string     `json:"skills" db:"skills"`
	Interests        []string     `json:"interests" db:"interests"`
	Achievements     []string     `json:"achievements" db:"achievements"`
	Certifications   []string     `json:"certifications" db:"certifications"`

	// Relations (populated when needed)
	User         *User         `json:"user,omitempty"`
	Applications []Application `json:"applications,omitempty"`
}
