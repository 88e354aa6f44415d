package models

// FacultyProfile defines the mentor profile model based on the 'faculty_profiles' table.
// The list of assigned students is not stored here; it is derived from
// students.assigned_mentor_id, which keeps the two sides of the relation
// consistent and gives assignment set semantics for free.
type FacultyProfile struct {
	ID                int64    `json:"id" db:"id" example:"1"`
	UserID            int64    `json:"userId" db:"user_id" example:"7"`
	Department        string   `json:"department" db:"department" example:"Computer Engineering"`
	Expertise         []string `json:"expertise" db:"expertise"`
	ResearchInterests []string `json:"researchInterests" db:"research_interests"`
	MentoringCapacity int      `json:"mentoringCapacity" db:"mentoring_capacity" example:"5"`
	IsAvailable       bool     `json:"isAvailable" db:"is_available"`

	// Relations (populated when needed)
	User             *User     `json:"user,omitempty"`
	AssignedStudents []Student `json:"assignedStudents,omitempty"`
}
