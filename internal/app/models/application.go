package models

import "time"

// Application defines an applied-internship entry based on the
// 'student_applications' table. Entries are append-only: the status may
// change but rows are never removed.
type Application struct {
	ID           int64             `json:"id" db:"id" example:"1"`
	StudentID    int64             `json:"studentId" db:"student_id" example:"3"`
	InternshipID int64             `json:"internshipId" db:"internship_id" example:"9"`
	Status       ApplicationStatus `json:"status" db:"status" example:"PENDING"`
	AppliedAt    time.Time         `json:"appliedAt" db:"applied_at"`

	// Relations (populated when needed)
	Internship *Internship `json:"internship,omitempty"`
}
