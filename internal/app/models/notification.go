package models

import "time"

// Notification defines a mentor notification based on the 'notifications'
// table. Notifications are created by the profile-change detector and only
// ever mutated by read-state toggling; the application never deletes them.
type Notification struct {
	ID          int64            `json:"id" db:"id" example:"1"`
	FacultyID   int64            `json:"facultyId" db:"faculty_id" example:"2"`
	StudentID   int64            `json:"studentId" db:"student_id" example:"3"`
	StudentName string           `json:"studentName" db:"student_name" example:"Jane Doe"` // denormalized snapshot
	Message     string           `json:"message" db:"message"`
	Type        NotificationType `json:"type" db:"type" example:"skill_added"`
	RelatedData map[string]any   `json:"relatedData,omitempty" db:"related_data"`
	IsRead      bool             `json:"isRead" db:"is_read"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`
}
