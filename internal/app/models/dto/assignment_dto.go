package dto

import "github.com/yigit/internhub/internal/app/models"

// ProposalResponse is the generated mentor-assignment proposal. It is not
// persisted; an administrator reviews, possibly edits, and then confirms it.
// The input populations are echoed back so a reviewer can render names and
// skills without a second lookup.
type ProposalResponse struct {
	Assignments map[int64]int64          `json:"assignments"` // studentID -> facultyID
	Students    []*models.Student        `json:"students"`
	Faculty     []*models.FacultyProfile `json:"faculty"`
}

// ConfirmAssignmentsRequest carries the reviewed mapping to persist.
// Keys are student IDs encoded as strings (JSON object keys), values are
// faculty profile IDs.
type ConfirmAssignmentsRequest struct {
	Assignments map[string]int64 `json:"assignments" binding:"required"`
}

// PairStatus is the outcome of confirming a single student/faculty pair
type PairStatus string

const (
	PairConfirmed       PairStatus = "CONFIRMED"
	PairStudentNotFound PairStatus = "STUDENT_NOT_FOUND"
	PairFacultyNotFound PairStatus = "FACULTY_NOT_FOUND"
	PairFailed          PairStatus = "FAILED"
)

// PairResult reports the outcome for one confirmed pair. Confirmation is
// best-effort across the batch; callers inspect results per pair instead of
// getting a single swallowed error.
type PairResult struct {
	StudentID int64      `json:"studentId" example:"3"`
	FacultyID int64      `json:"facultyId" example:"2"`
	Status    PairStatus `json:"status" example:"CONFIRMED"`
	Error     string     `json:"error,omitempty"`
}

// ConfirmAssignmentsResponse summarizes a confirmation batch
type ConfirmAssignmentsResponse struct {
	Results   []PairResult `json:"results"`
	Confirmed int          `json:"confirmed" example:"4"`
	Failed    int          `json:"failed" example:"1"`
}
