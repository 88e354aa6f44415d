// Package matching contains the strategies that pair students with faculty
// mentors. A strategy only proposes pairs; persisting a proposal is the
// assignment service's job.
package matching

import "github.com/yigit/internhub/internal/app/models"

// Strategy produces a proposed studentID -> facultyID mapping. Inputs are
// never empty; the caller rejects empty populations before dispatching.
// Implementations must be deterministic for a given input.
type Strategy interface {
	Match(students []*models.Student, faculty []*models.FacultyProfile) map[int64]int64
}
