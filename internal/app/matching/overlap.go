package matching

import (
	"sort"
	"strings"

	"github.com/yigit/internhub/internal/app/models"
)

// OverlapStrategy pairs each student with the faculty whose expertise and
// research interests share the most terms with the student's skills and
// interests. Matching is case-insensitive. Every student receives a mentor:
// with no overlap anywhere, the least-loaded faculty is proposed so load
// still spreads. Capacity biases ties but never blocks a pair.
type OverlapStrategy struct{}

// NewOverlapStrategy creates an OverlapStrategy
func NewOverlapStrategy() *OverlapStrategy {
	return &OverlapStrategy{}
}

// Match implements Strategy. Students are processed in ascending ID order so
// a given population always yields the same proposal.
func (s *OverlapStrategy) Match(students []*models.Student, faculty []*models.FacultyProfile) map[int64]int64 {
	ordered := make([]*models.Student, len(students))
	copy(ordered, students)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	facultyTerms := make(map[int64]map[string]struct{}, len(faculty))
	load := make(map[int64]int, len(faculty))
	for _, f := range faculty {
		facultyTerms[f.ID] = termSet(f.Expertise, f.ResearchInterests)
		load[f.ID] = 0
	}

	proposal := make(map[int64]int64, len(ordered))
	for _, student := range ordered {
		studentTerms := termSet(student.Skills, student.Interests)

		var best *models.FacultyProfile
		bestScore := -1
		for _, f := range faculty {
			score := overlap(studentTerms, facultyTerms[f.ID])
			if best == nil || better(f, score, load, best, bestScore) {
				best = f
				bestScore = score
			}
		}

		proposal[student.ID] = best.ID
		load[best.ID]++
	}

	return proposal
}

// better reports whether candidate beats the current best pick. Higher
// overlap wins; ties prefer faculty still under capacity, then lighter
// proposed load, then lower ID.
func better(candidate *models.FacultyProfile, score int, load map[int64]int, best *models.FacultyProfile, bestScore int) bool {
	if score != bestScore {
		return score > bestScore
	}

	candidateFree := load[candidate.ID] < candidate.MentoringCapacity
	bestFree := load[best.ID] < best.MentoringCapacity
	if candidateFree != bestFree {
		return candidateFree
	}

	if load[candidate.ID] != load[best.ID] {
		return load[candidate.ID] < load[best.ID]
	}

	return candidate.ID < best.ID
}

func termSet(lists ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, term := range list {
			term = strings.ToLower(strings.TrimSpace(term))
			if term != "" {
				set[term] = struct{}{}
			}
		}
	}
	return set
}

func overlap(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	count := 0
	for term := range a {
		if _, ok := b[term]; ok {
			count++
		}
	}
	return count
}
