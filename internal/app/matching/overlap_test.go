package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/internhub/internal/app/models"
)

func student(id int64, skills []string, interests []string) *models.Student {
	return &models.Student{ID: id, Skills: skills, Interests: interests}
}

func faculty(id int64, capacity int, expertise []string, research []string) *models.FacultyProfile {
	return &models.FacultyProfile{
		ID:                id,
		MentoringCapacity: capacity,
		Expertise:         expertise,
		ResearchInterests: research,
		IsAvailable:       true,
	}
}

func TestMatchPicksHighestOverlap(t *testing.T) {
	students := []*models.Student{
		student(1, []string{"Go", "Distributed Systems"}, nil),
		student(2, []string{"Machine Learning"}, []string{"NLP"}),
	}
	mentors := []*models.FacultyProfile{
		faculty(10, 5, []string{"go", "distributed systems"}, nil),
		faculty(20, 5, []string{"machine learning"}, []string{"nlp"}),
	}

	got := NewOverlapStrategy().Match(students, mentors)

	assert.Equal(t, int64(10), got[1])
	assert.Equal(t, int64(20), got[2])
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	students := []*models.Student{
		student(1, []string{"GO", "  sql  "}, nil),
	}
	mentors := []*models.FacultyProfile{
		faculty(10, 5, []string{"go", "SQL"}, nil),
		faculty(20, 5, []string{"biology"}, nil),
	}

	got := NewOverlapStrategy().Match(students, mentors)
	assert.Equal(t, int64(10), got[1])
}

func TestMatchEveryStudentGetsAMentor(t *testing.T) {
	students := []*models.Student{
		student(1, []string{"underwater basket weaving"}, nil),
		student(2, nil, nil),
	}
	mentors := []*models.FacultyProfile{
		faculty(10, 5, []string{"compilers"}, nil),
		faculty(20, 5, []string{"databases"}, nil),
	}

	got := NewOverlapStrategy().Match(students, mentors)
	require.Len(t, got, 2)
	for studentID, facultyID := range got {
		assert.Contains(t, []int64{10, 20}, facultyID, "student %d", studentID)
	}
}

func TestMatchZeroOverlapSpreadsLoad(t *testing.T) {
	students := []*models.Student{
		student(1, nil, nil),
		student(2, nil, nil),
	}
	mentors := []*models.FacultyProfile{
		faculty(10, 5, []string{"compilers"}, nil),
		faculty(20, 5, []string{"databases"}, nil),
	}

	got := NewOverlapStrategy().Match(students, mentors)

	// With no signal anywhere, proposed load decides; the two students
	// land on different mentors.
	assert.NotEqual(t, got[1], got[2])
}

func TestMatchCapacityBiasesTies(t *testing.T) {
	students := []*models.Student{
		student(1, []string{"go"}, nil),
		student(2, []string{"go"}, nil),
	}
	mentors := []*models.FacultyProfile{
		faculty(10, 1, []string{"go"}, nil),
		faculty(20, 5, []string{"go"}, nil),
	}

	got := NewOverlapStrategy().Match(students, mentors)

	// Student 1 takes the lower ID; once mentor 10 is full, the equal-score
	// tie goes to the mentor still under capacity.
	assert.Equal(t, int64(10), got[1])
	assert.Equal(t, int64(20), got[2])
}

func TestMatchCapacityNeverBlocks(t *testing.T) {
	students := []*models.Student{
		student(1, []string{"go"}, nil),
		student(2, []string{"go"}, nil),
		student(3, []string{"go"}, nil),
	}
	mentors := []*models.FacultyProfile{
		faculty(10, 1, []string{"go"}, nil),
		faculty(20, 1, []string{"biology"}, nil),
	}

	got := NewOverlapStrategy().Match(students, mentors)

	// Overlap outranks capacity, so everyone with a go skill still goes to
	// mentor 10 even past its capacity.
	require.Len(t, got, 3)
	assert.Equal(t, int64(10), got[1])
	assert.Equal(t, int64(10), got[2])
	assert.Equal(t, int64(10), got[3])
}

func TestMatchIsDeterministic(t *testing.T) {
	students := []*models.Student{
		student(3, []string{"go", "sql"}, nil),
		student(1, []string{"ml"}, []string{"nlp"}),
		student(2, nil, []string{"go"}),
	}
	mentors := []*models.FacultyProfile{
		faculty(20, 2, []string{"ml", "nlp"}, nil),
		faculty(10, 2, []string{"go"}, []string{"sql"}),
	}

	strategy := NewOverlapStrategy()
	first := strategy.Match(students, mentors)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, strategy.Match(students, mentors))
	}
}

func TestMatchInputOrderDoesNotMatter(t *testing.T) {
	a := []*models.Student{
		student(1, []string{"go"}, nil),
		student(2, []string{"go"}, nil),
	}
	b := []*models.Student{a[1], a[0]}
	mentors := []*models.FacultyProfile{
		faculty(10, 1, []string{"go"}, nil),
		faculty(20, 1, []string{"go"}, nil),
	}

	strategy := NewOverlapStrategy()
	assert.Equal(t, strategy.Match(a, mentors), strategy.Match(b, mentors))
}

func TestMatchTieBreaksOnLowerFacultyID(t *testing.T) {
	students := []*models.Student{student(1, []string{"go"}, nil)}
	mentors := []*models.FacultyProfile{
		faculty(20, 5, []string{"go"}, nil),
		faculty(10, 5, []string{"go"}, nil),
	}

	got := NewOverlapStrategy().Match(students, mentors)
	assert.Equal(t, int64(10), got[1])
}
