package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/internhub/internal/app/matching"
	"github.com/yigit/internhub/internal/app/models"
	"github.com/yigit/internhub/internal/app/models/dto"
	"github.com/yigit/internhub/internal/pkg/apperrors"
)

type fakeStudentStore struct {
	students []*models.Student
	mentors  map[int64]int64 // studentID -> assigned facultyID
	known    map[int64]bool

	assignCalls int
	assignErr   error
}

func newFakeStudentStore(students ...*models.Student) *fakeStudentStore {
	s := &fakeStudentStore{
		students: students,
		mentors:  make(map[int64]int64),
		known:    make(map[int64]bool),
	}
	for _, st := range students {
		s.known[st.ID] = true
		if st.AssignedMentorID != nil {
			s.mentors[st.ID] = *st.AssignedMentorID
		}
	}
	return s
}

func (s *fakeStudentStore) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.students, nil
}

func (s *fakeStudentStore) AssignMentor(ctx context.Context, studentID, facultyID int64) error {
	s.assignCalls++
	if s.assignErr != nil {
		return s.assignErr
	}
	if !s.known[studentID] {
		return apperrors.ErrStudentNotFound
	}
	s.mentors[studentID] = facultyID
	return nil
}

type fakeFacultyStore struct {
	faculty []*models.FacultyProfile
}

func (f *fakeFacultyStore) ListFaculty(ctx context.Context) ([]*models.FacultyProfile, error) {
	return f.faculty, nil
}

func (f *fakeFacultyStore) GetFacultyByID(ctx context.Context, id int64) (*models.FacultyProfile, error) {
	for _, fp := range f.faculty {
		if fp.ID == id {
			return fp, nil
		}
	}
	return nil, apperrors.ErrFacultyNotFound
}

func (f *fakeFacultyStore) CountAssignedStudents(ctx context.Context, facultyID int64) (int64, error) {
	return 0, nil
}

func testStudent(id int64, skills ...string) *models.Student {
	return &models.Student{ID: id, Skills: skills}
}

func testFaculty(id int64, capacity int, expertise ...string) *models.FacultyProfile {
	return &models.FacultyProfile{ID: id, MentoringCapacity: capacity, Expertise: expertise, IsAvailable: true}
}

func TestGenerateProposalEmptyPopulation(t *testing.T) {
	tests := []struct {
		name     string
		students []*models.Student
		faculty  []*models.FacultyProfile
	}{
		{"no students", nil, []*models.FacultyProfile{testFaculty(1, 5, "go")}},
		{"no faculty", []*models.Student{testStudent(1, "go")}, nil},
		{"neither", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			students := newFakeStudentStore(tt.students...)
			svc := NewAssignmentService(students, &fakeFacultyStore{faculty: tt.faculty}, matching.NewOverlapStrategy())

			proposal, err := svc.GenerateProposal(context.Background())
			require.ErrorIs(t, err, apperrors.ErrEmptyPopulation)
			assert.Nil(t, proposal)
			assert.Zero(t, students.assignCalls, "rejection must not touch assignments")
		})
	}
}

func TestGenerateProposalDoesNotPersist(t *testing.T) {
	students := newFakeStudentStore(testStudent(1, "go"), testStudent(2, "ml"))
	faculty := &fakeFacultyStore{faculty: []*models.FacultyProfile{
		testFaculty(1, 5, "go"),
		testFaculty(2, 5, "ml"),
	}}
	svc := NewAssignmentService(students, faculty, matching.NewOverlapStrategy())

	proposal, err := svc.GenerateProposal(context.Background())
	require.NoError(t, err)
	require.Len(t, proposal.Assignments, 2)
	assert.Equal(t, int64(1), proposal.Assignments[1])
	assert.Equal(t, int64(2), proposal.Assignments[2])

	assert.Zero(t, students.assignCalls)
	assert.Empty(t, students.mentors)
}

func TestConfirmAssignmentsPersistsPairs(t *testing.T) {
	students := newFakeStudentStore(testStudent(1), testStudent(2))
	faculty := &fakeFacultyStore{faculty: []*models.FacultyProfile{testFaculty(10, 5)}}
	svc := NewAssignmentService(students, faculty, matching.NewOverlapStrategy())

	resp, err := svc.ConfirmAssignments(context.Background(), map[int64]int64{1: 10, 2: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Confirmed)
	assert.Equal(t, 0, resp.Failed)
	assert.Equal(t, map[int64]int64{1: 10, 2: 10}, students.mentors)
}

func TestConfirmAssignmentsIsIdempotent(t *testing.T) {
	students := newFakeStudentStore(testStudent(1))
	faculty := &fakeFacultyStore{faculty: []*models.FacultyProfile{testFaculty(10, 5)}}
	svc := NewAssignmentService(students, faculty, matching.NewOverlapStrategy())

	mapping := map[int64]int64{1: 10}
	for i := 0; i < 3; i++ {
		resp, err := svc.ConfirmAssignments(context.Background(), mapping)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Confirmed)
	}
	assert.Equal(t, map[int64]int64{1: 10}, students.mentors)
}

func TestConfirmAssignmentsOmittedStudentKeepsMentor(t *testing.T) {
	existing := testStudent(1)
	keep := int64(99)
	existing.AssignedMentorID = &keep

	students := newFakeStudentStore(existing, testStudent(2))
	faculty := &fakeFacultyStore{faculty: []*models.FacultyProfile{testFaculty(10, 5), testFaculty(99, 5)}}
	svc := NewAssignmentService(students, faculty, matching.NewOverlapStrategy())

	_, err := svc.ConfirmAssignments(context.Background(), map[int64]int64{2: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(99), students.mentors[1], "student absent from the mapping keeps its mentor")
	assert.Equal(t, int64(10), students.mentors[2])
}

func TestConfirmAssignmentsReportsPerPairFailures(t *testing.T) {
	students := newFakeStudentStore(testStudent(1))
	faculty := &fakeFacultyStore{faculty: []*models.FacultyProfile{testFaculty(10, 5)}}
	svc := NewAssignmentService(students, faculty, matching.NewOverlapStrategy())

	resp, err := svc.ConfirmAssignments(context.Background(), map[int64]int64{
		1:   10, // fine
		404: 10, // unknown student
		2:   77, // unknown faculty
	})
	require.NoError(t, err, "batch never fails as a whole")
	assert.Equal(t, 1, resp.Confirmed)
	assert.Equal(t, 2, resp.Failed)
	require.Len(t, resp.Results, 3)

	byStudent := make(map[int64]dto.PairResult)
	for _, r := range resp.Results {
		byStudent[r.StudentID] = r
	}
	assert.Equal(t, dto.PairConfirmed, byStudent[1].Status)
	assert.Equal(t, dto.PairStudentNotFound, byStudent[404].Status)
	assert.Equal(t, dto.PairFacultyNotFound, byStudent[2].Status)

	// The good pair still landed
	assert.Equal(t, int64(10), students.mentors[1])
}

func TestConfirmAssignmentsUnexpectedErrorIsFailed(t *testing.T) {
	students := newFakeStudentStore(testStudent(1))
	students.assignErr = errors.New("connection reset")
	faculty := &fakeFacultyStore{faculty: []*models.FacultyProfile{testFaculty(10, 5)}}
	svc := NewAssignmentService(students, faculty, matching.NewOverlapStrategy())

	resp, err := svc.ConfirmAssignments(context.Background(), map[int64]int64{1: 10})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, dto.PairFailed, resp.Results[0].Status)
	assert.Contains(t, resp.Results[0].Error, "connection reset")
}

func TestConfirmAssignmentsEmptyMapping(t *testing.T) {
	students := newFakeStudentStore(testStudent(1))
	faculty := &fakeFacultyStore{faculty: []*models.FacultyProfile{testFaculty(10, 5)}}
	svc := NewAssignmentService(students, faculty, matching.NewOverlapStrategy())

	resp, err := svc.ConfirmAssignments(context.Background(), map[int64]int64{})
	require.NoError(t, err)
	assert.Zero(t, resp.Confirmed)
	assert.Zero(t, resp.Failed)
	assert.Empty(t, resp.Results)
}
