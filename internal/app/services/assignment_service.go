package services

import (
	"context"
	"errors"

	"github.com/yigit/internhub/internal/app/matching"
	"github.com/yigit/internhub/internal/app/models"
	"github.com/yigit/internhub/internal/app/models/dto"
	"github.com/yigit/internhub/internal/pkg/apperrors"
	"github.com/yigit/internhub/internal/pkg/logger"
)

// AssignmentService drives mentor assignment: proposal generation and
// confirmation of a reviewed mapping
type AssignmentService interface {
	GenerateProposal(ctx context.Context) (*dto.ProposalResponse, error)
	ConfirmAssignments(ctx context.Context, assignments map[int64]int64) (*dto.ConfirmAssignmentsResponse, error)
}

type studentStore interface {
	ListStudents(ctx context.Context) ([]*models.Student, error)
	AssignMentor(ctx context.Context, studentID, facultyID int64) error
}

type facultyStore interface {
	ListFaculty(ctx context.Context) ([]*models.FacultyProfile, error)
	GetFacultyByID(ctx context.Context, id int64) (*models.FacultyProfile, error)
	CountAssignedStudents(ctx context.Context, facultyID int64) (int64, error)
}

type assignmentService struct {
	students studentStore
	faculty  facultyStore
	strategy matching.Strategy
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(students studentStore, faculty facultyStore, strategy matching.Strategy) AssignmentService {
	return &assignmentService{
		students: students,
		faculty:  faculty,
		strategy: strategy,
	}
}

// GenerateProposal computes a mentor proposal over the full population. The
// proposal is returned to the caller and never persisted; nothing changes
// until an administrator confirms it. Either population being empty is
// rejected outright.
func (s *assignmentService) GenerateProposal(ctx context.Context) (*dto.ProposalResponse, error) {
	students, err := s.students.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	faculty, err := s.faculty.ListFaculty(ctx)
	if err != nil {
		return nil, err
	}

	if len(students) == 0 || len(faculty) == 0 {
		logger.Warn().Int("students", len(students)).Int("faculty", len(faculty)).
			Msg("Assignment proposal requested with empty population")
		return nil, apperrors.ErrEmptyPopulation
	}

	assignments := s.strategy.Match(students, faculty)
	logger.Info().Int("pairs", len(assignments)).Msg("Assignment proposal generated")

	return &dto.ProposalResponse{
		Assignments: assignments,
		Students:    students,
		Faculty:     faculty,
	}, nil
}

// ConfirmAssignments persists a reviewed studentID -> facultyID mapping.
// Each pair is written independently and a failed pair never stops the
// batch; the caller gets a result per pair. Students absent from the
// mapping keep their current mentor, and re-confirming an existing pair is
// a no-op overwrite.
func (s *assignmentService) ConfirmAssignments(ctx context.Context, assignments map[int64]int64) (*dto.ConfirmAssignmentsResponse, error) {
	response := &dto.ConfirmAssignmentsResponse{
		Results: make([]dto.PairResult, 0, len(assignments)),
	}

	for studentID, facultyID := range assignments {
		result := s.confirmPair(ctx, studentID, facultyID)
		if result.Status == dto.PairConfirmed {
			response.Confirmed++
		} else {
			response.Failed++
		}
		response.Results = append(response.Results, result)
	}

	logger.Info().Int("confirmed", response.Confirmed).Int("failed", response.Failed).
		Msg("Assignment confirmation batch processed")
	return response, nil
}

func (s *assignmentService) confirmPair(ctx context.Context, studentID, facultyID int64) dto.PairResult {
	result := dto.PairResult{StudentID: studentID, FacultyID: facultyID}

	faculty, err := s.faculty.GetFacultyByID(ctx, facultyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			result.Status = dto.PairFacultyNotFound
		} else {
			result.Status = dto.PairFailed
		}
		result.Error = err.Error()
		return result
	}

	if err := s.students.AssignMentor(ctx, studentID, facultyID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrStudentNotFound):
			result.Status = dto.PairStudentNotFound
		case errors.Is(err, apperrors.ErrFacultyNotFound):
			result.Status = dto.PairFacultyNotFound
		default:
			result.Status = dto.PairFailed
		}
		result.Error = err.Error()
		return result
	}

	// Capacity is advisory, an administrator may knowingly overload a mentor
	if count, err := s.faculty.CountAssignedStudents(ctx, facultyID); err == nil && count > int64(faculty.MentoringCapacity) {
		logger.Warn().Int64("facultyID", facultyID).Int64("assigned", count).
			Int("capacity", faculty.MentoringCapacity).Msg("Faculty mentoring capacity exceeded")
	}

	result.Status = dto.PairConfirmed
	return result
}
