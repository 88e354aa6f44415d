package services

import (
	"context"

	"github.com/yigit/internhub/internal/app/models"
	"github.com/yigit/internhub/internal/app/repositories"
)

// FacultyService exposes mentor profile operations
type FacultyService interface {
	GetProfile(ctx context.Context, facultyID int64) (*models.FacultyProfile, error)
	GetProfileByUserID(ctx context.Context, userID int64) (*models.FacultyProfile, error)
	ListFaculty(ctx context.Context) ([]*models.FacultyProfile, error)
	UpdateProfile(ctx context.Context, userID int64, req *UpdateFacultyInput) (*models.FacultyProfile, error)
	ListAssignedStudents(ctx context.Context, facultyID int64) ([]*models.Student, error)
}

// UpdateFacultyInput carries the mutable mentor profile fields. Nil fields
// keep their stored value.
type UpdateFacultyInput struct {
	Department        *string
	Expertise         []string
	ResearchInterests []string
	MentoringCapacity *int
	IsAvailable       *bool
}

type facultyService struct {
	faculty  *repositories.FacultyRepository
	students *repositories.StudentRepository
}

// NewFacultyService creates a new FacultyService
func NewFacultyService(faculty *repositories.FacultyRepository, students *repositories.StudentRepository) FacultyService {
	return &facultyService{faculty: faculty, students: students}
}

// GetProfile retrieves a faculty profile with its assigned students
func (s *facultyService) GetProfile(ctx context.Context, facultyID int64) (*models.FacultyProfile, error) {
	faculty, err := s.faculty.GetFacultyByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	return s.attachAssignedStudents(ctx, faculty)
}

// GetProfileByUserID retrieves the faculty profile owned by an account
func (s *facultyService) GetProfileByUserID(ctx context.Context, userID int64) (*models.FacultyProfile, error) {
	faculty, err := s.faculty.GetFacultyByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.attachAssignedStudents(ctx, faculty)
}

func (s *facultyService) attachAssignedStudents(ctx context.Context, faculty *models.FacultyProfile) (*models.FacultyProfile, error) {
	students, err := s.students.ListByMentor(ctx, faculty.ID)
	if err != nil {
		return nil, err
	}
	faculty.AssignedStudents = make([]models.Student, 0, len(students))
	for _, student := range students {
		faculty.AssignedStudents = append(faculty.AssignedStudents, *student)
	}
	return faculty, nil
}

// ListFaculty retrieves all faculty profiles
func (s *facultyService) ListFaculty(ctx context.Context) ([]*models.FacultyProfile, error) {
	return s.faculty.ListFaculty(ctx)
}

// UpdateProfile applies a partial update to the caller's own faculty profile
func (s *facultyService) UpdateProfile(ctx context.Context, userID int64, req *UpdateFacultyInput) (*models.FacultyProfile, error) {
	faculty, err := s.faculty.GetFacultyByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Department != nil {
		faculty.Department = *req.Department
	}
	if req.Expertise != nil {
		faculty.Expertise = req.Expertise
	}
	if req.ResearchInterests != nil {
		faculty.ResearchInterests = req.ResearchInterests
	}
	if req.MentoringCapacity != nil {
		faculty.MentoringCapacity = *req.MentoringCapacity
	}
	if req.IsAvailable != nil {
		faculty.IsAvailable = *req.IsAvailable
	}

	if err := s.faculty.UpdateProfile(ctx, faculty); err != nil {
		return nil, err
	}

	return s.attachAssignedStudents(ctx, faculty)
}

// ListAssignedStudents retrieves the students currently mentored by a faculty
func (s *facultyService) ListAssignedStudents(ctx context.Context, facultyID int64) ([]*models.Student, error) {
	if _, err := s.faculty.GetFacultyByID(ctx, facultyID); err != nil {
		return nil, err
	}
	return s.students.ListByMentor(ctx, facultyID)
}
