package services

import (
	"context"
	"time"

	"github.com/yigit/internhub/internal/app/models"
	"github.com/yigit/internhub/internal/app/models/dto"
	"github.com/yigit/internhub/internal/app/repositories"
	"github.com/yigit/internhub/internal/pkg/apperrors"
)

const deadlineLayout = "2006-01-02"

// InternshipService exposes internship posting operations
type InternshipService interface {
	Create(ctx context.Context, req *dto.CreateInternshipRequest) (*models.Internship, error)
	GetByID(ctx context.Context, id int64) (*models.Internship, error)
	List(ctx context.Context, filter repositories.InternshipFilter, page, pageSize int) ([]*models.Internship, int64, error)
	Update(ctx context.Context, id int64, req *dto.UpdateInternshipRequest) (*models.Internship, error)
	Delete(ctx context.Context, id int64) error
}

type internshipService struct {
	internships *repositories.InternshipRepository
}

// NewInternshipService creates a new InternshipService
func NewInternshipService(internships *repositories.InternshipRepository) InternshipService {
	return &internshipService{internships: internships}
}

// Create publishes a new internship posting
func (s *internshipService) Create(ctx context.Context, req *dto.CreateInternshipRequest) (*models.Internship, error) {
	deadline, err := time.Parse(deadlineLayout, req.Deadline)
	if err != nil {
		return nil, apperrors.NewBadRequestError("deadline must be in YYYY-MM-DD format")
	}

	internship := &models.Internship{
		Title:          req.Title,
		Company:        req.Company,
		Description:    req.Description,
		Mode:           models.InternshipMode(req.Mode),
		SkillsRequired: req.SkillsRequired,
		SDGGoals:       req.SDGGoals,
		Stipend:        req.Stipend,
		Deadline:       deadline,
		IsOpen:         true,
	}

	id, err := s.internships.CreateInternship(ctx, internship)
	if err != nil {
		return nil, err
	}

	return s.internships.GetInternshipByID(ctx, id)
}

// GetByID retrieves one internship posting
func (s *internshipService) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	return s.internships.GetInternshipByID(ctx, id)
}

// List retrieves internship postings matching the filter, paginated
func (s *internshipService) List(ctx context.Context, filter repositories.InternshipFilter, page, pageSize int) ([]*models.Internship, int64, error) {
	offset := (page - 1) * pageSize
	return s.internships.ListInternships(ctx, filter, offset, pageSize)
}

// Update applies a partial update to an internship posting
func (s *internshipService) Update(ctx context.Context, id int64, req *dto.UpdateInternshipRequest) (*models.Internship, error) {
	internship, err := s.internships.GetInternshipByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		internship.Title = *req.Title
	}
	if req.Company != nil {
		internship.Company = *req.Company
	}
	if req.Description != nil {
		internship.Description = *req.Description
	}
	if req.Mode != nil {
		internship.Mode = models.InternshipMode(*req.Mode)
	}
	if req.SkillsRequired != nil {
		internship.SkillsRequired = req.SkillsRequired
	}
	if req.SDGGoals != nil {
		internship.SDGGoals = req.SDGGoals
	}
	if req.Stipend != nil {
		internship.Stipend = *req.Stipend
	}
	if req.Deadline != nil {
		deadline, err := time.Parse(deadlineLayout, *req.Deadline)
		if err != nil {
			return nil, apperrors.NewBadRequestError("deadline must be in YYYY-MM-DD format")
		}
		internship.Deadline = deadline
	}
	if req.IsOpen != nil {
		internship.IsOpen = *req.IsOpen
	}

	if err := s.internships.UpdateInternship(ctx, internship); err != nil {
		return nil, err
	}

	return internship, nil
}

// Delete removes an internship posting
func (s *internshipService) Delete(ctx context.Context, id int64) error {
	return s.internships.DeleteInternship(ctx, id)
}
