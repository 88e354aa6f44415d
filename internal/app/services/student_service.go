package services

import (
	"context"
	"time"

	"github.com/yigit/internhub/internal/app/models"
	"github.com/yigit/internhub/internal/app/models/dto"
	"github.com/yigit/internhub/internal/app/repositories"
	"github.com/yigit/internhub/internal/pkg/apperrors"
	"github.com/yigit/internhub/internal/pkg/logger"
	"github.com/yigit/internhub/internal/pkg/validation"
	"github.com/yigit/internhub/internal/pkg/ws"
)

// StudentService exposes student profile and application operations
type StudentService interface {
	GetProfile(ctx context.Context, studentID int64) (*models.Student, error)
	GetProfileByUserID(ctx context.Context, userID int64) (*models.Student, error)
	ListStudents(ctx context.Context) ([]*models.Student, error)
	UpdateProfile(ctx context.Context, studentID int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	Apply(ctx context.Context, studentID, internshipID int64) (*models.Application, error)
	ListApplications(ctx context.Context, studentID int64) ([]*models.Application, error)
	UpdateApplicationStatus(ctx context.Context, studentID, internshipID int64, status models.ApplicationStatus) error
}

type studentService struct {
	students      *repositories.StudentRepository
	users         *repositories.UserRepository
	internships   *repositories.InternshipRepository
	applications  *repositories.ApplicationRepository
	notifications *repositories.NotificationRepository
	detector      *ChangeDetector
	hub           *ws.Hub
}

// NewStudentService creates a new StudentService
func NewStudentService(
	students *repositories.StudentRepository,
	users *repositories.UserRepository,
	internships *repositories.InternshipRepository,
	applications *repositories.ApplicationRepository,
	notifications *repositories.NotificationRepository,
	detector *ChangeDetector,
	hub *ws.Hub,
) StudentService {
	return &studentService{
		students:      students,
		users:         users,
		internships:   internships,
		applications:  applications,
		notifications: notifications,
		detector:      detector,
		hub:           hub,
	}
}

// GetProfile retrieves a student profile with its applications
func (s *studentService) GetProfile(ctx context.Context, studentID int64) (*models.Student, error) {
	student, err := s.students.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.attachApplications(ctx, student)
}

// GetProfileByUserID retrieves the student profile owned by an account
func (s *studentService) GetProfileByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	student, err := s.students.GetStudentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.attachApplications(ctx, student)
}

func (s *studentService) attachApplications(ctx context.Context, student *models.Student) (*models.Student, error) {
	apps, err := s.applications.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	student.Applications = make([]models.Application, 0, len(apps))
	for _, app := range apps {
		student.Applications = append(student.Applications, *app)
	}
	return student, nil
}

// ListStudents retrieves all student profiles
func (s *studentService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.students.ListStudents(ctx)
}

// UpdateProfile applies a partial update to a student profile and notifies
// the student's mentor of the changes. The snapshot is taken before the
// write so the detector compares against what the mentor last knew. A
// notification failure after a committed profile update is logged and
// surfaced but does not undo the update.
func (s *studentService) UpdateProfile(ctx context.Context, studentID int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if req == nil || req.IsEmpty() {
		return nil, apperrors.NewBadRequestError("update contains no fields")
	}

	if req.CGPA != nil && !validation.IsValidCGPA(*req.CGPA) {
		return nil, apperrors.NewBadRequestError("cgpa must be between 0 and 10")
	}

	snapshot, err := s.GetProfile(ctx, studentID)
	if err != nil {
		return nil, err
	}

	patch := patchFromRequest(req)

	if patch.FirstName != nil || patch.LastName != nil {
		first, last := snapshot.User.FirstName, snapshot.User.LastName
		if patch.FirstName != nil {
			first = *patch.FirstName
		}
		if patch.LastName != nil {
			last = *patch.LastName
		}
		if err := s.users.UpdateName(ctx, snapshot.UserID, first, last); err != nil {
			return nil, err
		}
	}

	if err := s.students.UpdateProfile(ctx, studentID, patch); err != nil {
		return nil, err
	}

	if err := s.notifyMentor(ctx, snapshot, patch); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, studentID)
}

// notifyMentor runs the detector and persists + pushes whatever it emits
func (s *studentService) notifyMentor(ctx context.Context, snapshot *models.Student, patch *models.StudentPatch) error {
	notifications := s.detector.Detect(snapshot, patch)
	if len(notifications) == 0 {
		return nil
	}

	if err := s.notifications.InsertBatch(ctx, notifications); err != nil {
		logger.Error().Err(err).Int64("studentID", snapshot.ID).
			Msg("Profile updated but mentor notifications could not be stored")
		return err
	}

	if s.hub != nil {
		for _, n := range notifications {
			s.hub.PushNotification(n)
		}
	}
	return nil
}

// Apply records a new application to an open internship. Entries are
// append-only; a second application to the same internship is rejected and
// withdrawal does not exist.
func (s *studentService) Apply(ctx context.Context, studentID, internshipID int64) (*models.Application, error) {
	internship, err := s.internships.GetInternshipByID(ctx, internshipID)
	if err != nil {
		return nil, err
	}
	if !internship.IsOpen || internship.Deadline.Before(time.Now()) {
		return nil, apperrors.ErrInternshipClosed
	}

	if _, err := s.students.GetStudentByID(ctx, studentID); err != nil {
		return nil, err
	}

	id, err := s.applications.CreateApplication(ctx, studentID, internshipID)
	if err != nil {
		return nil, err
	}

	return &models.Application{
		ID:           id,
		StudentID:    studentID,
		InternshipID: internshipID,
		Status:       models.ApplicationPending,
		Internship:   internship,
	}, nil
}

// ListApplications retrieves a student's applications with internships
func (s *studentService) ListApplications(ctx context.Context, studentID int64) ([]*models.Application, error) {
	if _, err := s.students.GetStudentByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.applications.ListByStudent(ctx, studentID)
}

// UpdateApplicationStatus transitions one application's status. Status
// changes flow through the detector as an application patch so the mentor
// hears about them exactly like any other profile change.
func (s *studentService) UpdateApplicationStatus(ctx context.Context, studentID, internshipID int64, status models.ApplicationStatus) error {
	snapshot, err := s.GetProfile(ctx, studentID)
	if err != nil {
		return err
	}

	if err := s.applications.UpdateStatus(ctx, studentID, internshipID, status); err != nil {
		return err
	}

	patch := &models.StudentPatch{
		Applications: []models.ApplicationPatch{{InternshipID: internshipID, Status: status}},
	}
	return s.notifyMentor(ctx, snapshot, patch)
}

func patchFromRequest(req *dto.UpdateStudentRequest) *models.StudentPatch {
	patch := &models.StudentPatch{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Department:     req.Department,
		CGPA:           req.CGPA,
		ResumeURL:      req.ResumeURL,
		Skills:         validation.NormalizeStringSet(req.Skills),
		Interests:      validation.NormalizeStringSet(req.Interests),
		Achievements:   validation.NormalizeStringSet(req.Achievements),
		Certifications: validation.NormalizeStringSet(req.Certifications),
	}
	if req.Availability != nil {
		availability := models.Availability(*req.Availability)
		patch.Availability = &availability
	}
	return patch
}
