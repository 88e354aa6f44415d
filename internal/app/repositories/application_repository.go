package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/internhub/internal/app/models"
	"github.com/yigit/internhub/internal/pkg/apperrors"
	"github.com/yigit/internhub/internal/pkg/dberrors"
	"github.com/yigit/internhub/internal/pkg/logger"
)

// ApplicationRepository handles internship application database operations
type ApplicationRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db Querier) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *ApplicationRepository) WithTx(tx pgx.Tx) *ApplicationRepository {
	return &ApplicationRepository{db: tx, sb: r.sb}
}

// CreateApplication records a new application with PENDING status
func (r *ApplicationRepository) CreateApplication(ctx context.Context, studentID, internshipID int64) (int64, error) {
	sql, args, err := r.sb.Insert("student_applications").
		Columns("student_id", "internship_id", "status", "applied_at").
		Values(studentID, internshipID, models.ApplicationPending, time.Now()).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create application SQL")
		return 0, fmt.Errorf("failed to build create application query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "student_applications_student_internship_key") {
			return 0, apperrors.ErrAlreadyApplied
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrInternshipNotFound
		}
		logger.Error().Err(err).Int64("studentID", studentID).Int64("internshipID", internshipID).
			Msg("Error executing create application query")
		return 0, fmt.Errorf("error creating application: %w", err)
	}

	logger.Info().Int64("studentID", studentID).Int64("internshipID", internshipID).Msg("Application created")
	return id, nil
}

// ListByStudent retrieves a student's applications with their internships,
// oldest first so list positions stay stable as new applications append.
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	sql, args, err := r.sb.Select(
		"a.id", "a.student_id", "a.internship_id", "a.status", "a.applied_at",
		"i.id", "i.title", "i.company", "i.description", "i.mode", "i.skills_required",
		"i.sdg_goals", "i.stipend", "i.deadline", "i.is_open", "i.created_at").
		From("student_applications a").
		Join("internships i ON i.id = a.internship_id").
		Where(squirrel.Eq{"a.student_id": studentID}).
		OrderBy("a.applied_at", "a.id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list applications SQL")
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing list applications query")
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		var app models.Application
		var internship models.Internship
		err := rows.Scan(
			&app.ID, &app.StudentID, &app.InternshipID, &app.Status, &app.AppliedAt,
			&internship.ID, &internship.Title, &internship.Company, &internship.Description,
			&internship.Mode, &internship.SkillsRequired, &internship.SDGGoals, &internship.Stipend,
			&internship.Deadline, &internship.IsOpen, &internship.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		app.Internship = &internship
		applications = append(applications, &app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return applications, nil
}

// GetByStudentAndInternship retrieves one application by its natural key
func (r *ApplicationRepository) GetByStudentAndInternship(ctx context.Context, studentID, internshipID int64) (*models.Application, error) {
	var app models.Application
	sql, args, err := r.sb.Select("id", "student_id", "internship_id", "status", "applied_at").
		From("student_applications").
		Where(squirrel.Eq{"student_id": studentID, "internship_id": internshipID}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get application SQL")
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&app.ID, &app.StudentID, &app.InternshipID, &app.Status, &app.AppliedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		logger.Error().Err(err).Msg("Error scanning application row")
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return &app, nil
}

// UpdateStatus sets an application's status by its natural key
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, studentID, internshipID int64, status models.ApplicationStatus) error {
	sql, args, err := r.sb.Update("student_applications").
		Set("status", status).
		Where(squirrel.Eq{"student_id": studentID, "internship_id": internshipID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update application status SQL")
		return fmt.Errorf("failed to build update application status query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Int64("internshipID", internshipID).
			Msg("Error executing update application status query")
		return fmt.Errorf("error updating application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// Applicant pairs a recipient address with a display name for reminder emails
type Applicant struct {
	Email     string
	FirstName string
}

// ListApplicantsForInternship returns the accounts with a PENDING application
// on an internship. Used by the deadline reminder job.
func (r *ApplicationRepository) ListApplicantsForInternship(ctx context.Context, internshipID int64) ([]Applicant, error) {
	sql, args, err := r.sb.Select("u.email", "u.first_name").
		From("student_applications a").
		Join("students s ON s.id = a.student_id").
		Join("users u ON u.id = s.user_id").
		Where(squirrel.Eq{"a.internship_id": internshipID, "a.status": models.ApplicationPending}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list applicants SQL")
		return nil, fmt.Errorf("failed to build list applicants query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("internshipID", internshipID).Msg("Error executing list applicants query")
		return nil, fmt.Errorf("error listing applicants: %w", err)
	}
	defer rows.Close()

	var applicants []Applicant
	for rows.Next() {
		var a Applicant
		if err := rows.Scan(&a.Email, &a.FirstName); err != nil {
			return nil, fmt.Errorf("error scanning applicant row: %w", err)
		}
		applicants = append(applicants, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applicant rows: %w", err)
	}

	return applicants, nil
}
