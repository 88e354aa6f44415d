package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/internhub/internal/app/models"
	"github.com/yigit/internhub/internal/pkg/apperrors"
	"github.com/yigit/internhub/internal/pkg/logger"
)

var facultyColumns = []string{
	"f.id", "f.user_id", "f.department", "f.expertise", "f.research_interests",
	"f.mentoring_capacity", "f.is_available",
	"u.id", "u.email", "u.first_name", "u.last_name", "u.role_type", "u.is_active", "u.created_at",
}

// FacultyRepository handles faculty profile database operations
type FacultyRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db Querier) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *FacultyRepository) WithTx(tx pgx.Tx) *FacultyRepository {
	return &FacultyRepository{db: tx, sb: r.sb}
}

// CreateFaculty creates a new faculty profile
func (r *FacultyRepository) CreateFaculty(ctx context.Context, faculty *models.FacultyProfile) (int64, error) {
	sql, args, err := r.sb.Insert("faculty_profiles").
		Columns("user_id", "department", "expertise", "research_interests", "mentoring_capacity", "is_available").
		Values(faculty.UserID, faculty.Department, faculty.Expertise, faculty.ResearchInterests,
			faculty.MentoringCapacity, faculty.IsAvailable).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create faculty SQL")
		return 0, fmt.Errorf("failed to build create faculty query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("userID", faculty.UserID).Msg("Error executing create faculty query")
		return 0, fmt.Errorf("error creating faculty profile: %w", err)
	}

	logger.Info().Int64("userID", faculty.UserID).Int64("facultyID", id).Msg("Faculty profile created")
	return id, nil
}

func scanFaculty(row pgx.Row) (*models.FacultyProfile, error) {
	var faculty models.FacultyProfile
	var user models.User

	err := row.Scan(
		&faculty.ID, &faculty.UserID, &faculty.Department, &faculty.Expertise,
		&faculty.ResearchInterests, &faculty.MentoringCapacity, &faculty.IsAvailable,
		&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.RoleType, &user.IsActive, &user.CreatedAt)
	if err != nil {
		return nil, err
	}

	faculty.User = &user
	return &faculty, nil
}

// GetFacultyByID retrieves a faculty profile by profile ID
func (r *FacultyRepository) GetFacultyByID(ctx context.Context, id int64) (*models.FacultyProfile, error) {
	return r.getFaculty(ctx, squirrel.Eq{"f.id": id})
}

// GetFacultyByUserID retrieves a faculty profile by account ID
func (r *FacultyRepository) GetFacultyByUserID(ctx context.Context, userID int64) (*models.FacultyProfile, error) {
	return r.getFaculty(ctx, squirrel.Eq{"f.user_id": userID})
}

func (r *FacultyRepository) getFaculty(ctx context.Context, pred squirrel.Eq) (*models.FacultyProfile, error) {
	sql, args, err := r.sb.Select(facultyColumns...).
		From("faculty_profiles f").
		Join("users u ON u.id = f.user_id").
		Where(pred).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get faculty SQL")
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	faculty, err := scanFaculty(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Msg("Error scanning faculty row")
		return nil, fmt.Errorf("error retrieving faculty profile: %w", err)
	}

	return faculty, nil
}

// ListFaculty retrieves all faculty profiles with account data
func (r *FacultyRepository) ListFaculty(ctx context.Context) ([]*models.FacultyProfile, error) {
	sql, args, err := r.sb.Select(facultyColumns...).
		From("faculty_profiles f").
		Join("users u ON u.id = f.user_id").
		OrderBy("f.id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list faculty SQL")
		return nil, fmt.Errorf("failed to build list faculty query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list faculty query")
		return nil, fmt.Errorf("error listing faculty profiles: %w", err)
	}
	defer rows.Close()

	var faculties []*models.FacultyProfile
	for rows.Next() {
		faculty, err := scanFaculty(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		faculties = append(faculties, faculty)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	return faculties, nil
}

// UpdateProfile updates the mutable fields of a faculty profile
func (r *FacultyRepository) UpdateProfile(ctx context.Context, faculty *models.FacultyProfile) error {
	sql, args, err := r.sb.Update("faculty_profiles").
		Set("department", faculty.Department).
		Set("expertise", faculty.Expertise).
		Set("research_interests", faculty.ResearchInterests).
		Set("mentoring_capacity", faculty.MentoringCapacity).
		Set("is_available", faculty.IsAvailable).
		Where(squirrel.Eq{"id": faculty.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update faculty SQL")
		return fmt.Errorf("failed to build update faculty query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", faculty.ID).Msg("Error executing update faculty query")
		return fmt.Errorf("error updating faculty profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// CountAssignedStudents returns how many students a faculty currently mentors
func (r *FacultyRepository) CountAssignedStudents(ctx context.Context, facultyID int64) (int64, error) {
	var count int64
	sql, args, err := r.sb.Select("COUNT(*)").
		From("students").
		Where(squirrel.Eq{"assigned_mentor_id": facultyID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("failed to build count assigned students query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error counting assigned students")
		return 0, fmt.Errorf("error counting assigned students: %w", err)
	}

	return count, nil
}
