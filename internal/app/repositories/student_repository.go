package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/internhub/internal/app/models"
	"github.com/yigit/internhub/internal/pkg/apperrors"
	"github.com/yigit/internhub/internal/pkg/dberrors"
	"github.com/yigit/internhub/internal/pkg/logger"
)

var studentColumns = []string{
	"s.id", "s.user_id", "s.department", "s.cgpa", "s.availability", "s.resume_url",
	"s.assigned_mentor_id", "s.skills", "s.interests", "s.achievements", "s.certifications",
	"u.id", "u.email", "u.first_name", "u.last_name", "u.role_type", "u.is_active", "u.created_at",
}

// StudentRepository handles student profile database operations
type StudentRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db Querier) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *StudentRepository) WithTx(tx pgx.Tx) *StudentRepository {
	return &StudentRepository{db: tx, sb: r.sb}
}

// CreateStudent creates a new student profile
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("user_id", "department", "cgpa", "availability", "resume_url", "skills", "interests", "achievements", "certifications").
		Values(student.UserID, student.Department, student.CGPA, student.Availability, student.ResumeURL,
			student.Skills, student.Interests, student.Achievements, student.Certifications).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("userID", student.UserID).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	logger.Info().Int64("userID", student.UserID).Int64("studentID", id).Msg("Student profile created")
	return id, nil
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	var user models.User

	err := row.Scan(
		&student.ID, &student.UserID, &student.Department, &student.CGPA, &student.Availability,
		&student.ResumeURL, &student.AssignedMentorID, &student.Skills, &student.Interests,
		&student.Achievements, &student.Certifications,
		&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.RoleType, &user.IsActive, &user.CreatedAt)
	if err != nil {
		return nil, err
	}

	student.User = &user
	return &student, nil
}

// GetStudentByID retrieves a student profile (with account data) by profile ID
func (r *StudentRepository) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return r.getStudent(ctx, squirrel.Eq{"s.id": id})
}

// GetStudentByUserID retrieves a student profile by account ID
func (r *StudentRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	return r.getStudent(ctx, squirrel.Eq{"s.user_id": userID})
}

func (r *StudentRepository) getStudent(ctx context.Context, pred squirrel.Eq) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students s").
		Join("users u ON u.id = s.user_id").
		Where(pred).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// ListStudents retrieves all student profiles with account data
func (r *StudentRepository) ListStudents(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students s").
		Join("users u ON u.id = s.user_id").
		OrderBy("s.id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// ListByMentor retrieves the students assigned to a faculty mentor
func (r *StudentRepository) ListByMentor(ctx context.Context, facultyID int64) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students s").
		Join("users u ON u.id = s.user_id").
		Where(squirrel.Eq{"s.assigned_mentor_id": facultyID}).
		OrderBy("s.id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list by mentor SQL")
		return nil, fmt.Errorf("failed to build list by mentor query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error executing list by mentor query")
		return nil, fmt.Errorf("error listing assigned students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// UpdateProfile applies the non-nil fields of a patch to a student profile.
// Name changes live on the users table and are handled by the caller.
func (r *StudentRepository) UpdateProfile(ctx context.Context, id int64, patch *models.StudentPatch) error {
	update := r.sb.Update("students").Where(squirrel.Eq{"id": id})
	touched := false

	if patch.Department != nil {
		update = update.Set("department", *patch.Department)
		touched = true
	}
	if patch.CGPA != nil {
		update = update.Set("cgpa", *patch.CGPA)
		touched = true
	}
	if patch.Availability != nil {
		update = update.Set("availability", *patch.Availability)
		touched = true
	}
	if patch.ResumeURL != nil {
		update = update.Set("resume_url", *patch.ResumeURL)
		touched = true
	}
	if patch.Skills != nil {
		update = update.Set("skills", patch.Skills)
		touched = true
	}
	if patch.Interests != nil {
		update = update.Set("interests", patch.Interests)
		touched = true
	}
	if patch.Achievements != nil {
		update = update.Set("achievements", patch.Achievements)
		touched = true
	}
	if patch.Certifications != nil {
		update = update.Set("certifications", patch.Certifications)
		touched = true
	}

	if !touched {
		return nil
	}

	sql, args, err := update.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student profile SQL")
		return fmt.Errorf("failed to build update student profile query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing update student profile query")
		return fmt.Errorf("error updating student profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// AssignMentor sets a student's assigned mentor, overwriting any prior
// value. The faculty side of the relation is derived from this column, so
// a single statement updates both sides atomically and re-assigning the
// same pair is naturally idempotent.
func (r *StudentRepository) AssignMentor(ctx context.Context, studentID, facultyID int64) error {
	sql, args, err := r.sb.Update("students").
		Set("assigned_mentor_id", facultyID).
		Where(squirrel.Eq{"id": studentID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building assign mentor SQL")
		return fmt.Errorf("failed to build assign mentor query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Int64("studentID", studentID).Int64("facultyID", facultyID).Msg("Error executing assign mentor query")
		return fmt.Errorf("error assigning mentor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	logger.Info().Int64("studentID", studentID).Int64("facultyID", facultyID).Msg("Mentor assigned")
	return nil
}
