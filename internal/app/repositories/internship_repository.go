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
	"github.com/yigit/internhub/internal/pkg/logger"
)

var internshipColumns = []string{
	"id", "title", "company", "description", "mode", "skills_required",
	"sdg_goals", "stipend", "deadline", "is_open", "created_at",
}

// InternshipRepository handles internship posting database operations
type InternshipRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewInternshipRepository creates a new InternshipRepository
func NewInternshipRepository(db Querier) *InternshipRepository {
	return &InternshipRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateInternship creates a new internship posting
func (r *InternshipRepository) CreateInternship(ctx context.Context, internship *models.Internship) (int64, error) {
	sql, args, err := r.sb.Insert("internships").
		Columns("title", "company", "description", "mode", "skills_required", "sdg_goals", "stipend", "deadline", "is_open", "created_at").
		Values(internship.Title, internship.Company, internship.Description, internship.Mode,
			internship.SkillsRequired, internship.SDGGoals, internship.Stipend, internship.Deadline,
			internship.IsOpen, time.Now()).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create internship SQL")
		return 0, fmt.Errorf("failed to build create internship query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("title", internship.Title).Msg("Error executing create internship query")
		return 0, fmt.Errorf("error creating internship: %w", err)
	}

	logger.Info().Int64("internshipID", id).Str("title", internship.Title).Msg("Internship created")
	return id, nil
}

func scanInternship(row pgx.Row) (*models.Internship, error) {
	var internship models.Internship
	err := row.Scan(
		&internship.ID, &internship.Title, &internship.Company, &internship.Description,
		&internship.Mode, &internship.SkillsRequired, &internship.SDGGoals, &internship.Stipend,
		&internship.Deadline, &internship.IsOpen, &internship.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &internship, nil
}

// GetInternshipByID retrieves an internship by ID
func (r *InternshipRepository) GetInternshipByID(ctx context.Context, id int64) (*models.Internship, error) {
	sql, args, err := r.sb.Select(internshipColumns...).
		From("internships").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get internship SQL")
		return nil, fmt.Errorf("failed to build get internship query: %w", err)
	}

	internship, err := scanInternship(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInternshipNotFound
		}
		logger.Error().Err(err).Int64("internshipID", id).Msg("Error scanning internship row")
		return nil, fmt.Errorf("error retrieving internship: %w", err)
	}

	return internship, nil
}

// InternshipFilter narrows ListInternships results. Zero values mean no filter.
type InternshipFilter struct {
	Mode     models.InternshipMode
	Company  string
	OpenOnly bool
}

// ListInternships retrieves internship postings matching the filter, newest first
func (r *InternshipRepository) ListInternships(ctx context.Context, filter InternshipFilter, offset, limit int) ([]*models.Internship, int64, error) {
	pred := squirrel.And{}
	if filter.Mode != "" {
		pred = append(pred, squirrel.Eq{"mode": filter.Mode})
	}
	if filter.Company != "" {
		pred = append(pred, squirrel.Eq{"company": filter.Company})
	}
	if filter.OpenOnly {
		pred = append(pred, squirrel.Eq{"is_open": true})
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From("internships").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count internships query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting internships")
		return nil, 0, fmt.Errorf("error counting internships: %w", err)
	}

	sql, args, err := r.sb.Select(internshipColumns...).
		From("internships").
		Where(pred).
		OrderBy("created_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list internships SQL")
		return nil, 0, fmt.Errorf("failed to build list internships query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list internships query")
		return nil, 0, fmt.Errorf("error listing internships: %w", err)
	}
	defer rows.Close()

	var internships []*models.Internship
	for rows.Next() {
		internship, err := scanInternship(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning internship row: %w", err)
		}
		internships = append(internships, internship)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating internship rows: %w", err)
	}

	return internships, total, nil
}

// UpdateInternship updates an internship posting
func (r *InternshipRepository) UpdateInternship(ctx context.Context, internship *models.Internship) error {
	sql, args, err := r.sb.Update("internships").
		Set("title", internship.Title).
		Set("company", internship.Company).
		Set("description", internship.Description).
		Set("mode", internship.Mode).
		Set("skills_required", internship.SkillsRequired).
		Set("sdg_goals", internship.SDGGoals).
		Set("stipend", internship.Stipend).
		Set("deadline", internship.Deadline).
		Set("is_open", internship.IsOpen).
		Where(squirrel.Eq{"id": internship.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update internship SQL")
		return fmt.Errorf("failed to build update internship query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("internshipID", internship.ID).Msg("Error executing update internship query")
		return fmt.Errorf("error updating internship: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}

	return nil
}

// DeleteInternship removes an internship posting
func (r *InternshipRepository) DeleteInternship(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("internships").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete internship SQL")
		return fmt.Errorf("failed to build delete internship query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("internshipID", id).Msg("Error executing delete internship query")
		return fmt.Errorf("error deleting internship: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}

	logger.Info().Int64("internshipID", id).Msg("Internship deleted")
	return nil
}

// ListClosingSoon retrieves open internships whose deadline falls within the
// next daysAhead days. Used by the deadline reminder job.
func (r *InternshipRepository) ListClosingSoon(ctx context.Context, daysAhead int) ([]*models.Internship, error) {
	now := time.Now()
	cutoff := now.AddDate(0, 0, daysAhead)

	sql, args, err := r.sb.Select(internshipColumns...).
		From("internships").
		Where(squirrel.Eq{"is_open": true}).
		Where(squirrel.GtOrEq{"deadline": now}).
		Where(squirrel.LtOrEq{"deadline": cutoff}).
		OrderBy("deadline").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building closing soon SQL")
		return nil, fmt.Errorf("failed to build closing soon query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing closing soon query")
		return nil, fmt.Errorf("error listing closing internships: %w", err)
	}
	defer rows.Close()

	var internships []*models.Internship
	for rows.Next() {
		internship, err := scanInternship(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning internship row: %w", err)
		}
		internships = append(internships, internship)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating internship rows: %w", err)
	}

	return internships, nil
}
