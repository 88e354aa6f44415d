package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/internhub/internal/pkg/logger"
)

// StatsRepository computes the aggregate counts behind dashboards and reports
type StatsRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db Querier) *StatsRepository {
	return &StatsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CountStudents returns the total number of student profiles
func (r *StatsRepository) CountStudents(ctx context.Context) (int64, error) {
	return r.countTable(ctx, "students", nil)
}

// CountFaculty returns the total number of faculty profiles
func (r *StatsRepository) CountFaculty(ctx context.Context) (int64, error) {
	return r.countTable(ctx, "faculty_profiles", nil)
}

// CountViewers returns the number of active viewer accounts
func (r *StatsRepository) CountViewers(ctx context.Context) (int64, error) {
	return r.countTable(ctx, "users", squirrel.Eq{"role_type": "VIEWER", "is_active": true})
}

// CountInternships returns open and closed internship counts
func (r *StatsRepository) CountInternships(ctx context.Context) (open, closed int64, err error) {
	open, err = r.countTable(ctx, "internships", squirrel.Eq{"is_open": true})
	if err != nil {
		return 0, 0, err
	}
	closed, err = r.countTable(ctx, "internships", squirrel.Eq{"is_open": false})
	if err != nil {
		return 0, 0, err
	}
	return open, closed, nil
}

func (r *StatsRepository) countTable(ctx context.Context, table string, pred any) (int64, error) {
	query := r.sb.Select("COUNT(*)").From(table)
	if pred != nil {
		query = query.Where(pred)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query for %s: %w", table, err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error counting rows")
		return 0, fmt.Errorf("error counting %s: %w", table, err)
	}
	return count, nil
}

// ApplicationsByStatus returns application counts grouped by status
func (r *StatsRepository) ApplicationsByStatus(ctx context.Context) (map[string]int64, error) {
	sql, args, err := r.sb.Select("status", "COUNT(*)").
		From("student_applications").
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build applications by status query: %w", err)
	}
	return r.scanDistribution(ctx, sql, args)
}

// ApplicationsByCompany returns application counts grouped by company
func (r *StatsRepository) ApplicationsByCompany(ctx context.Context) (map[string]int64, error) {
	sql, args, err := r.sb.Select("i.company", "COUNT(*)").
		From("student_applications a").
		Join("internships i ON i.id = a.internship_id").
		GroupBy("i.company").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build applications by company query: %w", err)
	}
	return r.scanDistribution(ctx, sql, args)
}

// ApplicationsByMode returns application counts grouped by internship mode
func (r *StatsRepository) ApplicationsByMode(ctx context.Context) (map[string]int64, error) {
	sql, args, err := r.sb.Select("i.mode", "COUNT(*)").
		From("student_applications a").
		Join("internships i ON i.id = a.internship_id").
		GroupBy("i.mode").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build applications by mode query: %w", err)
	}
	return r.scanDistribution(ctx, sql, args)
}

// InternshipsBySDGGoal returns open-internship counts per SDG goal tag
func (r *StatsRepository) InternshipsBySDGGoal(ctx context.Context) (map[string]int64, error) {
	sql, args, err := r.sb.Select("goal", "COUNT(*)").
		From("internships, unnest(sdg_goals) AS goal").
		Where(squirrel.Eq{"is_open": true}).
		GroupBy("goal").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build internships by sdg goal query: %w", err)
	}
	return r.scanDistribution(ctx, sql, args)
}

// StudentsBySkill returns how many students list each skill
func (r *StatsRepository) StudentsBySkill(ctx context.Context) (map[string]int64, error) {
	sql, args, err := r.sb.Select("skill", "COUNT(*)").
		From("students, unnest(skills) AS skill").
		GroupBy("skill").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build students by skill query: %w", err)
	}
	return r.scanDistribution(ctx, sql, args)
}

// StudentsByDepartment returns student counts grouped by department
func (r *StatsRepository) StudentsByDepartment(ctx context.Context) (map[string]int64, error) {
	sql, args, err := r.sb.Select("department", "COUNT(*)").
		From("students").
		GroupBy("department").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build students by department query: %w", err)
	}
	return r.scanDistribution(ctx, sql, args)
}

func (r *StatsRepository) scanDistribution(ctx context.Context, sql string, args []any) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing distribution query")
		return nil, fmt.Errorf("error querying distribution: %w", err)
	}
	defer rows.Close()

	dist := make(map[string]int64)
	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("error scanning distribution row: %w", err)
		}
		dist[key] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating distribution rows: %w", err)
	}

	return dist, nil
}
