package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/internhub/internal/app/models"
	"github.com/yigit/internhub/internal/pkg/apperrors"
	"github.com/yigit/internhub/internal/pkg/logger"
)

var notificationColumns = []string{
	"id", "faculty_id", "student_id", "student_name", "message", "type",
	"related_data", "is_read", "created_at",
}

// NotificationRepository handles mentor notification database operations
type NotificationRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db Querier) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *NotificationRepository) WithTx(tx pgx.Tx) *NotificationRepository {
	return &NotificationRepository{db: tx, sb: r.sb}
}

// InsertBatch stores the notifications produced by one detector run as a
// single multi-row insert, preserving slice order. IDs and timestamps are
// written back into the given models.
func (r *NotificationRepository) InsertBatch(ctx context.Context, notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	now := time.Now()
	insert := r.sb.Insert("notifications").
		Columns("faculty_id", "student_id", "student_name", "message", "type", "related_data", "is_read", "created_at")
	for _, n := range notifications {
		insert = insert.Values(n.FacultyID, n.StudentID, n.StudentName, n.Message, n.Type, n.RelatedData, false, now)
	}

	sql, args, err := insert.Suffix("RETURNING id").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building insert notifications SQL")
		return fmt.Errorf("failed to build insert notifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int("count", len(notifications)).Msg("Error executing insert notifications query")
		return fmt.Errorf("error inserting notifications: %w", err)
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		if i >= len(notifications) {
			break
		}
		if err := rows.Scan(&notifications[i].ID); err != nil {
			return fmt.Errorf("error scanning notification id: %w", err)
		}
		notifications[i].IsRead = false
		notifications[i].CreatedAt = now
		i++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating notification ids: %w", err)
	}

	logger.Info().Int("count", len(notifications)).Msg("Notifications inserted")
	return nil
}

// ListByFaculty retrieves a faculty's notifications, newest first
func (r *NotificationRepository) ListByFaculty(ctx context.Context, facultyID int64) ([]*models.Notification, error) {
	sql, args, err := r.sb.Select(notificationColumns...).
		From("notifications").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list notifications SQL")
		return nil, fmt.Errorf("failed to build list notifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error executing list notifications query")
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(
			&n.ID, &n.FacultyID, &n.StudentID, &n.StudentName, &n.Message,
			&n.Type, &n.RelatedData, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning notification row: %w", err)
		}
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return notifications, nil
}

// UnreadCount returns the number of unread notifications for a faculty
func (r *NotificationRepository) UnreadCount(ctx context.Context, facultyID int64) (int64, error) {
	var count int64
	sql, args, err := r.sb.Select("COUNT(*)").
		From("notifications").
		Where(squirrel.Eq{"faculty_id": facultyID, "is_read": false}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("failed to build unread count query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error counting unread notifications")
		return 0, fmt.Errorf("error counting unread notifications: %w", err)
	}

	return count, nil
}

// MarkRead marks a single notification as read. Scoped to the owning faculty
// so one mentor cannot toggle another's notifications.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, facultyID int64) error {
	sql, args, err := r.sb.Update("notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id, "faculty_id": facultyID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building mark read SQL")
		return fmt.Errorf("failed to build mark read query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("notificationID", id).Msg("Error executing mark read query")
		return fmt.Errorf("error marking notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead marks every unread notification of a faculty as read and
// returns how many were affected
func (r *NotificationRepository) MarkAllRead(ctx context.Context, facultyID int64) (int64, error) {
	sql, args, err := r.sb.Update("notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"faculty_id": facultyID, "is_read": false}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building mark all read SQL")
		return 0, fmt.Errorf("failed to build mark all read query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error executing mark all read query")
		return 0, fmt.Errorf("error marking notifications read: %w", err)
	}

	return tag.RowsAffected(), nil
}
