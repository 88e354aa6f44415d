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

// UserRepository handles account database operations
type UserRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *UserRepository) WithTx(tx pgx.Tx) *UserRepository {
	return &UserRepository{db: tx, sb: r.sb}
}

// CreateUser creates a new account and returns its ID
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("email", "password_hash", "first_name", "last_name", "role_type", "is_active", "created_at").
		Values(user.Email, user.PasswordHash, user.FirstName, user.LastName, user.RoleType, true, time.Now()).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			logger.Warn().Str("email", user.Email).Msg("Attempted to create user with duplicate email")
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": id})
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUser(ctx, squirrel.Eq{"email": email})
}

func (r *UserRepository) getUser(ctx context.Context, pred squirrel.Eq) (*models.User, error) {
	var user models.User
	sql, args, err := r.sb.Select("id", "email", "password_hash", "first_name", "last_name", "role_type", "is_active", "created_at").
		From("users").
		Where(pred).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get user SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.RoleType, &user.IsActive, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// UpdateName updates a user's display name
func (r *UserRepository) UpdateName(ctx context.Context, id int64, firstName, lastName string) error {
	sql, args, err := r.sb.Update("users").
		Set("first_name", firstName).
		Set("last_name", lastName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update user name SQL")
		return fmt.Errorf("failed to build update user name query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing update user name query")
		return fmt.Errorf("error updating user name: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// DeleteUser deletes a user account. Role profiles cascade via FK.
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete user SQL")
		return fmt.Errorf("failed to build delete user query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing delete user query")
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	logger.Info().Int64("userID", id).Msg("User deleted")
	return nil
}

// CountByRole returns the number of active accounts with the given role
func (r *UserRepository) CountByRole(ctx context.Context, role models.RoleType) (int64, error) {
	var count int64
	sql, args, err := r.sb.Select("COUNT(*)").
		From("users").
		Where(squirrel.Eq{"role_type": role, "is_active": true}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("failed to build count by role query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Str("role", string(role)).Msg("Error counting users by role")
		return 0, fmt.Errorf("error counting users by role: %w", err)
	}

	return count, nil
}
