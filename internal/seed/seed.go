// Package seed creates the default accounts a fresh installation needs
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/yigit/internhub/internal/app/models"
	"github.com/yigit/internhub/internal/app/repositories"
	"github.com/yigit/internhub/internal/pkg/apperrors"
	"github.com/yigit/internhub/internal/pkg/auth"
)

// CreateDefaultData ensures the default administrator account exists.
// Errors are accumulated and returned together so a partial failure
// does not abort startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	var errs error

	if err := createDefaultAdmin(ctx, userRepo, lgr); err != nil {
		errs = errors.Join(errs, err)
	}

	return errs
}

func createDefaultAdmin(ctx context.Context, userRepo *repositories.UserRepository, lgr zerolog.Logger) error {
	const adminEmail = "admin@internhub.app"

	passwordHash, err := auth.HashPassword("Admin123!")
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        adminEmail,
		PasswordHash: passwordHash,
		FirstName:    "System",
		LastName:     "Administrator",
		RoleType:     models.RoleAdmin,
	}

	id, err := userRepo.CreateUser(ctx, admin)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Debug().Str("email", adminEmail).Msg("Default admin account already exists")
			return nil
		}
		return err
	}

	lgr.Info().Int64("userID", id).Str("email", adminEmail).Msg("Default admin account created")
	return nil
}
