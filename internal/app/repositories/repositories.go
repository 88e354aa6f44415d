package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the common query surface of *pgxpool.Pool and pgx.Tx, so a
// repository can run either on the pool or inside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	StudentRepository      *StudentRepository
	FacultyRepository      *FacultyRepository
	InternshipRepository   *InternshipRepository
	ApplicationRepository  *ApplicationRepository
	NotificationRepository *NotificationRepository
	TokenRepository        *TokenRepository
	StatsRepository        *StatsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		StudentRepository:      NewStudentRepository(db),
		FacultyRepository:      NewFacultyRepository(db),
		InternshipRepository:   NewInternshipRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		TokenRepository:        NewTokenRepository(db),
		StatsRepository:        NewStatsRepository(db),
	}
}
