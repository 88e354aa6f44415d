package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/internhub/internal/app/models"
	"github.com/yigit/internhub/internal/app/models/dto"
	"github.com/yigit/internhub/internal/app/repositories"
	"github.com/yigit/internhub/internal/db"
	"github.com/yigit/internhub/internal/pkg/apperrors"
	"github.com/yigit/internhub/internal/pkg/auth"
	"github.com/yigit/internhub/internal/pkg/logger"
	"github.com/yigit/internhub/internal/pkg/validation"
)

// AuthService handles registration, login and token lifecycle
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	pool       *pgxpool.Pool
	users      *repositories.UserRepository
	students   *repositories.StudentRepository
	faculty    *repositories.FacultyRepository
	tokens     *repositories.TokenRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(
	pool *pgxpool.Pool,
	users *repositories.UserRepository,
	students *repositories.StudentRepository,
	faculty *repositories.FacultyRepository,
	tokens *repositories.TokenRepository,
	jwtService *auth.JWTService,
) AuthService {
	return &authService{
		pool:       pool,
		users:      users,
		students:   students,
		faculty:    faculty,
		tokens:     tokens,
		jwtService: jwtService,
	}
}

// Register creates an account plus its role profile in one transaction and
// logs the new user in
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewBadRequestError("invalid email address")
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, apperrors.NewBadRequestError("password is too short")
	}

	role := models.RoleType(req.RoleType)
	if role == models.RoleStudent && req.Department == nil {
		return nil, apperrors.NewBadRequestError("department is required for student registration")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		RoleType:     role,
		IsActive:     true,
	}

	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		userID, err := s.users.WithTx(tx).CreateUser(ctx, user)
		if err != nil {
			return err
		}
		user.ID = userID

		switch role {
		case models.RoleStudent:
			student := &models.Student{
				UserID:       userID,
				Department:   *req.Department,
				Availability: models.AvailabilityFullTime,
				Skills:       req.Skills,
				Interests:    req.Interests,
			}
			if req.CGPA != nil {
				student.CGPA = *req.CGPA
			}
			if req.Availability != nil {
				student.Availability = models.Availability(*req.Availability)
			}
			_, err = s.students.WithTx(tx).CreateStudent(ctx, student)
			return err

		case models.RoleFaculty:
			faculty := &models.FacultyProfile{
				UserID:            userID,
				Expertise:         req.Expertise,
				ResearchInterests: req.ResearchInterests,
				MentoringCapacity: 5,
				IsAvailable:       true,
			}
			if req.Department != nil {
				faculty.Department = *req.Department
			}
			if req.MentoringCapacity != nil {
				faculty.MentoringCapacity = *req.MentoringCapacity
			}
			_, err = s.faculty.WithTx(tx).CreateFaculty(ctx, faculty)
			return err
		}

		// Admin, management and viewer roles have no extra profile
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Str("role", req.RoleType).Msg("User registered")
	return s.issueTokens(ctx, user)
}

// Login verifies credentials and issues a token pair
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn().Str("email", req.Email).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken rotates a refresh token: the old one is revoked and a fresh
// pair is issued
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, _, err := s.tokens.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokens.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	response, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	return &response.Tokens, nil
}

// Logout revokes a refresh token
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokens.RevokeToken(ctx, refreshToken)
}

func (s *authService) issueTokens(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate token pair")
		return nil, err
	}

	if err := s.tokens.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		UserID:   user.ID,
		Email:    user.Email,
		RoleType: string(user.RoleType),
		Tokens: dto.TokenResponse{
			AccessToken:      accessToken,
			RefreshToken:     refreshToken,
			ExpiresIn:        expiresIn,
			RefreshExpiresIn: refreshExpiresIn,
			TokenType:        "Bearer",
		},
	}, nil
}
