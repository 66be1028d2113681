package auth

import (
	"context"
	"errors"
	"strings"

	autherrors "github.com/Webdevrishabh/ELMS/internal/auth/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Generate(userID, email, role, teamID string) (string, error)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error
	GetMe(ctx context.Context, userID uuid.UUID) (AuthUser, error)
}

type service struct {
	repo   Repository
	tokens TokenIssuer
	logger *zap.Logger
}

func NewService(repo Repository, tokens TokenIssuer, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, tokens: tokens, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return LoginResponse{}, autherrors.ErrCredentialsRequired
	}

	cred, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("login lookup failed", zap.Error(err))
			return LoginResponse{}, err
		}
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Info("login rejected", zap.String("user_id", cred.ID.String()))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	teamID := ""
	if cred.TeamID != nil {
		teamID = cred.TeamID.String()
	}

	tok, err := s.tokens.Generate(cred.ID.String(), cred.Email, cred.Role, teamID)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("user_id", cred.ID.String()), zap.String("role", cred.Role))

	return LoginResponse{
		Message: "Login successful",
		Token:   tok,
		User:    toAuthUser(cred),
	}, nil
}

func (s *service) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return autherrors.ErrPasswordsRequired
	}
	if len(req.NewPassword) < minPasswordLength {
		return autherrors.ErrPasswordTooShort
	}

	cred, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return autherrors.ErrWrongCurrentPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrUserNotFound
		}
		s.logger.Error("change password failed", zap.String("user_id", userID.String()), zap.Error(err))
		return err
	}

	s.logger.Info("change password success", zap.String("user_id", userID.String()))
	return nil
}

func (s *service) GetMe(ctx context.Context, userID uuid.UUID) (AuthUser, error) {
	cred, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthUser{}, autherrors.ErrUserNotFound
		}
		return AuthUser{}, err
	}
	return toAuthUser(cred), nil
}
