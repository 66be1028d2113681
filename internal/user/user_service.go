package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"
	"github.com/Webdevrishabh/ELMS/internal/shared/contextutil"
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"
	usererrors "github.com/Webdevrishabh/ELMS/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, actor identity.Actor, id string, req UpdateUserRequest) error
	Delete(ctx context.Context, actor identity.Actor, id string) error

	GetProfile(ctx context.Context, actor identity.Actor) (UserResponse, error)
	UpdateProfile(ctx context.Context, actor identity.Actor, req UpdateProfileRequest) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func parseUserID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, usererrors.ErrInvalidUserID
	}
	return uid, nil
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	uid, err := parseUserID(id)
	if err != nil {
		return UserResponse{}, err
	}

	u, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) GetProfile(ctx context.Context, actor identity.Actor) (UserResponse, error) {
	return s.GetByID(ctx, actor.ID.String())
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	l := s.log(ctx)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)
	if email == "" || req.Password == "" || name == "" || req.Role == "" {
		return UserResponse{}, usererrors.ErrMissingRequiredFields
	}
	if !identity.ValidRole(req.Role) {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	u := &User{
		ID:                 uuid.New(),
		Email:              email,
		Name:               name,
		Role:               req.Role,
		LeaveBalance:       20,
		SickLeaveBalance:   10,
		CasualLeaveBalance: 5,
		Skills:             Skills{},
	}

	if req.TeamID != nil && *req.TeamID != "" {
		teamID, err := uuid.Parse(*req.TeamID)
		if err != nil {
			return UserResponse{}, usererrors.ErrInvalidTeam
		}
		u.TeamID = &teamID
	}
	if req.Phone != nil && *req.Phone != "" {
		phone := *req.Phone
		u.Phone = &phone
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}
	u.PasswordHash = string(hash)

	l.Info("create user requested", zap.String("email", email), zap.String("role", req.Role))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Create(ctx, u); err != nil {
		switch {
		case apperror.IsUniqueViolation(err, "uq_users_email"):
			return UserResponse{}, usererrors.ErrUserAlreadyExists
		case apperror.IsForeignKeyViolation(err):
			return UserResponse{}, usererrors.ErrInvalidTeam
		}
		l.Error("create user failed", zap.Error(err))
		return UserResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return UserResponse{}, err
	}

	l.Info("create user success", zap.String("user_id", u.ID.String()))
	return mapToResponse(UserWithTeam{User: *u}), nil
}

func (s *service) Update(ctx context.Context, actor identity.Actor, id string, req UpdateUserRequest) error {
	uid, err := parseUserID(id)
	if err != nil {
		return err
	}

	if !actor.IsAdmin() && actor.ID != uid {
		return apperror.ErrForbidden
	}

	patch := Patch{}
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		name := strings.TrimSpace(*req.Name)
		patch.Name = &name
	}
	if req.Phone.Set {
		phone := req.Phone
		patch.Phone = &phone
	}

	// Role, team and balances are admin-only; silently ignored for everyone else.
	if actor.IsAdmin() {
		if req.Role != nil && *req.Role != "" {
			if !identity.ValidRole(*req.Role) {
				return usererrors.ErrInvalidRole
			}
			patch.Role = req.Role
		}
		if req.TeamID.Set {
			team, err := parseOptionalTeam(req.TeamID)
			if err != nil {
				return err
			}
			patch.TeamID = team
		}
		for _, b := range []*int{req.LeaveBalance, req.SickLeaveBalance, req.CasualLeaveBalance} {
			if b != nil && *b < 0 {
				return usererrors.ErrInvalidBalance
			}
		}
		patch.LeaveBalance = req.LeaveBalance
		patch.SickLeaveBalance = req.SickLeaveBalance
		patch.CasualLeaveBalance = req.CasualLeaveBalance
	}

	if patch.IsEmpty() {
		return usererrors.ErrNoFieldsToUpdate
	}

	return s.applyPatch(ctx, uid, patch)
}

func (s *service) UpdateProfile(ctx context.Context, actor identity.Actor, req UpdateProfileRequest) error {
	patch := Patch{}
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		name := strings.TrimSpace(*req.Name)
		patch.Name = &name
	}
	if req.Phone.Set {
		phone := req.Phone
		patch.Phone = &phone
	}
	if req.Skills != nil {
		skills := Skills(*req.Skills)
		if skills == nil {
			skills = Skills{}
		}
		patch.Skills = &skills
	}

	if patch.IsEmpty() {
		return usererrors.ErrNoFieldsToUpdate
	}

	return s.applyPatch(ctx, actor.ID, patch)
}

func (s *service) applyPatch(ctx context.Context, id uuid.UUID, patch Patch) error {
	l := s.log(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Update(ctx, id, patch); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return usererrors.ErrUserNotFound
		case apperror.IsForeignKeyViolation(err):
			return usererrors.ErrInvalidTeam
		}
		l.Error("update user failed", zap.String("user_id", id.String()), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	l.Info("update user success", zap.String("user_id", id.String()))
	return nil
}

func (s *service) Delete(ctx context.Context, actor identity.Actor, id string) error {
	uid, err := parseUserID(id)
	if err != nil {
		return err
	}
	if actor.ID == uid {
		return usererrors.ErrCannotDeleteSelf
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.log(ctx).Info("delete user success", zap.String("user_id", uid.String()))
	return nil
}

func parseOptionalTeam(o OptionalString) (*OptionalUUID, error) {
	if o.Value == nil || *o.Value == "" {
		return &OptionalUUID{}, nil
	}
	id, err := uuid.Parse(*o.Value)
	if err != nil {
		return nil, usererrors.ErrInvalidTeam
	}
	return &OptionalUUID{Value: &id}, nil
}

func mapToResponse(u UserWithTeam) UserResponse {
	resp := UserResponse{
		ID:                 u.ID.String(),
		Email:              u.Email,
		Name:               u.Name,
		Role:               u.Role,
		TeamName:           u.TeamName,
		LeaveBalance:       u.LeaveBalance,
		SickLeaveBalance:   u.SickLeaveBalance,
		CasualLeaveBalance: u.CasualLeaveBalance,
		Skills:             []string(u.Skills),
		Phone:              u.Phone,
		CreatedAt:          u.CreatedAt,
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	if u.TeamID != nil {
		teamID := u.TeamID.String()
		resp.TeamID = &teamID
	}
	return resp
}
