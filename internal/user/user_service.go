package user

import (
	"context"
	"net/http"
	"strings"

	autherrors "go-opscentral/internal/auth/errors"
	"go-opscentral/internal/domain"
	"go-opscentral/internal/shared/apperror"
	"go-opscentral/internal/shared/contextutil"
	usererrors "go-opscentral/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Authenticate(ctx context.Context, username, password string) (UserResponse, error)
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, id string, status string) (UserResponse, error)
	Create(ctx context.Context, actor domain.Actor, req CreateUserRequest) (UserResponse, error)
}

type service struct {
	repo   Repository
	cost   int
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, cost: bcrypt.DefaultCost, logger: l}
}

// Authenticate matches the username exactly and compares the bcrypt hash.
// Disabled users are refused even with the right password.
func (s *service) Authenticate(ctx context.Context, username, password string) (UserResponse, error) {
	acc, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		s.logger.Warn("login unknown username", zap.String("username", username))
		return UserResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(password)); err != nil {
		s.logger.Warn("login wrong password", zap.String("username", username))
		return UserResponse{}, autherrors.ErrInvalidCredentials
	}

	if acc.Profile.Status == StatusDisabled {
		s.logger.Warn("login refused for disabled user", zap.String("username", username))
		return UserResponse{}, autherrors.ErrUserDisabled
	}

	return mapToResponse(acc.Profile), nil
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	accounts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(accounts))
	for i, acc := range accounts {
		resp[i] = mapToResponse(acc.Profile)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	acc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(acc.Profile), nil
}

func (s *service) UpdateStatus(ctx context.Context, actor domain.Actor, id string, status string) (UserResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if !actor.IsAdmin() {
		return UserResponse{}, usererrors.ErrAdminOnly
	}
	st, ok := ParseStatus(status)
	if !ok {
		return UserResponse{}, usererrors.ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, st); err != nil {
		return UserResponse{}, err
	}

	log.Warn("user status changed in memory only, lost on restart",
		zap.String("user_id", id),
		zap.String("status", string(st)),
		zap.String("actor_id", actor.EmployeeID),
	)
	return s.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, actor domain.Actor, req CreateUserRequest) (UserResponse, error) {
	if !actor.IsAdmin() {
		return UserResponse{}, usererrors.ErrAdminOnly
	}
	role, ok := domain.ParseRole(req.Role)
	if !ok {
		return UserResponse{}, usererrors.ErrInvalidRole
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return UserResponse{}, apperror.RequiredField("username")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return UserResponse{}, apperror.Wrap(err, apperror.CodeInternalError, "failed to hash password", http.StatusInternalServerError)
	}

	profile := Profile{
		ID:         uuid.NewString(),
		EmployeeID: strings.TrimSpace(req.EmployeeID),
		Name:       req.Name,
		Role:       role,
		Avatar:     AvatarURL(req.Name),
		Status:     StatusActive,
	}
	if err := s.repo.Create(ctx, Account{Username: username, PasswordHash: hash, Profile: profile}); err != nil {
		return UserResponse{}, err
	}

	s.logger.Info("user added to in-memory roster",
		zap.String("user_id", profile.ID),
		zap.String("employee_id", profile.EmployeeID),
		zap.String("role", string(role)),
	)
	return mapToResponse(profile), nil
}

func mapToResponse(p Profile) UserResponse {
	return UserResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Name:       p.Name,
		Role:       string(p.Role),
		Avatar:     p.Avatar,
		Status:     string(p.Status),
	}
}
