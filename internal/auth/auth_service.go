package auth

import (
	"context"
	"time"

	autherrors "go-opscentral/internal/auth/errors"
	"go-opscentral/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const DefaultTokenTTL = 12 * time.Hour

type Service interface {
	Login(ctx context.Context, username, password string) (LoginResponse, error)
	GetMe(ctx context.Context, userID string) (user.UserResponse, error)
}

type service struct {
	users  user.Service
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

func NewService(users user.Service, secret string, ttl time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &service{users: users, secret: []byte(secret), ttl: ttl, now: time.Now, logger: l}
}

func (s *service) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	profile, err := s.users.Authenticate(ctx, username, password)
	if err != nil {
		return LoginResponse{}, err
	}

	expiresAt := s.now().Add(s.ttl)
	token, err := s.generateToken(profile, expiresAt)
	if err != nil {
		s.logger.Error("sign token failed", zap.String("user_id", profile.ID), zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success",
		zap.String("user_id", profile.ID),
		zap.String("employee_id", profile.EmployeeID),
		zap.String("role", profile.Role),
	)
	return LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt.Unix(),
		User:        profile,
	}, nil
}

// GetMe re-reads the roster so a user disabled after login is reported as such.
func (s *service) GetMe(ctx context.Context, userID string) (user.UserResponse, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, autherrors.ErrUserNotFound
	}
	return u, nil
}

func (s *service) generateToken(u user.UserResponse, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     u.ID,
		"employee_id": u.EmployeeID,
		"role":        u.Role,
		"exp":         expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
