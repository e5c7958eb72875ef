package auth_test

import (
	"context"
	"testing"
	"time"

	"go-opscentral/internal/auth"
	autherrors "go-opscentral/internal/auth/errors"
	"go-opscentral/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newUserService(t *testing.T) user.Service {
	t.Helper()
	roster, err := user.NewRoster(user.DefaultRoster(), bcrypt.MinCost)
	assert.NoError(t, err)
	return user.NewService(roster)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues HS256 token with role claims", func(t *testing.T) {
		svc := auth.NewService(newUserService(t), testSecret, time.Hour)

		resp, err := svc.Login(ctx, "Admin", "Admin")

		assert.NoError(t, err)
		assert.Equal(t, "ADMIN-001", resp.User.EmployeeID)
		assert.Greater(t, resp.ExpiresAt, time.Now().Unix())

		token, err := jwt.Parse(resp.AccessToken, func(tk *jwt.Token) (interface{}, error) {
			assert.Equal(t, jwt.SigningMethodHS256, tk.Method)
			return []byte(testSecret), nil
		})
		assert.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, "a1b2c3d4-e5f6-7890-1234-567890abcdef", claims["user_id"])
		assert.Equal(t, "ADMIN-001", claims["employee_id"])
		assert.Equal(t, "ADMIN", claims["role"])
	})

	t.Run("bad password", func(t *testing.T) {
		svc := auth.NewService(newUserService(t), testSecret, time.Hour)

		_, err := svc.Login(ctx, "User2", "nope")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("zero ttl falls back to default", func(t *testing.T) {
		svc := auth.NewService(newUserService(t), testSecret, 0)

		resp, err := svc.Login(ctx, "User1", "User1")

		assert.NoError(t, err)
		assert.InDelta(t, time.Now().Add(auth.DefaultTokenTTL).Unix(), resp.ExpiresAt, 5)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctx := context.Background()
	svc := auth.NewService(newUserService(t), testSecret, time.Hour)

	me, err := svc.GetMe(ctx, "e5f6a7b8-c9d0-1234-5678-90abcdef1234")
	assert.NoError(t, err)
	assert.Equal(t, "Param", me.Name)

	_, err = svc.GetMe(ctx, "missing")
	assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
}
