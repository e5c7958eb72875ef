package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	autherrors "go-opscentral/internal/auth/errors"
	"go-opscentral/internal/domain"
	"go-opscentral/internal/shared/apperror"
	"go-opscentral/internal/shared/contextutil"
	"go-opscentral/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			errObj := apperror.ErrUnauthorized
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token", nil)
			c.Abort()
			return
		}

		employeeID, ok := claims["employee_id"].(string)
		if !ok || employeeID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Employee ID not found in token", nil)
			c.Abort()
			return
		}

		rawRole, _ := claims["role"].(string)
		role, ok := domain.ParseRole(rawRole)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Role not recognized", nil)
			c.Abort()
			return
		}

		c.Set(string(ContextUserID), userID)
		c.Set(string(ContextEmployeeID), employeeID)
		c.Set(string(ContextRole), string(role))
		c.Set("user_id_validated", userID)

		ctx := c.Request.Context()
		ctx = contextutil.WithUserID(ctx, userID)
		ctx = contextutil.WithEmployeeID(ctx, employeeID)
		if l := contextutil.GetLogger(ctx, nil); l != nil {
			ctx = contextutil.WithLogger(ctx, l.With(
				zap.String("user_id", userID),
				zap.String("employee_id", employeeID),
				zap.String("role", string(role)),
			))
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
