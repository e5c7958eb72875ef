package middleware

import (
	"go-opscentral/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContextKey string

const (
	ContextUserID     ContextKey = "user_id"
	ContextEmployeeID ContextKey = "employee_id"
	ContextRole       ContextKey = "role"
)

// ActorFromContext builds the caller identity set by AuthMiddleware.
// An unknown role yields an Actor with an empty Role, which is never admin.
func ActorFromContext(c *gin.Context) domain.Actor {
	role, _ := domain.ParseRole(c.GetString(string(ContextRole)))
	return domain.Actor{
		UserID:     c.GetString(string(ContextUserID)),
		EmployeeID: c.GetString(string(ContextEmployeeID)),
		Role:       role,
	}
}
