package auth

import (
	"go-opscentral/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authMiddleware gin.HandlerFunc,
	loginRate rate.Limit,
	loginBurst int,
) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(loginRate, loginBurst), handler.Login)
		auth.GET("/me", authMiddleware, middleware.RateLimitByUser(2, 5), handler.Me)
		auth.POST("/logout", authMiddleware, handler.Logout)
	}
}
