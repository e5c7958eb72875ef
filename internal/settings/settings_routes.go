package settings

import (
	"go-opscentral/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	authMiddleware gin.HandlerFunc,
) {
	settings := r.Group("/settings")

	settings.Use(authMiddleware)

	{
		settings.GET("", middleware.RBACAuthorize(rbacService, "settings", "read"), h.Get)
		settings.PUT("/limits/:date", middleware.RBACAuthorize(rbacService, "settings", "manage"), h.SetLimit)
		settings.POST("/holidays/:date/toggle", middleware.RBACAuthorize(rbacService, "settings", "manage"), h.ToggleHoliday)
	}
}
