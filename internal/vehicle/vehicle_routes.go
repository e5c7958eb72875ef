package vehicle

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
	vehicles := r.Group("/vehicles")

	vehicles.Use(authMiddleware)

	{
		vehicles.GET("", middleware.RBACAuthorize(rbacService, "resource", "read"), h.GetAll)
		vehicles.POST("", middleware.RBACAuthorize(rbacService, "resource", "manage"), h.Create)
		vehicles.PUT("/:id/status", middleware.RBACAuthorize(rbacService, "resource", "manage"), h.UpdateStatus)
		vehicles.DELETE("/:id", middleware.RBACAuthorize(rbacService, "resource", "manage"), h.Delete)
	}
}
