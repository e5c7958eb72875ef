package personnel

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
	personnel := r.Group("/personnel")

	personnel.Use(authMiddleware)

	{
		personnel.GET("", middleware.RBACAuthorize(rbacService, "resource", "read"), h.GetAll)
		personnel.POST("", middleware.RBACAuthorize(rbacService, "resource", "manage"), h.Create)
		personnel.PUT("/:id/status", middleware.RBACAuthorize(rbacService, "resource", "manage"), h.UpdateStatus)
		personnel.DELETE("/:id", middleware.RBACAuthorize(rbacService, "resource", "manage"), h.Delete)
	}
}
