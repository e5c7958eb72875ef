package job

import (
	"go-opscentral/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	authMiddleware gin.HandlerFunc,
	rdb *redis.Client,
) {
	jobs := r.Group("/jobs")

	jobs.Use(authMiddleware, middleware.RateLimitByUser(10, 20))

	{
		jobs.GET("", middleware.RBACAuthorize(rbacService, "job", "read"), h.GetAll)
		jobs.GET("/:id", middleware.RBACAuthorize(rbacService, "job", "read"), h.GetByID)
		jobs.POST("",
			middleware.RBACAuthorize(rbacService, "job", "create"),
			middleware.Idempotency(rdb, zap.L().Named("job.idempotency")),
			h.Create,
		)
		jobs.DELETE("/:id", middleware.RBACAuthorize(rbacService, "job", "delete"), h.Delete)
		jobs.PUT("/:id/allocation", middleware.RBACAuthorize(rbacService, "job", "allocate"), h.UpdateAllocation)
		jobs.PUT("/:id/customs-status", middleware.RBACAuthorize(rbacService, "job", "manage"), h.UpdateCustomsStatus)
		jobs.POST("/:id/lock", middleware.RBACAuthorize(rbacService, "job", "manage"), h.ToggleLock)
		jobs.POST("/:id/approval", middleware.RBACAuthorize(rbacService, "job", "approve"), h.ResolveApproval)
		jobs.POST("/:id/complete", middleware.RBACAuthorize(rbacService, "job", "manage"), h.Complete)
	}

	capacity := r.Group("/capacity")
	capacity.Use(authMiddleware)
	capacity.GET("/:date", middleware.RBACAuthorize(rbacService, "capacity", "read"), h.Capacity)
}
