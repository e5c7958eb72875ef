package rbac

import (
	"net/http"
	"strings"

	"go-opscentral/internal/domain"
	"go-opscentral/internal/middleware"
	"go-opscentral/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Enforce answers whether the caller's role may perform resource:action.
func (h *Handler) Enforce(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	actor := middleware.ActorFromContext(c)
	allowed, err := h.service.Enforce(domain.EnforceRequest{
		Role:     string(actor.Role),
		Resource: strings.TrimSpace(req.Resource),
		Action:   strings.TrimSpace(req.Action),
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}

func (h *Handler) MyPermissions(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	perms, err := h.service.Permissions(string(actor.Role))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	response.Success(c, http.StatusOK, PermissionsResponse{Role: string(actor.Role), Permissions: perms}, nil)
}
