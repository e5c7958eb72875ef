package rbac_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-opscentral/internal/domain"
	"go-opscentral/internal/middleware"
	"go-opscentral/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newRouter(t *testing.T, role domain.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := rbac.NewHandler(newTestService(t))
	r := gin.New()
	fakeAuth := func(c *gin.Context) {
		c.Set(string(middleware.ContextUserID), "u-1")
		c.Set(string(middleware.ContextRole), string(role))
		c.Next()
	}
	rbac.RegisterRoutes(r.Group("/api/v1"), h, fakeAuth)
	return r
}

func TestRBACHandler_Enforce(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.Role
		body     string
		wantCode int
		allowed  bool
	}{
		{"user allowed", domain.RoleUser, `{"resource":"job","action":"create"}`, http.StatusOK, true},
		{"user denied", domain.RoleUser, `{"resource":"job","action":"approve"}`, http.StatusOK, false},
		{"admin allowed", domain.RoleAdmin, `{"resource":"settings","action":"update"}`, http.StatusOK, true},
		{"missing action", domain.RoleUser, `{"resource":"job"}`, http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t, tt.role)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/rbac/enforce", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusOK {
				return
			}
			var env apiEnvelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			var got domain.EnforceResponse
			require.NoError(t, json.Unmarshal(env.Data, &got))
			assert.Equal(t, tt.allowed, got.Allowed)
		})
	}
}

func TestRBACHandler_MyPermissions(t *testing.T) {
	r := newRouter(t, domain.RoleUser)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/rbac/permissions", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var got rbac.PermissionsResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "USER", got.Role)
	assert.Len(t, got.Permissions, 7)
}
