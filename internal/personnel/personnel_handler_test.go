package personnel_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-opscentral/internal/domain"
	"go-opscentral/internal/middleware"
	"go-opscentral/internal/personnel"
	personnelerrors "go-opscentral/internal/personnel/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type fakePersonnelService struct {
	GetAllFn       func(ctx context.Context) ([]personnel.PersonnelResponse, error)
	CreateFn       func(ctx context.Context, actor domain.Actor, req personnel.CreatePersonnelRequest) (personnel.PersonnelResponse, error)
	UpdateStatusFn func(ctx context.Context, actor domain.Actor, id, status string) (personnel.PersonnelResponse, error)
	DeleteFn       func(ctx context.Context, actor domain.Actor, id string) error
}

func (f *fakePersonnelService) GetAll(ctx context.Context) ([]personnel.PersonnelResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakePersonnelService) Create(ctx context.Context, actor domain.Actor, req personnel.CreatePersonnelRequest) (personnel.PersonnelResponse, error) {
	return f.CreateFn(ctx, actor, req)
}
func (f *fakePersonnelService) UpdateStatus(ctx context.Context, actor domain.Actor, id, status string) (personnel.PersonnelResponse, error) {
	return f.UpdateStatusFn(ctx, actor, id, status)
}
func (f *fakePersonnelService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	return f.DeleteFn(ctx, actor, id)
}

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func asActor(c *gin.Context, actor domain.Actor) {
	c.Set(string(middleware.ContextUserID), actor.UserID)
	c.Set(string(middleware.ContextEmployeeID), actor.EmployeeID)
	c.Set(string(middleware.ContextRole), string(actor.Role))
}

func TestPersonnelHandler_GetAll(t *testing.T) {
	h := personnel.NewHandler(&fakePersonnelService{
		GetAllFn: func(ctx context.Context) ([]personnel.PersonnelResponse, error) {
			return []personnel.PersonnelResponse{{ID: "p-1", Name: "Rahul"}}, nil
		},
	})

	c, w := newTestContext(http.MethodGet, "/personnel", "")
	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)
}

func TestPersonnelHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h := personnel.NewHandler(&fakePersonnelService{
			CreateFn: func(ctx context.Context, actor domain.Actor, req personnel.CreatePersonnelRequest) (personnel.PersonnelResponse, error) {
				assert.Equal(t, domain.RoleAdmin, actor.Role)
				return personnel.PersonnelResponse{ID: "p-1", EmployeeID: req.EmployeeID}, nil
			},
		})

		c, w := newTestContext(http.MethodPost, "/personnel", `{"employee_id":"OPS-201","name":"Rahul","type":"Writer Crew","emirates_id":"784"}`)
		asActor(c, admin)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing required field", func(t *testing.T) {
		h := personnel.NewHandler(&fakePersonnelService{})

		c, w := newTestContext(http.MethodPost, "/personnel", `{"name":"Rahul"}`)
		asActor(c, admin)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPersonnelHandler_UpdateStatus(t *testing.T) {
	h := personnel.NewHandler(&fakePersonnelService{
		UpdateStatusFn: func(ctx context.Context, actor domain.Actor, id, status string) (personnel.PersonnelResponse, error) {
			return personnel.PersonnelResponse{}, personnelerrors.ErrAdminOnly
		},
	})

	c, w := newTestContext(http.MethodPut, "/personnel/p-1/status", `{"status":"Sick Leave"}`)
	c.Params = gin.Params{{Key: "id", Value: "p-1"}}
	asActor(c, user)
	h.UpdateStatus(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
}

func TestPersonnelHandler_Delete(t *testing.T) {
	h := personnel.NewHandler(&fakePersonnelService{
		DeleteFn: func(ctx context.Context, actor domain.Actor, id string) error {
			if id == "p-1" {
				return nil
			}
			return personnelerrors.ErrPersonnelNotFound
		},
	})

	c, w := newTestContext(http.MethodDelete, "/personnel/p-1", "")
	c.Params = gin.Params{{Key: "id", Value: "p-1"}}
	asActor(c, admin)
	h.Delete(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newTestContext(http.MethodDelete, "/personnel/p-2", "")
	c.Params = gin.Params{{Key: "id", Value: "p-2"}}
	asActor(c, admin)
	h.Delete(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
