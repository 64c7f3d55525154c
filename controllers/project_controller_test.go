package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yurayurastudio/studio_backend/models"
	"github.com/yurayurastudio/studio_backend/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newProjectServer(projects *MockProjectService) *testServer {
	return newTestServer(func(g *echo.Group, log logrus.FieldLogger) {
		pc := NewProjectController(projects, log)
		g.GET("/projects", pc.ListProjects)
		g.POST("/projects", pc.CreateProject)
		g.GET("/projects/:id", pc.GetProject)
		g.PATCH("/projects/:id", pc.UpdateProject)
		g.DELETE("/projects/:id", pc.DeleteProject)
		g.POST("/projects/:id/reward-distributed", pc.MarkRewardDistributed)
	})
}

func TestProjectController_Create(t *testing.T) {
	projects := new(MockProjectService)
	server := newProjectServer(projects)
	admin := testUser(models.RoleAdmin)

	total := int64(500000)
	created := &models.Project{ID: primitive.NewObjectID(), Name: "Ad spot", Status: models.ProjectNotStarted, TotalReward: &total}
	projects.On("Create", mock.Anything, principalOf(admin), mock.MatchedBy(func(req *models.CreateProjectRequest) bool {
		return req.Name == "Ad spot" && req.TotalReward != nil && *req.TotalReward == 500000
	})).Return(created, nil)

	rec := server.do(t, admin, http.MethodPost, "/api/projects", `{"name":"Ad spot","totalReward":500000}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusCreated, body.Status)
}

func TestProjectController_Create_Validation(t *testing.T) {
	projects := new(MockProjectService)
	server := newProjectServer(projects)
	admin := testUser(models.RoleAdmin)

	rec := server.do(t, admin, http.MethodPost, "/api/projects", `{"name":"Bad","totalReward":-1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "totalReward")

	rec = server.do(t, admin, http.MethodPost, "/api/projects", `{"totalReward":10}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name")

	tooLarge := fmt.Sprintf(`{"name":"Huge","totalReward":%d}`, models.MaxTotalReward+1)
	rec = server.do(t, admin, http.MethodPost, "/api/projects", tooLarge)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "totalReward")

	rec = server.do(t, admin, http.MethodPatch, "/api/projects/"+primitive.NewObjectID().Hex(), tooLarge)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	projects.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	projects.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProjectController_Update(t *testing.T) {
	projects := new(MockProjectService)
	server := newProjectServer(projects)
	admin := testUser(models.RoleAdmin)
	id := primitive.NewObjectID()

	projects.On("Update", mock.Anything, mock.Anything, id, mock.MatchedBy(func(req *models.UpdateProjectRequest) bool {
		return req.Status != nil && *req.Status == models.ProjectCompleted && req.Name == nil
	})).Return(&models.Project{ID: id, Status: models.ProjectCompleted}, nil)

	rec := server.do(t, admin, http.MethodPatch, "/api/projects/"+id.Hex(), `{"status":"COMPLETED"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = server.do(t, admin, http.MethodPatch, "/api/projects/"+id.Hex(), `{"status":"ARCHIVED"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectController_MarkRewardDistributed(t *testing.T) {
	projects := new(MockProjectService)
	server := newProjectServer(projects)
	admin := testUser(models.RoleAdmin)
	id := primitive.NewObjectID()
	again := primitive.NewObjectID()

	projects.On("MarkRewardDistributed", mock.Anything, mock.Anything, id).
		Return(&models.Project{ID: id, Name: "Pay", RewardDistributed: true}, nil)
	projects.On("MarkRewardDistributed", mock.Anything, mock.Anything, again).
		Return(nil, fmt.Errorf("%w: already distributed", services.ErrConflict))

	assert.Equal(t, http.StatusOK, server.do(t, admin, http.MethodPost, "/api/projects/"+id.Hex()+"/reward-distributed", "").Code)
	assert.Equal(t, http.StatusConflict, server.do(t, admin, http.MethodPost, "/api/projects/"+again.Hex()+"/reward-distributed", "").Code)
}

func TestProjectController_StorageErrorIsHidden(t *testing.T) {
	projects := new(MockProjectService)
	server := newProjectServer(projects)
	creator := testUser(models.RoleCreator)

	projects.On("List", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("failed to list projects: connection reset"))

	rec := server.do(t, creator, http.MethodGet, "/api/projects", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
