package controllers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/yurayurastudio/studio_backend/models"
	"github.com/yurayurastudio/studio_backend/services"
)

type ProjectController struct {
	projects services.ProjectService
	log      logrus.FieldLogger
}

func NewProjectController(projects services.ProjectService, log logrus.FieldLogger) *ProjectController {
	return &ProjectController{projects: projects, log: log}
}

// ListProjects handles GET /api/projects
func (pc *ProjectController) ListProjects(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return respondError(c, pc.log, err)
	}

	projects, err := pc.projects.List(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, pc.log, err)
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Projects retrieved successfully",
		Data:    projects,
	})
}

// GetProject handles GET /api/projects/:id
func (pc *ProjectController) GetProject(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return respondError(c, pc.log, err)
	}
	id, err := objectIDParam(c, "id")
	if err != nil {
		return respondError(c, pc.log, err)
	}

	project, err := pc.projects.Get(c.Request().Context(), actor, id)
	if err != nil {
		return respondError(c, pc.log, err)
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Project retrieved successfully",
		Data:    project,
	})
}

// CreateProject handles POST /api/projects
func (pc *ProjectController) CreateProject(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return respondError(c, pc.log, err)
	}

	var req models.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	project, err := pc.projects.Create(c.Request().Context(), actor, &req)
	if err != nil {
		return respondError(c, pc.log, err)
	}
	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Project created successfully",
		Data:    project,
	})
}

// UpdateProject handles PATCH /api/projects/:id
func (pc *ProjectController) UpdateProject(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return respondError(c, pc.log, err)
	}
	id, err := objectIDParam(c, "id")
	if err != nil {
		return respondError(c, pc.log, err)
	}

	var req models.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	project, err := pc.projects.Update(c.Request().Context(), actor, id, &req)
	if err != nil {
		return respondError(c, pc.log, err)
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Project updated successfully",
		Data:    project,
	})
}

// DeleteProject handles DELETE /api/projects/:id
func (pc *ProjectController) DeleteProject(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return respondError(c, pc.log, err)
	}
	id, err := objectIDParam(c, "id")
	if err != nil {
		return respondError(c, pc.log, err)
	}

	if err := pc.projects.Delete(c.Request().Context(), actor, id); err != nil {
		return respondError(c, pc.log, err)
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Project deleted successfully",
	})
}

// MarkRewardDistributed handles POST /api/projects/:id/reward-distributed
func (pc *ProjectController) MarkRewardDistributed(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return respondError(c, pc.log, err)
	}
	id, err := objectIDParam(c, "id")
	if err != nil {
		return respondError(c, pc.log, err)
	}

	project, err := pc.projects.MarkRewardDistributed(c.Request().Context(), actor, id)
	if err != nil {
		return respondError(c, pc.log, err)
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: fmt.Sprintf("Reward for %q marked as distributed", project.Name),
		Data:    project,
	})
}

// validationFailed reports tag failures for request bodies other than the
// reward distribution
func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, models.Response{
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Data:    map[string]interface{}{"fields": fieldErrors(err)},
	})
}
