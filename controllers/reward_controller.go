package controllers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/yurayurastudio/studio_backend/models"
	"github.com/yurayurastudio/studio_backend/services"
)

type RewardController struct {
	rewards services.RewardService
	log     logrus.FieldLogger
}

func NewRewardController(rewards services.RewardService, log logrus.FieldLogger) *RewardController {
	return &RewardController{rewards: rewards, log: log}
}

// GetDistribution handles GET /api/projects/:id/reward-distribution
func (rc *RewardController) GetDistribution(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return respondError(c, rc.log, err)
	}
	projectID, err := objectIDParam(c, "id")
	if err != nil {
		return respondError(c, rc.log, err)
	}

	dist, err := rc.rewards.GetDistribution(c.Request().Context(), actor, projectID)
	if err != nil {
		return respondError(c, rc.log, err)
	}
	return c.JSON(http.StatusOK, dist)
}

// UpsertDistribution handles POST /api/projects/:id/reward-distribution
func (rc *RewardController) UpsertDistribution(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return respondError(c, rc.log, err)
	}
	projectID, err := objectIDParam(c, "id")
	if err != nil {
		return respondError(c, rc.log, err)
	}

	// Access and finalization are decided before the payload, so a finalized
	// project answers 409 and a non-admin 403 whatever the body holds
	ctx := c.Request().Context()
	if err := rc.rewards.CheckDistributionWritable(ctx, actor, projectID); err != nil {
		return respondError(c, rc.log, err)
	}

	var req models.RewardDistributionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body: percentages must be whole numbers")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, rc.log, distributionValidationError(&req, err))
	}

	dist, err := rc.rewards.UpsertDistribution(ctx, actor, projectID,
		*req.SalesPercentage, *req.DirectorPercentage, *req.CreatorPercentage)
	if err != nil {
		return respondError(c, rc.log, err)
	}
	return c.JSON(http.StatusOK, dist)
}

// GetUserRewards handles GET /api/users/:id/rewards
func (rc *RewardController) GetUserRewards(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return respondError(c, rc.log, err)
	}
	userID, err := objectIDParam(c, "id")
	if err != nil {
		return respondError(c, rc.log, err)
	}

	shares, err := rc.rewards.RewardsForUser(c.Request().Context(), actor, userID)
	if err != nil {
		return respondError(c, rc.log, err)
	}
	return c.JSON(http.StatusOK, shares)
}

// GetUserProjectReward handles GET /api/users/:id/rewards/project/:projectId
func (rc *RewardController) GetUserProjectReward(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return respondError(c, rc.log, err)
	}
	userID, err := objectIDParam(c, "id")
	if err != nil {
		return respondError(c, rc.log, err)
	}
	projectID, err := objectIDParam(c, "projectId")
	if err != nil {
		return respondError(c, rc.log, err)
	}

	shares, err := rc.rewards.UserProjectReward(c.Request().Context(), actor, userID, projectID)
	if err != nil {
		return respondError(c, rc.log, err)
	}
	return c.JSON(http.StatusOK, shares)
}

// distributionValidationError reshapes tag failures into the same error the
// service returns, so both paths produce one response format
func distributionValidationError(req *models.RewardDistributionRequest, err error) error {
	fields := fieldErrors(err)
	if fields == nil {
		return fmt.Errorf("%w: %v", services.ErrInvalidInput, err)
	}
	for name, tag := range fields {
		if tag != "is required" {
			fields[name] = fmt.Sprintf("must be between 0 and %d", models.MaxRolePercentage)
		}
	}

	total := models.OperationPercentage
	for _, v := range []*int{req.SalesPercentage, req.DirectorPercentage, req.CreatorPercentage} {
		if v != nil {
			total += *v
		}
	}
	return &services.ValidationError{Fields: fields, Total: total}
}
