package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/yurayurastudio/studio_backend/controllers"
)

// RegisterRewardRoutes registers the per-user reward routes
func RegisterRewardRoutes(g *echo.Group, rc *controllers.RewardController) {
	g.GET("/users/:id/rewards", rc.GetUserRewards)
	g.GET("/users/:id/rewards/project/:projectId", rc.GetUserProjectReward)
}
