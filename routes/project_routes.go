package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/yurayurastudio/studio_backend/controllers"
)

// RegisterProjectRoutes registers project CRUD and the per-project
// reward distribution routes
func RegisterProjectRoutes(g *echo.Group, pc *controllers.ProjectController, rc *controllers.RewardController) {
	projects := g.Group("/projects")
	projects.GET("", pc.ListProjects)
	projects.POST("", pc.CreateProject)
	projects.GET("/:id", pc.GetProject)
	projects.PATCH("/:id", pc.UpdateProject)
	projects.DELETE("/:id", pc.DeleteProject)
	projects.POST("/:id/reward-distributed", pc.MarkRewardDistributed)

	projects.GET("/:id/reward-distribution", rc.GetDistribution)
	projects.POST("/:id/reward-distribution", rc.UpsertDistribution)
}
