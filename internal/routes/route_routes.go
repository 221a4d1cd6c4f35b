package routes

import (
	"github.com/gin-gonic/gin"

	"openride/internal/controllers"
	"openride/internal/middleware"
	"openride/internal/models"
)

func RouteRoutes(r *gin.Engine) {
	routes := r.Group("/routes")
	{
		routes.GET("/search", controllers.SearchRoutes)
		routes.GET("/my-routes", middleware.RequireAuthWithRole(models.RoleDriver), controllers.GetMyRoutes)
		routes.GET("/:id", controllers.GetRoute)
	}
}
