package routes

import (
	"github.com/gin-gonic/gin"

	"openride/internal/controllers"
	"openride/internal/middleware"
	"openride/internal/models"
)

func VehicleRoutes(r *gin.Engine) {
	vehicle := r.Group("/vehicles")
	vehicle.Use(middleware.RequireAuthWithRole(models.RoleDriver))
	{
		vehicle.GET("/mine", controllers.GetMyVehicles)
	}
}
