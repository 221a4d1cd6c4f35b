package routes

import (
	"github.com/gin-gonic/gin"

	"openride/internal/controllers"
	"openride/internal/middleware"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.LoginUser)
		auth.GET("/me", middleware.RequireAuth(), controllers.GetProfile)
	}
}
