package routes

import (
	"github.com/gin-gonic/gin"

	"openride/internal/middleware"
)

// SetupRouter builds the demo API. Extra middleware runs before every route.
func SetupRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS())
	r.Use(mw...)

	AuthRoutes(r)
	RouteRoutes(r)
	VehicleRoutes(r)

	return r
}
