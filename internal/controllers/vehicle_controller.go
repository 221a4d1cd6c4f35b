package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"openride/internal/config"
	"openride/internal/middleware"
	"openride/internal/models"
)

// GetMyVehicles lists the vehicles owned by the authenticated driver.
func GetMyVehicles(c *gin.Context) {
	driverID, ok := middleware.UserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "invalid token claims")
		return
	}

	vehicles := make([]models.Vehicle, 0)
	if err := config.DB.WithContext(c.Request.Context()).
		Where("driver_id = ?", driverID).
		Order("id").
		Find(&vehicles).Error; err != nil {
		logrus.WithError(err).Error("GetMyVehicles: query failed")
		fail(c, http.StatusInternalServerError, "Error fetching vehicles")
		return
	}

	respond(c, http.StatusOK, vehicles)
}
