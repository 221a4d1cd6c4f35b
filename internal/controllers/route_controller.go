package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"openride/internal/cache"
	"openride/internal/config"
	"openride/internal/middleware"
	"openride/internal/models"
)

// routeCache is optional; searches go straight to the database when nil.
var routeCache *cache.RouteCache

// SetRouteCache enables caching of route search results.
func SetRouteCache(c *cache.RouteCache) {
	routeCache = c
}

func routesQuery(c *gin.Context) *gorm.DB {
	return config.DB.WithContext(c.Request.Context()).
		Preload("Driver").
		Preload("Vehicle")
}

// SearchRoutes finds active routes by start and end location with enough free seats.
func SearchRoutes(c *gin.Context) {
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))

	seats := 1
	if raw := c.Query("seats"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			fail(c, http.StatusBadRequest, "seats must be a positive integer")
			return
		}
		seats = n
	}

	ctx := c.Request.Context()
	key := cache.SearchKey(from, to, seats)
	routes := make([]models.Route, 0)

	if routeCache != nil {
		hit, err := routeCache.Get(ctx, key, &routes)
		if err != nil {
			logrus.WithError(err).Warn("SearchRoutes: cache read failed")
		} else if hit {
			respond(c, http.StatusOK, routes)
			return
		}
	}

	q := routesQuery(c).
		Where("status = ?", models.RouteActive).
		Where("available_seats >= ?", seats)
	if from != "" {
		q = q.Where("LOWER(start_location) = ?", strings.ToLower(from))
	}
	if to != "" {
		q = q.Where("LOWER(end_location) = ?", strings.ToLower(to))
	}
	if err := q.Order("departure_date, departure_time, id").Find(&routes).Error; err != nil {
		logrus.WithError(err).Error("SearchRoutes: query failed")
		fail(c, http.StatusInternalServerError, "Error searching routes")
		return
	}

	if routeCache != nil {
		if err := routeCache.Set(ctx, key, routes); err != nil {
			logrus.WithError(err).Warn("SearchRoutes: cache write failed")
		}
	}
	respond(c, http.StatusOK, routes)
}

// GetRoute returns a single route with its driver and vehicle.
func GetRoute(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid route ID")
		return
	}

	var route models.Route
	if err := routesQuery(c).First(&route, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Route not found")
		} else {
			logrus.WithError(err).Error("GetRoute: query failed")
			fail(c, http.StatusInternalServerError, "Error fetching route")
		}
		return
	}
	respond(c, http.StatusOK, route)
}

// GetMyRoutes lists the routes offered by the authenticated driver.
func GetMyRoutes(c *gin.Context) {
	driverID, ok := middleware.UserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "invalid token claims")
		return
	}

	routes := make([]models.Route, 0)
	if err := routesQuery(c).
		Where("driver_id = ?", driverID).
		Order("departure_date, departure_time, id").
		Find(&routes).Error; err != nil {
		logrus.WithError(err).Error("GetMyRoutes: query failed")
		fail(c, http.StatusInternalServerError, "Error fetching routes")
		return
	}
	respond(c, http.StatusOK, routes)
}
