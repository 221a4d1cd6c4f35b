package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"openride/internal/auth"
	"openride/internal/config"
	"openride/internal/middleware"
	"openride/internal/models"
)

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginUser exchanges a seeded account's credentials for a JWT.
func LoginUser(c *gin.Context) {
	var body loginInput
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	email := strings.ToLower(strings.TrimSpace(body.Email))
	if err := config.DB.WithContext(c.Request.Context()).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusUnauthorized, "user not found or invalid credentials")
		} else {
			logrus.WithError(err).Error("LoginUser: database error")
			fail(c, http.StatusInternalServerError, "database error")
		}
		return
	}

	if err := auth.CheckPassword(user.Password, body.Password); err != nil {
		fail(c, http.StatusUnauthorized, "incorrect password")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		logrus.WithError(err).Error("LoginUser: could not sign token")
		fail(c, http.StatusInternalServerError, "could not generate token")
		return
	}

	logrus.WithField("user_id", user.ID).Info("user logged in")
	respond(c, http.StatusOK, gin.H{
		"user":       user,
		"token":      token,
		"expires_in": int(middleware.TokenTTL.Seconds()),
	})
}

// GetProfile returns the authenticated user.
func GetProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "invalid token claims")
		return
	}

	var user models.User
	if err := config.DB.WithContext(c.Request.Context()).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "user not found")
		} else {
			fail(c, http.StatusInternalServerError, "database error")
		}
		return
	}
	respond(c, http.StatusOK, user)
}
