package controllers

import (
	"github.com/gin-gonic/gin"
)

// respond writes the {success, data} envelope the front end expects.
func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": msg})
}
