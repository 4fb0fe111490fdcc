package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success writes the {success: true, message?, ...payload} envelope.
func Success(c *gin.Context, status int, message string, payload gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		if k == "success" || k == "message" {
			continue
		}
		body[k] = v
	}
	c.JSON(status, body)
}

func OK(c *gin.Context, payload gin.H) {
	Success(c, http.StatusOK, "", payload)
}

func Created(c *gin.Context, message string, payload gin.H) {
	Success(c, http.StatusCreated, message, payload)
}
