package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck 检查内容存储后端是否可达。
func (a *API) HealthCheck(c *gin.Context) {
	if err := a.store.Ping(c.Request.Context()); err != nil {
		a.log.WithError(err).Warn("content backend unreachable")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "content storage unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"storage": "up",
	})
}
