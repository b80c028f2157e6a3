package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondUpstreamError reports a remote-service failure. Business-rule
// rejections keep their own statuses; everything else is a bad gateway.
func respondUpstreamError(c *gin.Context, err error) {
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
