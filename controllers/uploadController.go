package controllers

import (
	"io"
	"net/http"

	"civicreport-be/supabase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const issueImagesBucket = "issue-images"

// UploadImage stores one multipart file in the issue-images bucket under a
// uuid-prefixed key and returns its public URL.
func UploadImage(sb *supabase.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		key := uuid.New().String() + "-" + fileHeader.Filename
		contentType := fileHeader.Header.Get("Content-Type")

		if err := sb.Upload(c.Request.Context(), issueImagesBucket, key, data, contentType); err != nil {
			respondUpstreamError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": sb.PublicURL(issueImagesBucket, key)})
	}
}
