package routes

import (
	"civicreport-be/controllers"
	"civicreport-be/supabase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// IssueRoutes sets up the reference, upload and issue routes
func IssueRoutes(r *gin.Engine, sb *supabase.Client, log zerolog.Logger) {
	r.GET("/categories", controllers.GetCategories(sb))
	r.GET("/departments", controllers.GetDepartments(sb))
	r.POST("/upload-image", controllers.UploadImage(sb))
	r.POST("/create-issue", controllers.CreateIssue(sb, log))
}
