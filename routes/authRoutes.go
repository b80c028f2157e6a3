package routes

import (
	"civicreport-be/controllers"
	"civicreport-be/supabase"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the account routes
func AuthRoutes(r *gin.Engine, sb *supabase.Client) {
	r.POST("/signup", controllers.Signup(sb))
	r.POST("/login", controllers.Login(sb))
}
