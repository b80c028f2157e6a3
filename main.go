package main

import (
	"log"
	"net/http"

	"civicreport-be/config"
	"civicreport-be/middlewares"
	"civicreport-be/routes"
	"civicreport-be/supabase"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := config.NewLogger(cfg.LogLevel)
	sb := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, logger)
	logger.Info().Str("url", cfg.SupabaseURL).Msg("Supabase client configured")

	r := gin.Default()
	r.Use(middlewares.CORS(cfg.AllowedOrigin))

	routes.AuthRoutes(r, sb)
	routes.IssueRoutes(r, sb, logger)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
