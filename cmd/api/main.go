package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"safetycalc/adapters/api"
	"safetycalc/internal/config"
	"safetycalc/ports"
)

func main() {
	// .env is optional; environment variables win either way
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment defaults")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	gin.SetMode(cfg.Server.GinMode)

	engines := ports.NewEngines()
	server := api.NewServer(&engines)

	log.Printf("Starting safety assessment API on http://localhost:%s", cfg.Server.Port)
	if err := server.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Server failed:", err)
	}
}
