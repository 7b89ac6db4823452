package main

import (
	"log"

	"github.com/joho/godotenv"

	"safetycalc/internal/config"
	"safetycalc/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment defaults")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	app, err := ui.NewApp(ui.Config{Port: cfg.Server.UIPort})
	if err != nil {
		log.Fatal("Failed to create UI app:", err)
	}

	log.Printf("Starting safety calculator demo on http://localhost:%s", cfg.Server.UIPort)
	log.Fatal(app.Start())
}
