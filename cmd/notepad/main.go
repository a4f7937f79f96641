package main

import (
	"log"

	"notepad/internal/app"
	"notepad/internal/config"
)

func main() {
	cfg := config.FromEnv()

	application, err := app.NewApplication(cfg)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}
