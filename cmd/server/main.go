package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/auswiki/auswiki/internal/wiki/app"
)

func main() {
	// A missing .env is fine, real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	if err := a.Run(context.Background()); err != nil {
		log.Fatalf("run: %v", err)
	}
}
