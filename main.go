// @title LearnHub LMS API
// @version 1.0
// @description Learning management backend with authentication, courses, quizzes and progress tracking.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"flag"
	"log"
	"time"

	"learnhub_backend/internal/app"
	"learnhub_backend/internal/config"
	"learnhub_backend/pkg/database"
	"learnhub_backend/pkg/logger"
)

func main() {
	seedOnly := flag.Bool("seed-only", false, "seed demo data and exit")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.SeedOnly = *seedOnly

	if cfg.SeedOnly {
		_, db, err := database.InitMongo(&cfg.Mongo)
		if err != nil {
			log.Fatalf("Failed to initialize MongoDB: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := database.SeedDemoData(ctx, db); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		log.Println("Seeding completed, exiting")
		return
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
