// Seeds the sample survey questions used by the demo mobile app.
//
// The same seeding runs from the main binary with --seed-survey; this
// script exists for deployments where the server is already up.
//
// Usage: go run scripts/seed_survey.go
package main

import (
	"counter_backend/internal/config"
	"counter_backend/pkg/database"
	"counter_backend/pkg/logger"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Failed to parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database, true)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.SeedSampleSurvey(db); err != nil {
		log.Fatalf("Failed to seed sample survey: %v", err)
	}

	log.Println("Sample survey seeded")
}
