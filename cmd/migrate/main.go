package main

import (
	"flag"
	"log"

	"quizhub/internal/config"
	"quizhub/internal/database"
)

func main() {
	var (
		direction = flag.String("direction", "up", "migration direction: up or down")
		source    = flag.String("source", "file://migrations", "migration source URL")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dsn := cfg.GetDSN()

	switch *direction {
	case "up":
		if err := database.MigrateUp(*source, dsn); err != nil {
			log.Fatalf("Migration up failed: %v", err)
		}
		log.Println("Migrations applied successfully")
	case "down":
		if err := database.MigrateDown(*source, dsn); err != nil {
			log.Fatalf("Migration down failed: %v", err)
		}
		log.Println("Migration rolled back successfully")
	default:
		log.Fatalf("Unknown direction %q (want up or down)", *direction)
	}
}
