package main

import (
	"flag"
	"log"

	"github.com/dentalshop/config"
	"github.com/dentalshop/database"
)

func main() {
	var (
		drop = flag.Bool("drop", false, "Drop all tables before migrating")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := database.InitializeWithOptions(&cfg.Database, true); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if *drop {
		log.Println("Dropping all tables...")
		if err := database.DropAll(database.DB); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
	}

	if err := database.AutoMigrate(database.DB); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration completed")
}
