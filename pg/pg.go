package pg

import (
	"log"
	"os"

	"itinero/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init opens the Postgres connection and migrates the tables. Called from
// main only when the postgres backend is selected.
func Init() {
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("DB_CONNECTION_STRING is required for the postgres backend")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("error connecting to postgres: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Itinerary{},
		&models.Purchase{},
		&models.Follow{},
		&models.NewsletterEntry{},
	); err != nil {
		log.Fatalf("automigrate failed: %v", err)
	}

	DB = db
}
