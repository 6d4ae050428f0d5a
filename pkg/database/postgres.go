package database

import (
	"log"

	"github.com/railgoteam/railroad-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Station{},
		&models.Train{},
		&models.Booking{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Station deletion checks reference both FK columns on trains.
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_trains_start_station ON trains (start_station_id)`)
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_trains_end_station ON trains (end_station_id)`)

	return db
}
