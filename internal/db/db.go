package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rahhal-app/tourism-api/internal/config"
	"github.com/rahhal-app/tourism-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Store-level backstop against double-booking: two overlapping
	// ranges for one car cannot both insert, whatever the pre-check saw.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
        DO $$ BEGIN
            ALTER TABLE car_reservations
                ADD CONSTRAINT car_reservations_no_overlap
                EXCLUDE USING gist (
                    car_id WITH =,
                    daterange(arrival_date::date, return_date::date, '[]') WITH &&
                );
        EXCEPTION WHEN duplicate_object THEN NULL;
        END $$
    `)

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Car{},
		&models.Place{},
		&models.Entertainment{},
		&models.HotelReservation{},
		&models.CarReservation{},
		&models.AuditLog{},
	)
}
