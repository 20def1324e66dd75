package database

import (
	"smartbus/internal/bookings"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&bookings.Booking{}); err != nil {
		return err
	}
	return MigrateConstraints(db)
}
