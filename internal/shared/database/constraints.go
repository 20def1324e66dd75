package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds the database-level guard rails behind the booking
// invariants: one CONFIRMED booking per seat instance, plus lookup indexes
// for the hot availability and manifest queries.
func MigrateConstraints(db *gorm.DB) error {
	// Backstop against double selling: even if the hold store were bypassed,
	// two CONFIRMED bookings can never occupy the same seat instance.
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_confirmed_seat
		ON bookings (schedule_id, seat_number, travel_date)
		WHERE booking_status = 'CONFIRMED';
	`).Error
	if err != nil {
		return err
	}

	// Index for seat availability and schedule manifest queries
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_schedule_date
		ON bookings (schedule_id, travel_date);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
