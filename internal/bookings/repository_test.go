package bookings

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsConfirmedSeatConflict(t *testing.T) {
	seatConflict := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "unique_confirmed_seat",
	}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "confirmed seat unique violation",
			err:  seatConflict,
			want: true,
		},
		{
			name: "wrapped by gorm",
			err:  fmt.Errorf("insert failed: %w", seatConflict),
			want: true,
		},
		{
			name: "unique violation on another column",
			err: &pgconn.PgError{
				Code:           "23505",
				ConstraintName: "bookings_booking_reference_key",
			},
			want: false,
		},
		{
			name: "non-unique postgres error",
			err: &pgconn.PgError{
				Code:           "40001",
				ConstraintName: "unique_confirmed_seat",
			},
			want: false,
		},
		{
			name: "plain error",
			err:  fmt.Errorf("connection reset"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isConfirmedSeatConflict(tt.err))
		})
	}
}
