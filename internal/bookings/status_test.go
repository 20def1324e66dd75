package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		status       Status
		valid        bool
		canConfirm   bool
		canCancel    bool
		terminal     bool
	}{
		{StatusPending, true, true, true, false},
		{StatusConfirmed, true, false, true, false},
		{StatusCancelled, true, false, false, true},
		{StatusCompleted, true, false, false, true},
		{Status("EXPIRED"), false, false, false, false},
		{Status(""), false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.IsValid())
			assert.Equal(t, tt.canConfirm, tt.status.CanBeConfirmed())
			assert.Equal(t, tt.canCancel, tt.status.CanBeCancelled())
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
		})
	}
}

func TestBoardingStatusTransitions(t *testing.T) {
	tests := []struct {
		status        BoardingStatus
		valid         bool
		canTransition bool
	}{
		{BoardingNotBoarded, true, true},
		{BoardingBoarded, true, false},
		{BoardingMissed, true, false},
		{BoardingStatus("ON_BUS"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.IsValid())
			assert.Equal(t, tt.canTransition, tt.status.CanTransition())
		})
	}
}
