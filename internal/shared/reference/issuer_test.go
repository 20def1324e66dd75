package reference_test

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartbus/internal/shared/reference"
)

func TestNewBookingReference_Format(t *testing.T) {
	issuer := reference.NewIssuer()

	ref, err := issuer.NewBookingReference()
	require.NoError(t, err)

	pattern := fmt.Sprintf(`^SB-%s-[A-Z]{6}$`, time.Now().Format("20060102"))
	assert.Regexp(t, regexp.MustCompile(pattern), ref)
}

func TestNewBookingReference_Unique(t *testing.T) {
	issuer := reference.NewIssuer()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref, err := issuer.NewBookingReference()
		require.NoError(t, err)
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}

func TestNewTicketID_Format(t *testing.T) {
	issuer := reference.NewIssuer()

	ticketID := issuer.NewTicketID()

	assert.Regexp(t, regexp.MustCompile(`^RFID-\d+-[A-F0-9]{8}$`), ticketID)
}

func TestNewTicketID_Unique(t *testing.T) {
	issuer := reference.NewIssuer()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := issuer.NewTicketID()
		assert.False(t, seen[id], "duplicate ticket id %s", id)
		seen[id] = true
	}
}

func TestQRCodeFor(t *testing.T) {
	issuer := reference.NewIssuer()

	assert.Equal(t, "QR-SB-20240501-KWQZRT", issuer.QRCodeFor("SB-20240501-KWQZRT"))
}
