// Package reference generates the globally-unique identifiers stamped on
// bookings: the human-facing booking reference, the RFID ticket id scanned at
// boarding, and the QR code payload derived from the reference. Generation is
// pure; nothing is persisted.
package reference

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Issuer generates booking references and ticket identifiers. Uniqueness
// comes from a time-based prefix plus a random suffix; cryptographic
// unpredictability is not a requirement.
type Issuer struct{}

// NewIssuer creates a new identifier issuer.
func NewIssuer() *Issuer {
	return &Issuer{}
}

// NewBookingReference generates a unique booking reference, e.g.
// SB-20240501-KWQZRT.
func (i *Issuer) NewBookingReference() (string, error) {
	timestamp := time.Now().Format("20060102")

	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	randomPart := make([]byte, 6)

	for j := range randomPart {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			return "", err
		}
		randomPart[j] = letters[num.Int64()]
	}

	return fmt.Sprintf("SB-%s-%s", timestamp, string(randomPart)), nil
}

// NewTicketID generates a unique RFID ticket identifier, e.g.
// RFID-1714521600-3F2A9C1B.
func (i *Issuer) NewTicketID() string {
	timestamp := time.Now().Unix()
	id := uuid.New().String()
	shortID := strings.ReplaceAll(id, "-", "")[:8]
	return fmt.Sprintf("RFID-%d-%s", timestamp, strings.ToUpper(shortID))
}

// QRCodeFor returns the QR code payload for a booking reference.
func (i *Issuer) QRCodeFor(bookingReference string) string {
	return "QR-" + bookingReference
}
