package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	bookingCodePrefix = "CSM"
	bookingCodeDigits = 8
)

// GenerateBookingCode returns a human-facing booking code of the form
// CSM-XXXXXXXX. Uniqueness is enforced by the caller against the persistence
// layer; the database unique constraint backstops concurrent submissions.
func GenerateBookingCode() (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < bookingCodeDigits; i++ {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("generating booking code: %w", err)
	}

	return fmt.Sprintf("%s-%0*d", bookingCodePrefix, bookingCodeDigits, n), nil
}
