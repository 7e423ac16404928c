package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

// NewVerificationCode returns a 6-digit numeric code in [100000, 999999].
// Short-lived and single-use, so guessability is bounded by the expiry, but
// crypto/rand keeps the distribution uniform.
func NewVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// NewResetToken returns 32 random bytes hex-encoded (64 characters).
func NewResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
