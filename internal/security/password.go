package security

import "golang.org/x/crypto/bcrypt"

const DefaultBcryptCost = 10

// HashPassword hashes with the given bcrypt cost; cost <= 0 falls back to
// DefaultBcryptCost.
func HashPassword(pw string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	return string(b), err
}

func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
