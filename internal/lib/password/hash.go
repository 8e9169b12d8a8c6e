// Package password derives and verifies the stored password credential.
//
// bcrypt is used on purpose instead of a plain salted digest: it is slow,
// carries its own per-password salt and the work factor is tunable via cost.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// GetHash derives the credential stored for a user from the plaintext
// password. The result embeds the random salt and the cost.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

// CompareHash verifies a login attempt against the stored credential.
// Returns nil when the password matches. bcrypt's comparison is
// constant-time with respect to the derived digests.
func CompareHash(storedHash, candidate string) error {
	const op = "password.CompareHash"
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(candidate)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
