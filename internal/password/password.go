// Package password is the credential codec: one-way hashing, verification
// and the minimum strength policy for account passwords.
package password

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"wheely/backend/internal/apperr"
)

// Cost 10 balances brute-force resistance against login latency.
const hashCost = 10

// MinLength is the only strength rule enforced by the codec.
const MinLength = 6

// Hash produces a salted bcrypt digest of a plaintext password.
func Hash(plain string) (string, error) {
	if strings.TrimSpace(plain) == "" {
		return "", fmt.Errorf("%w: password must not be empty", apperr.ErrInvalidInput)
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain matches the stored digest.
// It fails closed: empty inputs or any bcrypt error yield false.
func Verify(plain, digest string) bool {
	if plain == "" || digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

// MeetsPolicy reports whether a plaintext password satisfies the minimum
// strength requirements.
func MeetsPolicy(plain string) bool {
	return len(plain) >= MinLength
}
