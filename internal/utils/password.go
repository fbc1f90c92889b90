package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Admin passwords are stored as "sha256$<salt>$<hexdigest>" where the digest
// is SHA-256 over the concatenation password+salt.  The format is shared
// with the addadmin utility and must not change without migrating existing
// rows.

// HashPassword returns the salted hash of plain using a fresh random salt.
func HashPassword(plain string) (string, error) {
	salt, err := RandomHex(8)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(plain + salt))
	return "sha256$" + salt + "$" + hex.EncodeToString(sum[:]), nil
}

// VerifyPassword checks plain against a stored "sha256$salt$digest" value.
// Unknown algorithm tags and malformed values simply fail verification.
func VerifyPassword(stored, plain string) bool {
	parts := strings.Split(stored, "$")
	if len(parts) != 3 || parts[0] != "sha256" {
		return false
	}
	sum := sha256.Sum256([]byte(plain + parts[1]))
	return hex.EncodeToString(sum[:]) == parts[2]
}
