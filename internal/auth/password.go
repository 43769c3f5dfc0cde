package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

const saltBytes = 16

// HashPassword returns a credential record of the form "salt:digest",
// where salt is a fresh random hex string and digest is the sha3-256
// of password||salt. Hashing the same password twice yields different
// records.
func HashPassword(password string) string {
	salt := make([]byte, saltBytes)
	rand.Read(salt)
	saltHex := hex.EncodeToString(salt)
	digest := sha3.Sum256([]byte(password + saltHex))
	return saltHex + ":" + hex.EncodeToString(digest[:])
}

// VerifyPassword recomputes the digest with the salt embedded in the
// record and compares. Malformed records verify as false, never error.
func VerifyPassword(password, record string) bool {
	salt, stored, found := strings.Cut(record, ":")
	if !found || salt == "" || stored == "" {
		return false
	}
	digest := sha3.Sum256([]byte(password + salt))
	computed := hex.EncodeToString(digest[:])
	return subtle.ConstantTimeCompare([]byte(computed), []byte(stored)) == 1
}

// GenerateToken returns an opaque URL-safe session token with 256 bits
// of entropy. Tokens are handed to clients at register/login but are
// not yet persisted or checked by any endpoint; a session layer can be
// added behind this function later.
func GenerateToken() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
