package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
)

// generatePKCEParams generates code_verifier and code_challenge for the
// PKCE flow. rand.Read never fails on supported platforms.
func generatePKCEParams() (codeVerifier, codeChallenge string) {
	verifierBytes := make([]byte, 32)
	rand.Read(verifierBytes)

	codeVerifier = base64.RawURLEncoding.EncodeToString(verifierBytes)

	hash := sha256.Sum256([]byte(codeVerifier))
	codeChallenge = base64.RawURLEncoding.EncodeToString(hash[:])

	return codeVerifier, codeChallenge
}
