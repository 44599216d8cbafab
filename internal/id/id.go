package id

import "crypto/rand"

// GenerateID creates a 16-character alphanumeric session ID. Sessions are
// short-lived and in-memory, so collision resistance at this length is
// plenty.
func GenerateID() string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = chars[b[i]%byte(len(chars))]
	}
	return string(b)
}
