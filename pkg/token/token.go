// Package token generates URL-safe opaque identifiers for share links
// and chat sessions.
package token

import (
	"crypto/rand"
	"fmt"
)

const alphabet = "useandom-26T198340PX75pxJACKVERYMINDBUSHWOLF_GQZbfghjklqvwyzrict"

const (
	// ShareTokenLength is the length of a tester share-link token.
	ShareTokenLength = 16
	// SessionTokenLength is the length of a chat session token.
	SessionTokenLength = 24
)

// Generate returns a random token of n characters drawn from a
// URL-safe alphabet. Tokens are opaque; nothing should be parsed out
// of them.
func Generate(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("token length must be positive, got %d", n)
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	out := make([]byte, n)
	for i, b := range buf {
		out[i] = alphabet[int(b)&63]
	}
	return string(out), nil
}

// NewShareToken mints a token for a tester share link.
func NewShareToken() (string, error) {
	return Generate(ShareTokenLength)
}

// NewSessionToken mints a token for a chat session.
func NewSessionToken() (string, error) {
	return Generate(SessionTokenLength)
}
