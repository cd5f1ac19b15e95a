// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptyIdentifier = errors.New("user identifier required")

// SuggesterTagPrefix starts every public suggester tag.
const SuggesterTagPrefix = "User_"

const (
	base36Chars     = "0123456789abcdefghijklmnopqrstuvwxyz"
	suggesterTagLen = 9
)

// NewID creates a random UUID for database records
func NewID() string {
	return uuid.NewString()
}

// GenerateSuggesterTag creates the public "User_xxxxxxxxx" label shown on
// suggestions. It is random and never derived from the voter identifier.
func GenerateSuggesterTag() (string, error) {
	b := make([]byte, suggesterTagLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate suggester tag: %w", err)
	}
	return SuggesterTagPrefix + base36Encode(b), nil
}

// base36Encode maps each byte to one of 36 lowercase alphanumerics.
// The slight modulo bias is fine for a display tag.
func base36Encode(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, c := range data {
		sb.WriteByte(base36Chars[int(c)%len(base36Chars)])
	}
	return sb.String()
}

// HashIdentifier creates a one-way hash of a client supplied voter
// identifier so raw identifiers are never stored.
// Includes salt to prevent rainbow table attacks
func HashIdentifier(identifier, salt string) (string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return "", ErrEmptyIdentifier
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(identifier))
	sum := h.Sum(nil)
	// First 16 bytes (32 hex chars) - plenty for deduplication
	return hex.EncodeToString(sum[:16]), nil
}
